package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContentDiscoveryHandler struct {
	discoverySvc service.ContentDiscoveryService
}

func NewContentDiscoveryHandler(discoverySvc service.ContentDiscoveryService) *ContentDiscoveryHandler {
	return &ContentDiscoveryHandler{discoverySvc: discoverySvc}
}

func (s *ContentDiscoveryHandler) GetViralContent(c *gin.Context) {
	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))

	docs, err := s.discoverySvc.GetViralContent(c.Request.Context(), status, page, size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, docs)
}

func (s *ContentDiscoveryHandler) GetTopQuality(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "0"))

	docs, err := s.discoverySvc.GetTopQuality(c.Request.Context(), size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, docs)
}
