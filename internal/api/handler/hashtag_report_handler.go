package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type HashtagReportHandler struct {
	hashtagReportSvc service.HashtagReportService
}

func NewHashtagReportHandler(hashtagReportSvc service.HashtagReportService) *HashtagReportHandler {
	return &HashtagReportHandler{hashtagReportSvc: hashtagReportSvc}
}

func (s *HashtagReportHandler) GetHashtagReport(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	asOf, ok := parseAsOf(c)
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.hashtagReportSvc.GetHashtagReport(c.Request.Context(), days, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *HashtagReportHandler) GetTrendingTags(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	tags, err := s.hashtagReportSvc.GetTrendingTags(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tags)
}
