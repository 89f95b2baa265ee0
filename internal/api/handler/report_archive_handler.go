package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ReportArchiveHandler struct {
	archiveSvc service.ReportArchiveService
}

func NewReportArchiveHandler(archiveSvc service.ReportArchiveService) *ReportArchiveHandler {
	return &ReportArchiveHandler{archiveSvc: archiveSvc}
}

func (s *ReportArchiveHandler) GetHistory(c *gin.Context) {
	reportType := c.Query("type")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	archives, err := s.archiveSvc.GetArchiveHistory(c.Request.Context(), reportType, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, archives)
}

func (s *ReportArchiveHandler) GetLatest(c *gin.Context) {
	reportType := c.Query("type")
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	archive, err := s.archiveSvc.GetLatestArchive(c.Request.Context(), reportType, days)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, archive)
}
