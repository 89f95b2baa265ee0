package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnomalyReportHandler struct {
	anomalyReportSvc service.AnomalyReportService
}

func NewAnomalyReportHandler(anomalyReportSvc service.AnomalyReportService) *AnomalyReportHandler {
	return &AnomalyReportHandler{anomalyReportSvc: anomalyReportSvc}
}

func (s *AnomalyReportHandler) GetAnomalyReport(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	asOf, ok := parseAsOf(c)
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.anomalyReportSvc.GetAnomalyReport(c.Request.Context(), days, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
