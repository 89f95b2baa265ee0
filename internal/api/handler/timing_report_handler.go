package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TimingReportHandler struct {
	timingReportSvc service.TimingReportService
}

func NewTimingReportHandler(timingReportSvc service.TimingReportService) *TimingReportHandler {
	return &TimingReportHandler{timingReportSvc: timingReportSvc}
}

func (s *TimingReportHandler) GetTimingReport(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	asOf, ok := parseAsOf(c)
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.timingReportSvc.GetTimingReport(c.Request.Context(), days, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
