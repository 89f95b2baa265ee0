package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CreatorReportHandler struct {
	creatorReportSvc service.CreatorReportService
}

func NewCreatorReportHandler(creatorReportSvc service.CreatorReportService) *CreatorReportHandler {
	return &CreatorReportHandler{creatorReportSvc: creatorReportSvc}
}

func (s *CreatorReportHandler) GetCreatorReport(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	asOf, ok := parseAsOf(c)
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.creatorReportSvc.GetCreatorReport(c.Request.Context(), days, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
