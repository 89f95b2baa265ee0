package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/pkg/util"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ContentReportHandler struct {
	contentReportSvc service.ContentReportService
}

func NewContentReportHandler(contentReportSvc service.ContentReportService) *ContentReportHandler {
	return &ContentReportHandler{contentReportSvc: contentReportSvc}
}

func (s *ContentReportHandler) GetContentReport(c *gin.Context) {
	contentID := util.StrToUint64(c.Param("content_id"))
	if contentID == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.contentReportSvc.GetContentReport(c.Request.Context(), contentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *ContentReportHandler) GetContentWindowReport(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	asOf, ok := parseAsOf(c)
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.contentReportSvc.GetContentWindowReport(c.Request.Context(), days, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
