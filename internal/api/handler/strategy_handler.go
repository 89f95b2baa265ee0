package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/pkg/util"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type StrategyHandler struct {
	strategySvc service.StrategyService
}

func NewStrategyHandler(strategySvc service.StrategyService) *StrategyHandler {
	return &StrategyHandler{strategySvc: strategySvc}
}

func (s *StrategyHandler) GetStrategy(c *gin.Context) {
	userID := util.StrToUint64(c.Param("user_id"))
	if userID == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	asOf, ok := parseAsOf(c)
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.strategySvc.GetStrategy(c.Request.Context(), userID, days, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
