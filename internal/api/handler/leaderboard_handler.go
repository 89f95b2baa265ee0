package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	leaderboardSvc service.LeaderboardService
}

func NewLeaderboardHandler(leaderboardSvc service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardSvc: leaderboardSvc}
}

func (s *LeaderboardHandler) GetCategoryLeaderboard(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	asOf, ok := parseAsOf(c)
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.leaderboardSvc.GetCategoryLeaderboard(c.Request.Context(), days, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}

func (s *LeaderboardHandler) GetContentTypeLeaderboard(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))
	asOf, ok := parseAsOf(c)
	if !ok {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	report, err := s.leaderboardSvc.GetContentTypeLeaderboard(c.Request.Context(), days, asOf)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, report)
}
