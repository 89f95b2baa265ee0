package handler

import (
	"Prism/internal/pkg/response"
	"Prism/internal/service"

	"github.com/gin-gonic/gin"
)

type UserMetricHandler struct {
	userMetricSvc service.UserMetricService
}

func NewUserMetricHandler(userMetricSvc service.UserMetricService) *UserMetricHandler {
	return &UserMetricHandler{userMetricSvc: userMetricSvc}
}

func (s *UserMetricHandler) GetTrend7Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	trend, err := s.userMetricSvc.GetUserTrend(c.Request.Context(), userID, 7)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}

func (s *UserMetricHandler) GetTrend30Days(c *gin.Context) {
	userID := c.GetUint64("user_id")
	trend, err := s.userMetricSvc.GetUserTrend(c.Request.Context(), userID, 30)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, trend)
}
