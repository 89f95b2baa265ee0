package handler

import (
	"Prism/internal/api/dto"
	"Prism/internal/pkg/response"
	"Prism/internal/pkg/util"
	"Prism/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

func (s *AuthHandler) Login(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	err := c.ShouldBind(&credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&credentialDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.authSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TokenDTO{Token: token})
}

func (s *AuthHandler) Logout(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.Replace(token, "Bearer ", "", 1)
	err := s.authSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
