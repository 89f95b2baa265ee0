package dto

// CredentialDTO 登录凭据
type CredentialDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=50"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
}

// TokenDTO 登录成功返回的令牌
type TokenDTO struct {
	Token string `json:"token"`
}
