package service

import (
	"Prism/internal/api/dto"
	"Prism/internal/pkg/redis"
	"Prism/internal/pkg/security"
	"Prism/internal/repository"
	"context"
)

type AuthService interface {
	Login(ctx context.Context, credential *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &authServiceImpl{userRepo: userRepo}
}

func (s *authServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, credential.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.Password == nil {
		return "", ErrPasswordNotSet
	}

	if err = security.CheckPasswordHash(credential.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID, []string{user.Role})
}

// Logout 将 Token 签名写入黑名单，存活时间与 Token 有效期一致
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	return redis.SetWithExpiration(ctx, signature, "revoked", security.JWTExpirationTime)
}
