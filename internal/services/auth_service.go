package services

import (
	"context"
	"time"

	"castpro_backend/internal/auth"
	"castpro_backend/internal/logger"
	"castpro_backend/internal/repositories"
	"castpro_backend/internal/services/dto"
	"castpro_backend/pkg/apperrors"
)

type AuthService interface {
	// Login verifies credentials and issues a signed session token.
	Login(ctx context.Context, req dto.LoginRequest) (string, error)
}

type AuthServiceImpl struct {
	adminRepo  repositories.AdminUserRepository
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(adminRepo repositories.AdminUserRepository, jwtSecret string, sessionTTL time.Duration) AuthService {
	return &AuthServiceImpl{
		adminRepo:  adminRepo,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	user, err := s.adminRepo.FindByUsernameOrEmail(ctx, req.Username)
	if err != nil {
		// Unknown account and wrong password return the same error so
		// the response never reveals which accounts exist.
		logger.CtxWarn(ctx, "login failed: account lookup", "login", req.Username)
		return "", apperrors.ErrInvalidCredentials
	}

	if user.PasswordHash == "" || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.CtxWarn(ctx, "login failed: password mismatch", "login", req.Username)
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateSessionToken(user.Username, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "admin logged in", "username", user.Username)
	return token, nil
}
