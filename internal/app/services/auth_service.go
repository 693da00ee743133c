package services

import (
	"context"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/app/repositories"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
	"github.com/bde-polytech/backend/internal/pkg/auth"
	"github.com/bde-polytech/backend/internal/pkg/logger"
)

// AuthService handles authentication
type AuthService struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a registered account and issues a token. An existing
// but unregistered account is rejected the same way as a wrong password so
// the response does not leak account state.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrUserNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !user.IsRegistered() {
		return "", apperrors.ErrInvalidCredentials
	}

	registered := user.Registered
	if !auth.CheckPassword(registered.Password, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(
		registered.UUID,
		registered.Email,
		models.EncodePermissions(registered.Permissions),
	)
	if err != nil {
		return "", err
	}

	logger.Info().Str("userUUID", registered.UUID).Msg("User logged in")
	return token, nil
}
