package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/platform/config"
	"github.com/carvoy/carvoy_backend/internal/utils"
)

// AuthService authenticates back-office administrators and issues JWTs.
type AuthService struct {
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
	logger   *slog.Logger
}

func NewAuthService(userRepo portsrepo.UserRepositoryFacade, cfg *config.Config, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{userRepo: userRepo, cfg: cfg, logger: logger}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// Login verifies credentials and issues a signed JWT. Unknown emails and bad
// passwords produce the same error so the login form cannot be used to probe
// for accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return "", nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.logger.WarnContext(ctx, "Failed login attempt", slog.String("email", email))
		return "", nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return token, user, nil
}

// GetUserByID retrieves an admin user.
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}
