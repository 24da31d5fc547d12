package services

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// AuthSvcFacade authenticates back-office administrators.
type AuthSvcFacade interface {
	// Login verifies credentials and issues a signed JWT.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// GetUserByID retrieves an admin user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}
