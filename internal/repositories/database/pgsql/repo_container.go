package pgsql

import (
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	tenantRepo := newPgxTenantRepository(dbPool)
	carRepo := newPgxCarRepository(dbPool)
	themeRepo := newPgxThemeRepository(dbPool)
	bookingRepo := newPgxBookingRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TenantRepo:  tenantRepo,
		CarRepo:     carRepo,
		ThemeRepo:   themeRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
	}
}
