package services

import (
	"log/slog"

	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/platform/cache"
	"github.com/carvoy/carvoy_backend/internal/platform/config"
	"github.com/carvoy/carvoy_backend/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	c *cache.Cache,
	rateSource portsclients.RateSource,
	geoProviders []portsclients.GeoProvider,
	payment portsclients.PaymentProcessor,
	posthog *utils.PosthogClientWrapper,
	logger *slog.Logger,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Tenant resolution first since bookings depend on the effective catalog
	container.Tenant = NewTenantService(repos.TenantRepo, repos.CarRepo, cfg.CatalogBypassEnabled, logger)
	container.Car = NewCarService(repos.CarRepo)
	container.Theme = NewThemeService(repos.ThemeRepo, logger)
	container.Currency = NewCurrencyService(rateSource, c, cfg.RatesCacheTTL)
	container.Geo = NewGeoLocationService(geoProviders, c, cfg.GeoCacheTTL, cfg.GeoProviderTimeout, logger)
	container.License = NewLicenseService()
	container.Booking = NewBookingService(repos.BookingRepo, container.Tenant, container.License, payment, posthog, logger)
	container.Auth = NewAuthService(repos.UserRepo, cfg, logger)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TenantSvcFacade   = (*TenantService)(nil)
	_ portssvc.CarSvcFacade      = (*CarService)(nil)
	_ portssvc.ThemeSvcFacade    = (*ThemeService)(nil)
	_ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)
	_ portssvc.LicenseSvcFacade  = (*LicenseService)(nil)
)
