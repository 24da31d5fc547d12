package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/carvoy/carvoy_backend/cmd/docs"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/middleware"
	"github.com/carvoy/carvoy_backend/internal/platform/config"
	"github.com/carvoy/carvoy_backend/internal/utils"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Public booking-site routes (anonymous, rate limited per IP)
	setupPublicRoutes(r, cfg, services, posthogClient)

	// Admin back-office routes behind JWT auth
	setupAdminRoutes(r, cfg, services)

	// Swagger routes (non-production only)
	setupSwaggerRoutes(r, cfg)
}

// setupPublicRoutes configures the anonymous /api/v1 surface the booking site
// talks to. Every route resolves the tenant (or degrades) on its own; there is
// no auth.
func setupPublicRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	rate, err := limiter.NewRateFromFormatted(cfg.PublicRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("300-H")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	v1 := r.Group("/api/v1", middleware.RateLimit(ipLimiter), middleware.PosthogMiddleware(posthogClient))

	registerCatalogRoutes(v1, services.Tenant)
	registerThemeRoutes(v1, services.Tenant, services.Theme)
	registerGeoLocationRoutes(v1, services.Geo)
	registerCurrencyRoutes(v1, services.Currency)
	registerLicenseRoutes(v1, services.License)
	registerBookingRoutes(v1, services.Tenant, services.Booking)
}

// setupAdminRoutes configures the /api/v1/admin group and delegates to
// specific entity route registrations
func setupAdminRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	admin := r.Group("/api/v1/admin", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAdminTenantRoutes(admin, services.Tenant)
	registerAdminThemeRoutes(admin, services.Theme)
	registerAdminCarRoutes(admin, services.Car)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
