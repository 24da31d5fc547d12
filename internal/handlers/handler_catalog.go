package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
	"github.com/carvoy/carvoy_backend/internal/middleware"
)

// catalogHandler serves the public tenant-effective catalog.
type catalogHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func newCatalogHandler(ts portssvc.TenantSvcFacade) *catalogHandler {
	return &catalogHandler{tenantService: ts}
}

// registerCatalogRoutes registers the public catalog route.
func registerCatalogRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := newCatalogHandler(tenantService)
	rg.GET("/catalog", h.getCatalog)
}

// tenantRequestFromContext builds the resolution input from the HTTP request.
// The ?domain= override wins, then the Referer when the widget reports itself
// embedded, then the request host. ?allcars=1 asks for the staging bypass; the
// service decides whether it is honored.
func tenantRequestFromContext(c *gin.Context) dto.ResolveTenantRequest {
	return dto.ResolveTenantRequest{
		OverrideKey: c.Query("domain"),
		Referrer:    c.GetHeader("Referer"),
		Host:        c.Request.Host,
		Embedded:    c.GetHeader("X-Embedded") == "1",
		Bypass:      c.Query("allcars") == "1",
	}
}

// respondTenantError translates a resolution failure into the public error
// contract: 503 for an unavailable tenant, nothing leaks about other tenants.
func respondTenantError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if errors.Is(err, apperrors.ErrTenantUnavailable) {
		logger.Warn("No active tenant for request", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "This booking site is not available right now"})
		return
	}
	logger.Error("Tenant resolution failed", slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// getCatalog godoc
// @Summary Get the tenant-effective car catalog
// @Description Resolves the requesting domain to a tenant and returns its catalog with visibility and price overrides applied.
// @Tags catalog
// @Produce json
// @Param category query string false "Filter by category (transfer|rental)"
// @Param domain query string false "Explicit domain key override"
// @Success 200 {object} dto.CatalogResponse
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 503 {object} map[string]string "No active tenant for this domain"
// @Router /catalog [get]
func (h *catalogHandler) getCatalog(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenant, err := h.tenantService.ResolveTenant(c.Request.Context(), tenantRequestFromContext(c))
	if err != nil {
		respondTenantError(c, err)
		return
	}

	category := domain.CarCategory(c.Query("category"))
	cars, err := h.tenantService.GetEffectiveCatalog(c.Request.Context(), tenant, category)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to load catalog", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load catalog"})
		return
	}

	logger.Info("Catalog served",
		slog.String("domain_key", tenant.DomainKey),
		slog.Int("car_count", len(cars)),
	)
	c.JSON(http.StatusOK, dto.ToCatalogResponse(tenant, cars))
}
