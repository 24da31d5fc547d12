package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// themeHandler serves the public resolved theme.
type themeHandler struct {
	tenantService portssvc.TenantSvcFacade
	themeService  portssvc.ThemeSvcFacade
}

func newThemeHandler(ts portssvc.TenantSvcFacade, th portssvc.ThemeSvcFacade) *themeHandler {
	return &themeHandler{tenantService: ts, themeService: th}
}

// registerThemeRoutes registers the public theme route.
func registerThemeRoutes(rg *gin.RouterGroup, tenantService portssvc.TenantSvcFacade, themeService portssvc.ThemeSvcFacade) {
	h := newThemeHandler(tenantService, themeService)
	rg.GET("/theme", h.getTheme)
}

// getTheme godoc
// @Summary Get the theme for the requesting domain
// @Description Resolves the tenant and returns its theme tokens. Always returns a usable theme: tenant-assigned, globally active, or the built-in default.
// @Tags theme
// @Produce json
// @Success 200 {object} dto.ResolvedThemeResponse
// @Router /theme [get]
func (h *themeHandler) getTheme(c *gin.Context) {
	var tenant *domain.Tenant

	resolved, err := h.tenantService.ResolveTenant(c.Request.Context(), tenantRequestFromContext(c))
	if err == nil {
		tenant = resolved
	} else if !errors.Is(err, apperrors.ErrTenantUnavailable) {
		respondTenantError(c, err)
		return
	}
	// An unknown domain still renders: the fallback chain ends at the
	// built-in default theme.

	theme := h.themeService.ResolveTheme(c.Request.Context(), tenant)
	c.JSON(http.StatusOK, dto.ToResolvedThemeResponse(theme))
}
