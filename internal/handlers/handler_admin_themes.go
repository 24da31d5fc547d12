package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
	"github.com/carvoy/carvoy_backend/internal/middleware"
)

// adminThemeHandler handles the back-office theme CRUD and activation.
type adminThemeHandler struct {
	themeService portssvc.ThemeSvcFacade
}

func newAdminThemeHandler(ts portssvc.ThemeSvcFacade) *adminThemeHandler {
	return &adminThemeHandler{themeService: ts}
}

// registerAdminThemeRoutes registers routes related to theme administration.
func registerAdminThemeRoutes(rg *gin.RouterGroup, themeService portssvc.ThemeSvcFacade) {
	h := newAdminThemeHandler(themeService)

	themes := rg.Group("/themes")
	{
		themes.POST("", h.createTheme)
		themes.GET("", h.listThemes)
		themes.GET("/:id", h.getTheme)
		themes.PUT("/:id", h.updateTheme)
		themes.POST("/:id/activate", h.activateTheme)
		themes.DELETE("/:id", h.deleteTheme)
	}
}

// createTheme godoc
// @Summary Create a theme
// @Description Creates a new theme. New themes are never active; activation is a separate explicit step.
// @Tags admin-themes
// @Accept json
// @Produce json
// @Param theme body dto.CreateThemeRequest true "Theme tokens"
// @Success 201 {object} dto.ThemeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /admin/themes [post]
func (h *adminThemeHandler) createTheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	theme, err := h.themeService.CreateTheme(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create theme", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create theme"})
		}
		return
	}

	logger.Info("Theme created", slog.String("theme_id", theme.ThemeID))
	c.JSON(http.StatusCreated, dto.ToThemeResponse(theme))
}

// listThemes godoc
// @Summary List all themes
// @Tags admin-themes
// @Produce json
// @Success 200 {array} dto.ThemeResponse
// @Security BearerAuth
// @Router /admin/themes [get]
func (h *adminThemeHandler) listThemes(c *gin.Context) {
	themes, err := h.themeService.ListThemes(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list themes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list themes"})
		return
	}

	out := make([]dto.ThemeResponse, len(themes))
	for i := range themes {
		out[i] = dto.ToThemeResponse(&themes[i])
	}
	c.JSON(http.StatusOK, out)
}

// getTheme godoc
// @Summary Get a theme
// @Tags admin-themes
// @Produce json
// @Param id path string true "Theme ID"
// @Success 200 {object} dto.ThemeResponse
// @Failure 404 {object} map[string]string "Theme not found"
// @Security BearerAuth
// @Router /admin/themes/{id} [get]
func (h *adminThemeHandler) getTheme(c *gin.Context) {
	theme, err := h.themeService.GetThemeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve theme"})
		return
	}
	c.JSON(http.StatusOK, dto.ToThemeResponse(theme))
}

// updateTheme godoc
// @Summary Update a theme
// @Description Updates theme tokens. The active flag cannot be set here; use the activate endpoint.
// @Tags admin-themes
// @Accept json
// @Produce json
// @Param id path string true "Theme ID"
// @Param theme body dto.UpdateThemeRequest true "Fields to update"
// @Success 200 {object} dto.ThemeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Theme not found"
// @Security BearerAuth
// @Router /admin/themes/{id} [put]
func (h *adminThemeHandler) updateTheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	theme, err := h.themeService.UpdateTheme(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update theme", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update theme"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToThemeResponse(theme))
}

// activateTheme godoc
// @Summary Activate a theme
// @Description Makes the theme the single globally active one. The previous active theme is deactivated in the same transaction.
// @Tags admin-themes
// @Param id path string true "Theme ID"
// @Success 204
// @Failure 404 {object} map[string]string "Theme not found"
// @Security BearerAuth
// @Router /admin/themes/{id}/activate [post]
func (h *adminThemeHandler) activateTheme(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	themeID := c.Param("id")
	if err := h.themeService.ActivateTheme(c.Request.Context(), themeID, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
			return
		}
		logger.Error("Failed to activate theme", slog.String("theme_id", themeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate theme"})
		return
	}

	logger.Info("Theme activated", slog.String("theme_id", themeID))
	c.Status(http.StatusNoContent)
}

// deleteTheme godoc
// @Summary Delete a theme
// @Tags admin-themes
// @Param id path string true "Theme ID"
// @Success 204
// @Failure 404 {object} map[string]string "Theme not found"
// @Failure 409 {object} map[string]string "Theme is assigned to a tenant"
// @Security BearerAuth
// @Router /admin/themes/{id} [delete]
func (h *adminThemeHandler) deleteTheme(c *gin.Context) {
	if err := h.themeService.DeleteTheme(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusConflict, gin.H{"error": "Theme is assigned to a tenant"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete theme"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
