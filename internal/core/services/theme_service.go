package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carvoy/carvoy_backend/internal/apperrors"
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsrepo "github.com/carvoy/carvoy_backend/internal/core/ports/repositories"
	portssvc "github.com/carvoy/carvoy_backend/internal/core/ports/services"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// ThemeService implements theme resolution plus the admin CRUD surface for
// themes.
type ThemeService struct {
	themeRepo portsrepo.ThemeRepositoryFacade
	logger    *slog.Logger
}

// NewThemeService creates a new ThemeService.
func NewThemeService(themeRepo portsrepo.ThemeRepositoryFacade, logger *slog.Logger) *ThemeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ThemeService{themeRepo: themeRepo, logger: logger}
}

var _ portssvc.ThemeSvcFacade = (*ThemeService)(nil)

// ResolveTheme evaluates the three-way fallback: the tenant's assigned theme,
// then the globally active theme, then the built-in default. Each lookup
// failure falls through to the next step so the UI is never left without a
// renderable theme. Callers must resolve the tenant first; its theme
// assignment is required input here.
func (s *ThemeService) ResolveTheme(ctx context.Context, tenant *domain.Tenant) *domain.Theme {
	if tenant != nil && tenant.ThemeID != "" {
		theme, err := s.themeRepo.FindThemeByID(ctx, tenant.ThemeID)
		if err == nil {
			return theme
		}
		s.logger.WarnContext(ctx, "Assigned theme unavailable, falling back to active theme",
			slog.String("theme_id", tenant.ThemeID),
			slog.String("error", err.Error()),
		)
	}

	theme, err := s.themeRepo.FindActiveTheme(ctx)
	if err == nil {
		return theme
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.WarnContext(ctx, "Active theme lookup failed, using built-in default",
			slog.String("error", err.Error()),
		)
	}

	return domain.DefaultTheme()
}

// CreateTheme handles the creation of a new theme. New themes are never
// created active; activation is a separate, exclusive operation.
func (s *ThemeService) CreateTheme(ctx context.Context, req dto.CreateThemeRequest, creatorUserID string) (*domain.Theme, error) {
	now := time.Now()
	theme := domain.Theme{
		ThemeID:         uuid.NewString(),
		Name:            req.Name,
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		BackgroundColor: req.BackgroundColor,
		AccentColor:     req.AccentColor,
		SuccessColor:    req.SuccessColor,
		WarningColor:    req.WarningColor,
		TextColor:       req.TextColor,
		BorderRadius:    req.BorderRadius,
		FontFamily:      req.FontFamily,
		Active:          false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if theme.BorderRadius == "" {
		theme.BorderRadius = "8px"
	}
	if theme.FontFamily == "" {
		theme.FontFamily = "'Inter', sans-serif"
	}

	if err := s.themeRepo.SaveTheme(ctx, theme); err != nil {
		return nil, fmt.Errorf("failed to create theme: %w", err)
	}

	return &theme, nil
}

// UpdateTheme replaces a theme's mutable fields. The active flag only changes
// through ActivateTheme.
func (s *ThemeService) UpdateTheme(ctx context.Context, themeID string, req dto.UpdateThemeRequest, updaterUserID string) (*domain.Theme, error) {
	theme, err := s.themeRepo.FindThemeByID(ctx, themeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		theme.Name = *req.Name
	}
	if req.PrimaryColor != nil {
		theme.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		theme.SecondaryColor = *req.SecondaryColor
	}
	if req.BackgroundColor != nil {
		theme.BackgroundColor = *req.BackgroundColor
	}
	if req.AccentColor != nil {
		theme.AccentColor = *req.AccentColor
	}
	if req.SuccessColor != nil {
		theme.SuccessColor = *req.SuccessColor
	}
	if req.WarningColor != nil {
		theme.WarningColor = *req.WarningColor
	}
	if req.TextColor != nil {
		theme.TextColor = *req.TextColor
	}
	if req.BorderRadius != nil {
		theme.BorderRadius = *req.BorderRadius
	}
	if req.FontFamily != nil {
		theme.FontFamily = *req.FontFamily
	}

	theme.LastUpdatedAt = time.Now()
	theme.LastUpdatedBy = updaterUserID

	if err := s.themeRepo.UpdateTheme(ctx, *theme); err != nil {
		return nil, fmt.Errorf("failed to update theme %s: %w", themeID, err)
	}

	return theme, nil
}

// ActivateTheme marks the theme globally active. The repository deactivates
// every other theme in the same transaction.
func (s *ThemeService) ActivateTheme(ctx context.Context, themeID string, updaterUserID string) error {
	if _, err := s.themeRepo.FindThemeByID(ctx, themeID); err != nil {
		return err
	}
	return s.themeRepo.ActivateTheme(ctx, themeID, updaterUserID)
}

// DeleteTheme removes a theme.
func (s *ThemeService) DeleteTheme(ctx context.Context, themeID string) error {
	return s.themeRepo.DeleteTheme(ctx, themeID)
}

// GetThemeByID retrieves a theme by its ID.
func (s *ThemeService) GetThemeByID(ctx context.Context, themeID string) (*domain.Theme, error) {
	return s.themeRepo.FindThemeByID(ctx, themeID)
}

// ListThemes retrieves all themes.
func (s *ThemeService) ListThemes(ctx context.Context) ([]domain.Theme, error) {
	return s.themeRepo.ListThemes(ctx)
}
