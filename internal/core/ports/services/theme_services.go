package services

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/dto"
)

// ThemeResolverSvc resolves the theme a tenant site renders with.
type ThemeResolverSvc interface {
	// ResolveTheme evaluates the three-way fallback: tenant-assigned theme,
	// then the globally active theme, then the built-in default. It never
	// returns nil and never returns an error; lookup failures fall through.
	ResolveTheme(ctx context.Context, tenant *domain.Tenant) *domain.Theme
}

// ThemeAdminSvc defines the back-office CRUD operations on themes.
type ThemeAdminSvc interface {
	CreateTheme(ctx context.Context, req dto.CreateThemeRequest, creatorUserID string) (*domain.Theme, error)
	UpdateTheme(ctx context.Context, themeID string, req dto.UpdateThemeRequest, updaterUserID string) (*domain.Theme, error)
	ActivateTheme(ctx context.Context, themeID string, updaterUserID string) error
	DeleteTheme(ctx context.Context, themeID string) error
	GetThemeByID(ctx context.Context, themeID string) (*domain.Theme, error)
	ListThemes(ctx context.Context) ([]domain.Theme, error)
}

// ThemeSvcFacade combines all theme-related service interfaces
type ThemeSvcFacade interface {
	ThemeResolverSvc
	ThemeAdminSvc
}
