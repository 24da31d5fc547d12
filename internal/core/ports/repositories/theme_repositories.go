package repositories

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// ThemeReader defines read operations for themes
type ThemeReader interface {
	// FindThemeByID retrieves a theme by its ID.
	FindThemeByID(ctx context.Context, themeID string) (*domain.Theme, error)

	// FindActiveTheme retrieves the single globally active theme, or
	// apperrors.ErrNotFound when none is marked active.
	FindActiveTheme(ctx context.Context) (*domain.Theme, error)

	// ListThemes retrieves all themes (admin surface).
	ListThemes(ctx context.Context) ([]domain.Theme, error)
}

// ThemeWriter defines write operations for themes
type ThemeWriter interface {
	// SaveTheme persists a new theme.
	SaveTheme(ctx context.Context, theme domain.Theme) error

	// UpdateTheme replaces a theme's mutable fields.
	UpdateTheme(ctx context.Context, theme domain.Theme) error

	// ActivateTheme marks the given theme active and deactivates every other
	// theme in the same transaction, preserving the single-active invariant.
	ActivateTheme(ctx context.Context, themeID string, updaterUserID string) error

	// DeleteTheme removes a theme.
	DeleteTheme(ctx context.Context, themeID string) error
}

// ThemeRepositoryFacade combines all theme-related repository interfaces
type ThemeRepositoryFacade interface {
	ThemeReader
	ThemeWriter
}

// ThemeRepositoryWithTx extends ThemeRepositoryFacade with transaction capabilities
type ThemeRepositoryWithTx interface {
	ThemeRepositoryFacade
	TransactionManager
}
