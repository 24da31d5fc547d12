package dto

import (
	"time"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// CreateThemeRequest defines the data needed to create a theme.
type CreateThemeRequest struct {
	Name            string `json:"name" binding:"required"`
	PrimaryColor    string `json:"primaryColor" binding:"required,hexcolor"`
	SecondaryColor  string `json:"secondaryColor" binding:"required,hexcolor"`
	BackgroundColor string `json:"backgroundColor" binding:"required,hexcolor"`
	AccentColor     string `json:"accentColor" binding:"required,hexcolor"`
	SuccessColor    string `json:"successColor" binding:"required,hexcolor"`
	WarningColor    string `json:"warningColor" binding:"required,hexcolor"`
	TextColor       string `json:"textColor" binding:"required,hexcolor"`
	BorderRadius    string `json:"borderRadius"`
	FontFamily      string `json:"fontFamily"`
}

// UpdateThemeRequest defines the mutable theme fields. Nil pointers leave the
// stored value untouched. The active flag changes only through activation.
type UpdateThemeRequest struct {
	Name            *string `json:"name"`
	PrimaryColor    *string `json:"primaryColor" binding:"omitempty,hexcolor"`
	SecondaryColor  *string `json:"secondaryColor" binding:"omitempty,hexcolor"`
	BackgroundColor *string `json:"backgroundColor" binding:"omitempty,hexcolor"`
	AccentColor     *string `json:"accentColor" binding:"omitempty,hexcolor"`
	SuccessColor    *string `json:"successColor" binding:"omitempty,hexcolor"`
	WarningColor    *string `json:"warningColor" binding:"omitempty,hexcolor"`
	TextColor       *string `json:"textColor" binding:"omitempty,hexcolor"`
	BorderRadius    *string `json:"borderRadius"`
	FontFamily      *string `json:"fontFamily"`
}

// ThemeResponse defines the data returned for a theme (admin surface).
type ThemeResponse struct {
	ThemeID       string            `json:"themeID"`
	Name          string            `json:"name"`
	Tokens        map[string]string `json:"tokens"`
	Active        bool              `json:"active"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ResolvedThemeResponse is the public payload: just the token map the
// presentation layer applies.
type ResolvedThemeResponse struct {
	ThemeID string            `json:"themeID"`
	Name    string            `json:"name"`
	Tokens  map[string]string `json:"tokens"`
}

// ToThemeResponse converts a domain Theme to a ThemeResponse DTO
func ToThemeResponse(t *domain.Theme) ThemeResponse {
	return ThemeResponse{
		ThemeID:       t.ThemeID,
		Name:          t.Name,
		Tokens:        t.Tokens(),
		Active:        t.Active,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToResolvedThemeResponse converts a resolved theme to the public payload.
func ToResolvedThemeResponse(t *domain.Theme) ResolvedThemeResponse {
	return ResolvedThemeResponse{
		ThemeID: t.ThemeID,
		Name:    t.Name,
		Tokens:  t.Tokens(),
	}
}
