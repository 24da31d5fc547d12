package mapping

import (
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/models"
)

// ToModelTheme converts a domain Theme to a model Theme
func ToModelTheme(d domain.Theme) models.Theme {
	return models.Theme{
		ThemeID:         d.ThemeID,
		Name:            d.Name,
		PrimaryColor:    d.PrimaryColor,
		SecondaryColor:  d.SecondaryColor,
		BackgroundColor: d.BackgroundColor,
		AccentColor:     d.AccentColor,
		SuccessColor:    d.SuccessColor,
		WarningColor:    d.WarningColor,
		TextColor:       d.TextColor,
		BorderRadius:    d.BorderRadius,
		FontFamily:      d.FontFamily,
		Active:          d.Active,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTheme converts a model Theme to a domain Theme
func ToDomainTheme(m models.Theme) domain.Theme {
	return domain.Theme{
		ThemeID:         m.ThemeID,
		Name:            m.Name,
		PrimaryColor:    m.PrimaryColor,
		SecondaryColor:  m.SecondaryColor,
		BackgroundColor: m.BackgroundColor,
		AccentColor:     m.AccentColor,
		SuccessColor:    m.SuccessColor,
		WarningColor:    m.WarningColor,
		TextColor:       m.TextColor,
		BorderRadius:    m.BorderRadius,
		FontFamily:      m.FontFamily,
		Active:          m.Active,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainThemeSlice converts a slice of model Themes to a slice of domain Themes
func ToDomainThemeSlice(ms []models.Theme) []domain.Theme {
	ds := make([]domain.Theme, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTheme(m)
	}
	return ds
}
