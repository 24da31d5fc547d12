package mapping

import (
	"github.com/carvoy/carvoy_backend/internal/core/domain"
	"github.com/carvoy/carvoy_backend/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant (overrides are
// mapped separately, they live in their own table)
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:    d.TenantID,
		DomainKey:   d.DomainKey,
		Name:        d.Name,
		ThemeID:     d.ThemeID,
		Active:      d.Active,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelOverrides converts a domain Tenant's override tuples to rows.
func ToModelOverrides(d domain.Tenant) []models.TenantCarOverride {
	rows := make([]models.TenantCarOverride, len(d.Overrides))
	for i, o := range d.Overrides {
		rows[i] = models.TenantCarOverride{
			TenantID:      d.TenantID,
			CarID:         o.CarID,
			PriceOverride: o.PriceOverride,
			Visible:       o.Visible,
		}
	}
	return rows
}

// ToDomainTenant converts a model Tenant plus its override rows to a domain Tenant
func ToDomainTenant(m models.Tenant, overrides []models.TenantCarOverride) domain.Tenant {
	tuples := make([]domain.CarOverride, len(overrides))
	for i, o := range overrides {
		tuples[i] = domain.CarOverride{
			CarID:         o.CarID,
			PriceOverride: o.PriceOverride,
			Visible:       o.Visible,
		}
	}
	return domain.Tenant{
		TenantID:    m.TenantID,
		DomainKey:   m.DomainKey,
		Name:        m.Name,
		ThemeID:     m.ThemeID,
		Overrides:   tuples,
		Active:      m.Active,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
