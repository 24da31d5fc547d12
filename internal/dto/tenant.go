package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// ResolveTenantRequest carries the request context the Domain Resolver works
// from. OverrideKey wins, then Referrer when the request is embedded, then
// Host. Bypass is only honored when enabled in config.
type ResolveTenantRequest struct {
	OverrideKey string
	Referrer    string
	Host        string
	Embedded    bool
	Bypass      bool
}

// CarOverrideDTO is one per-tenant car adjustment as accepted/returned by the
// admin API.
type CarOverrideDTO struct {
	CarID         string          `json:"carID" binding:"required"`
	PriceOverride decimal.Decimal `json:"priceOverride"`
	Visible       bool            `json:"visible"`
}

// CreateTenantRequest defines the data needed to create a new tenant.
type CreateTenantRequest struct {
	DomainKey string           `json:"domainKey" binding:"required,tenantkey"`
	Name      string           `json:"name" binding:"required"`
	ThemeID   string           `json:"themeID"`
	Overrides []CarOverrideDTO `json:"overrides" binding:"dive"`
	Active    *bool            `json:"active"`
}

// UpdateTenantRequest defines the mutable tenant fields. Nil pointers leave
// the stored value untouched.
type UpdateTenantRequest struct {
	DomainKey *string          `json:"domainKey" binding:"omitempty,tenantkey"`
	Name      *string          `json:"name"`
	ThemeID   *string          `json:"themeID"`
	Overrides []CarOverrideDTO `json:"overrides" binding:"dive"`
	Active    *bool            `json:"active"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID      string           `json:"tenantID"`
	DomainKey     string           `json:"domainKey"`
	Name          string           `json:"name"`
	ThemeID       string           `json:"themeID,omitempty"`
	Overrides     []CarOverrideDTO `json:"overrides"`
	Active        bool             `json:"active"`
	CreatedAt     time.Time        `json:"createdAt"`
	LastUpdatedAt time.Time        `json:"lastUpdatedAt"`
}

// ToTenantResponse converts a domain Tenant to a TenantResponse DTO
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	overrides := make([]CarOverrideDTO, len(t.Overrides))
	for i, o := range t.Overrides {
		overrides[i] = CarOverrideDTO{
			CarID:         o.CarID,
			PriceOverride: o.PriceOverride,
			Visible:       o.Visible,
		}
	}
	return TenantResponse{
		TenantID:      t.TenantID,
		DomainKey:     t.DomainKey,
		Name:          t.Name,
		ThemeID:       t.ThemeID,
		Overrides:     overrides,
		Active:        t.Active,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
}

// ToDomainOverrides converts override DTOs to domain tuples.
func ToDomainOverrides(dtos []CarOverrideDTO) []domain.CarOverride {
	overrides := make([]domain.CarOverride, len(dtos))
	for i, o := range dtos {
		overrides[i] = domain.CarOverride{
			CarID:         o.CarID,
			PriceOverride: o.PriceOverride,
			Visible:       o.Visible,
		}
	}
	return overrides
}
