package models

import "github.com/shopspring/decimal"

// Tenant represents a row in the tenants table.
type Tenant struct {
	TenantID  string `json:"tenantID"`
	DomainKey string `json:"domainKey"`
	Name      string `json:"name"`
	ThemeID   string `json:"themeID"` // empty when no theme is assigned
	Active    bool   `json:"active"`
	AuditFields
}

// TenantCarOverride represents a row in the tenant_car_overrides table.
type TenantCarOverride struct {
	TenantID      string          `json:"tenantID"`
	CarID         string          `json:"carID"`
	PriceOverride decimal.Decimal `json:"priceOverride"` // zero means keep base price
	Visible       bool            `json:"visible"`
}
