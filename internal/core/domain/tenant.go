package domain

import "github.com/shopspring/decimal"

// CarOverride is a per-tenant adjustment for a single catalog car. A zero
// PriceOverride means "keep the base price".
type CarOverride struct {
	CarID         string          `json:"carID"`
	PriceOverride decimal.Decimal `json:"priceOverride"`
	Visible       bool            `json:"visible"`
}

// Tenant is the per-domain configuration of the booking site. DomainKey is a
// bare lowercase hostname (no scheme, path or port).
type Tenant struct {
	TenantID  string        `json:"tenantID"`
	DomainKey string        `json:"domainKey"`
	Name      string        `json:"name"`
	ThemeID   string        `json:"themeID,omitempty"` // optional assigned theme
	Overrides []CarOverride `json:"overrides"`
	Active    bool          `json:"active"`
	// AllowAll marks the synthetic bypass tenant used on staging. It never
	// comes from the config store.
	AllowAll bool `json:"-"`
	AuditFields
}

// OverrideFor returns the override tuple for the given car, if any.
func (t *Tenant) OverrideFor(carID string) (CarOverride, bool) {
	for _, o := range t.Overrides {
		if o.CarID == carID {
			return o, true
		}
	}
	return CarOverride{}, false
}

// BypassTenant returns the synthetic allow-all tenant used when catalog bypass
// is requested. It carries no overrides and is always active.
func BypassTenant() *Tenant {
	return &Tenant{
		TenantID:  "bypass",
		DomainKey: "*",
		Name:      "catalog bypass",
		Active:    true,
		AllowAll:  true,
	}
}
