package domain

// GeoLocation is the per-request result of IP geolocation, used to pick
// sensible defaults (currency, license format) for an anonymous visitor.
// It is derived, never persisted.
type GeoLocation struct {
	IP           string  `json:"ip"`
	CountryCode  string  `json:"countryCode"`
	CountryName  string  `json:"countryName"`
	City         string  `json:"city"`
	Region       string  `json:"region"`
	Timezone     string  `json:"timezone"`
	CurrencyCode string  `json:"currencyCode"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

// DefaultGeoLocation is returned when every provider in the chain fails.
func DefaultGeoLocation(ip string) GeoLocation {
	return GeoLocation{
		IP:           ip,
		CountryCode:  "US",
		CountryName:  "United States",
		Timezone:     "America/New_York",
		CurrencyCode: "USD",
	}
}
