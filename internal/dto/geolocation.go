package dto

import "github.com/carvoy/carvoy_backend/internal/core/domain"

// GeoLocationResponse is the visitor-defaults payload for the booking UI.
type GeoLocationResponse struct {
	IP           string  `json:"ip"`
	CountryCode  string  `json:"countryCode"`
	CountryName  string  `json:"countryName"`
	City         string  `json:"city,omitempty"`
	Region       string  `json:"region,omitempty"`
	Timezone     string  `json:"timezone"`
	CurrencyCode string  `json:"currencyCode"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
}

// ToGeoLocationResponse converts a domain GeoLocation to its response DTO.
func ToGeoLocationResponse(g domain.GeoLocation) GeoLocationResponse {
	return GeoLocationResponse{
		IP:           g.IP,
		CountryCode:  g.CountryCode,
		CountryName:  g.CountryName,
		City:         g.City,
		Region:       g.Region,
		Timezone:     g.Timezone,
		CurrencyCode: g.CurrencyCode,
		Latitude:     g.Latitude,
		Longitude:    g.Longitude,
	}
}
