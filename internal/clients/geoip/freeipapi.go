package geoip

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
)

// FreeIPAPIProvider queries freeipapi.com. It carries no currency field, so
// results rely on the caller's country-to-currency mapping.
type FreeIPAPIProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewFreeIPAPIProvider creates a provider against freeipapi.com. baseURL is
// overridable for tests; pass "" for the production endpoint.
func NewFreeIPAPIProvider(baseURL string) *FreeIPAPIProvider {
	if baseURL == "" {
		baseURL = "https://freeipapi.com/api"
	}
	return &FreeIPAPIProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

var _ portsclients.GeoProvider = (*FreeIPAPIProvider)(nil)

func (p *FreeIPAPIProvider) Name() string { return "freeipapi.com" }

type freeIPAPIPayload struct {
	IPAddress   string  `json:"ipAddress"`
	CountryCode string  `json:"countryCode"`
	CountryName string  `json:"countryName"`
	RegionName  string  `json:"regionName"`
	CityName    string  `json:"cityName"`
	TimeZone    string  `json:"timeZone"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func (p *FreeIPAPIProvider) Lookup(ctx context.Context, ip string) (domain.GeoLocation, error) {
	url := fmt.Sprintf("%s/json/%s", p.baseURL, ip)

	payload, err := fetchJSON[freeIPAPIPayload](ctx, p.httpClient, url)
	if err != nil {
		return domain.GeoLocation{}, err
	}
	if payload.CountryCode == "" {
		return domain.GeoLocation{}, fmt.Errorf("freeipapi.com returned no country for %q", ip)
	}

	return domain.GeoLocation{
		IP:          payload.IPAddress,
		CountryCode: payload.CountryCode,
		CountryName: payload.CountryName,
		City:        payload.CityName,
		Region:      payload.RegionName,
		Timezone:    payload.TimeZone,
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
	}, nil
}
