// Package geoip implements the IP geolocation provider chain. Each provider
// wraps one free endpoint; they are capability-equivalent and tried in order.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
)

const defaultTimeout = 5 * time.Second

// IPAPIProvider queries ip-api.com.
type IPAPIProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPAPIProvider creates a provider against ip-api.com. baseURL is
// overridable for tests; pass "" for the production endpoint.
func NewIPAPIProvider(baseURL string) *IPAPIProvider {
	if baseURL == "" {
		baseURL = "http://ip-api.com"
	}
	return &IPAPIProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

var _ portsclients.GeoProvider = (*IPAPIProvider)(nil)

func (p *IPAPIProvider) Name() string { return "ip-api.com" }

type ipAPIPayload struct {
	Status      string  `json:"status"`
	Message     string  `json:"message"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Timezone    string  `json:"timezone"`
	Currency    string  `json:"currency"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Query       string  `json:"query"`
}

// Lookup resolves an IP. ip-api.com signals failure inside a 200 response via
// the status field.
func (p *IPAPIProvider) Lookup(ctx context.Context, ip string) (domain.GeoLocation, error) {
	url := fmt.Sprintf("%s/json/%s?fields=status,message,country,countryCode,regionName,city,timezone,currency,lat,lon,query", p.baseURL, ip)

	payload, err := fetchJSON[ipAPIPayload](ctx, p.httpClient, url)
	if err != nil {
		return domain.GeoLocation{}, err
	}
	if payload.Status != "success" {
		return domain.GeoLocation{}, fmt.Errorf("ip-api.com lookup failed: %s", payload.Message)
	}

	return domain.GeoLocation{
		IP:           payload.Query,
		CountryCode:  payload.CountryCode,
		CountryName:  payload.Country,
		City:         payload.City,
		Region:       payload.RegionName,
		Timezone:     payload.Timezone,
		CurrencyCode: payload.Currency,
		Latitude:     payload.Lat,
		Longitude:    payload.Lon,
	}, nil
}

func fetchJSON[T any](ctx context.Context, client *http.Client, url string) (T, error) {
	var zero T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to build geolocation request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("geolocation endpoint returned status %d", resp.StatusCode)
	}

	var payload T
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return zero, fmt.Errorf("failed to decode geolocation payload: %w", err)
	}
	return payload, nil
}
