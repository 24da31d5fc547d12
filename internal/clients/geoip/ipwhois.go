package geoip

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
)

// IPWhoisProvider queries ipwho.is.
type IPWhoisProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPWhoisProvider creates a provider against ipwho.is. baseURL is
// overridable for tests; pass "" for the production endpoint.
func NewIPWhoisProvider(baseURL string) *IPWhoisProvider {
	if baseURL == "" {
		baseURL = "https://ipwho.is"
	}
	return &IPWhoisProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

var _ portsclients.GeoProvider = (*IPWhoisProvider)(nil)

func (p *IPWhoisProvider) Name() string { return "ipwho.is" }

type ipWhoisPayload struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	IP          string  `json:"ip"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Region      string  `json:"region"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    struct {
		ID string `json:"id"`
	} `json:"timezone"`
	Currency struct {
		Code string `json:"code"`
	} `json:"currency"`
}

// Lookup resolves an IP. ipwho.is signals failure inside a 200 response via
// the success field.
func (p *IPWhoisProvider) Lookup(ctx context.Context, ip string) (domain.GeoLocation, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, ip)

	payload, err := fetchJSON[ipWhoisPayload](ctx, p.httpClient, url)
	if err != nil {
		return domain.GeoLocation{}, err
	}
	if !payload.Success {
		return domain.GeoLocation{}, fmt.Errorf("ipwho.is lookup failed: %s", payload.Message)
	}

	return domain.GeoLocation{
		IP:           payload.IP,
		CountryCode:  payload.CountryCode,
		CountryName:  payload.Country,
		City:         payload.City,
		Region:       payload.Region,
		Timezone:     payload.Timezone.ID,
		CurrencyCode: payload.Currency.Code,
		Latitude:     payload.Latitude,
		Longitude:    payload.Longitude,
	}, nil
}
