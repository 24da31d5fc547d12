// Package rates implements the live exchange-rate feed client against an
// open.er-api.com compatible endpoint.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
)

const defaultTimeout = 10 * time.Second

// Client fetches rate tables over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a rates client for the given base URL, e.g.
// "https://open.er-api.com/v6".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

var _ portsclients.RateSource = (*Client)(nil)

type ratesPayload struct {
	Result             string             `json:"result"`
	BaseCode           string             `json:"base_code"`
	Rates              map[string]float64 `json:"rates"`
	TimeLastUpdateUnix int64              `json:"time_last_update_unix"`
}

// FetchRates retrieves the latest rate table for a base currency.
func (c *Client) FetchRates(ctx context.Context, base string) (*domain.RateTable, error) {
	if base == "" {
		base = domain.BaseCurrencyCode
	}
	url := fmt.Sprintf("%s/latest/%s", c.baseURL, strings.ToUpper(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates endpoint returned status %d", resp.StatusCode)
	}

	var payload ratesPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode rates payload: %w", err)
	}
	if payload.Result != "success" {
		return nil, fmt.Errorf("rates endpoint reported result %q", payload.Result)
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("rates payload for %s contained no rates", base)
	}

	table := &domain.RateTable{
		Base:      payload.BaseCode,
		Rates:     make(map[string]decimal.Decimal, len(payload.Rates)),
		FetchedAt: time.Unix(payload.TimeLastUpdateUnix, 0),
	}
	if table.Base == "" {
		table.Base = strings.ToUpper(base)
	}
	if payload.TimeLastUpdateUnix == 0 {
		table.FetchedAt = time.Now()
	}
	for code, rate := range payload.Rates {
		table.Rates[code] = decimal.NewFromFloat(rate)
	}
	return table, nil
}
