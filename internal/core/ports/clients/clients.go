// Package clients declares the ports for external collaborators the pipeline
// calls over HTTP: the live rate feed, the IP geolocation providers and the
// payment capture black box. Implementations live under internal/clients.
package clients

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// RateSource fetches a live rate table for a base currency. Failures surface
// as apperrors.ErrRatesUnavailable so callers can degrade to unconverted
// amounts.
type RateSource interface {
	FetchRates(ctx context.Context, base string) (*domain.RateTable, error)
}

// GeoProvider is one capability-equivalent entry in the geolocation fallback
// chain. Network errors, malformed payloads and in-payload error fields are all
// reported the same way: a non-nil error.
type GeoProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// Lookup resolves the location of the given IP. An empty IP asks the
	// provider to locate the caller's egress address.
	Lookup(ctx context.Context, ip string) (domain.GeoLocation, error)
}

// PaymentOrder is the provider-side handle for a pending payment.
type PaymentOrder struct {
	OrderID     string
	ApprovalURL string
}

// PaymentCapture is the outcome of capturing an approved order.
type PaymentCapture struct {
	CaptureID string
	Status    string
}

// PaymentProcessor is the payment black box (PayPal in production), keyed by
// opaque order ids.
type PaymentProcessor interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currencyCode string, reference string) (*PaymentOrder, error)
	CaptureOrder(ctx context.Context, orderID string) (*PaymentCapture, error)
}
