package services

import (
	"context"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
)

// GeoLocationSvcFacade resolves visitor defaults from the client IP.
type GeoLocationSvcFacade interface {
	// Resolve walks the provider chain and returns the first successful
	// result, or the fixed US default when every provider fails. It never
	// returns an error to the caller.
	Resolve(ctx context.Context, ip string) domain.GeoLocation
}
