package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carvoy/carvoy_backend/internal/core/domain"
	portsclients "github.com/carvoy/carvoy_backend/internal/core/ports/clients"
	"github.com/carvoy/carvoy_backend/internal/core/services"
)

// stubGeoProvider is a canned provider for chain tests.
type stubGeoProvider struct {
	name  string
	loc   domain.GeoLocation
	err   error
	calls int
}

func (p *stubGeoProvider) Name() string { return p.name }

func (p *stubGeoProvider) Lookup(ctx context.Context, ip string) (domain.GeoLocation, error) {
	p.calls++
	if p.err != nil {
		return domain.GeoLocation{}, p.err
	}
	loc := p.loc
	loc.IP = ip
	return loc, nil
}

func geoService(providers ...*stubGeoProvider) *services.GeoLocationService {
	list := make([]portsclients.GeoProvider, 0, len(providers))
	for _, p := range providers {
		list = append(list, p)
	}
	return services.NewGeoLocationService(list, nil, time.Minute, time.Second, nil)
}

func TestGeoResolve_FirstProviderWins(t *testing.T) {
	first := &stubGeoProvider{name: "one", loc: domain.GeoLocation{CountryCode: "PK", CountryName: "Pakistan", Timezone: "Asia/Karachi"}}
	second := &stubGeoProvider{name: "two", loc: domain.GeoLocation{CountryCode: "DE"}}
	svc := geoService(first, second)

	loc := svc.Resolve(context.Background(), "1.2.3.4")

	assert.Equal(t, "PK", loc.CountryCode)
	assert.Equal(t, "PKR", loc.CurrencyCode) // mapped, not provider-supplied
	assert.Equal(t, "1.2.3.4", loc.IP)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestGeoResolve_FallsThroughOnFailure(t *testing.T) {
	first := &stubGeoProvider{name: "one", err: errors.New("timeout")}
	second := &stubGeoProvider{name: "two", loc: domain.GeoLocation{CountryCode: "GB", CountryName: "United Kingdom"}}
	svc := geoService(first, second)

	loc := svc.Resolve(context.Background(), "1.2.3.4")

	assert.Equal(t, "GB", loc.CountryCode)
	assert.Equal(t, "GBP", loc.CurrencyCode)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
}

func TestGeoResolve_AllFailUsesDefault(t *testing.T) {
	first := &stubGeoProvider{name: "one", err: errors.New("network error")}
	second := &stubGeoProvider{name: "two", err: errors.New("malformed payload")}
	svc := geoService(first, second)

	loc := svc.Resolve(context.Background(), "1.2.3.4")

	assert.Equal(t, "US", loc.CountryCode)
	assert.Equal(t, "USD", loc.CurrencyCode)
	assert.Equal(t, "America/New_York", loc.Timezone)
	assert.Equal(t, "1.2.3.4", loc.IP)
}

func TestGeoResolve_NoProvidersUsesDefault(t *testing.T) {
	svc := geoService()

	loc := svc.Resolve(context.Background(), "9.9.9.9")

	assert.Equal(t, "US", loc.CountryCode)
}
