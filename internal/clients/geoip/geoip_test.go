package geoip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carvoy/carvoy_backend/internal/clients/geoip"
)

func TestIPAPIProvider_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/json/1.2.3.4")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"country": "Germany",
			"countryCode": "DE",
			"regionName": "Berlin",
			"city": "Berlin",
			"timezone": "Europe/Berlin",
			"currency": "EUR",
			"lat": 52.52,
			"lon": 13.405,
			"query": "1.2.3.4"
		}`))
	}))
	defer srv.Close()

	provider := geoip.NewIPAPIProvider(srv.URL)
	loc, err := provider.Lookup(context.Background(), "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "DE", loc.CountryCode)
	assert.Equal(t, "EUR", loc.CurrencyCode)
	assert.Equal(t, "Europe/Berlin", loc.Timezone)
	assert.Equal(t, "1.2.3.4", loc.IP)
}

func TestIPAPIProvider_InPayloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "fail", "message": "private range", "query": "10.0.0.1"}`))
	}))
	defer srv.Close()

	provider := geoip.NewIPAPIProvider(srv.URL)
	_, err := provider.Lookup(context.Background(), "10.0.0.1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "private range")
}

func TestIPWhoisProvider_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"ip": "1.2.3.4",
			"country": "Pakistan",
			"country_code": "PK",
			"region": "Sindh",
			"city": "Karachi",
			"latitude": 24.86,
			"longitude": 67.0,
			"timezone": {"id": "Asia/Karachi"},
			"currency": {"code": "PKR"}
		}`))
	}))
	defer srv.Close()

	provider := geoip.NewIPWhoisProvider(srv.URL)
	loc, err := provider.Lookup(context.Background(), "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "PK", loc.CountryCode)
	assert.Equal(t, "PKR", loc.CurrencyCode)
	assert.Equal(t, "Asia/Karachi", loc.Timezone)
}

func TestIPWhoisProvider_InPayloadFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "reserved range"}`))
	}))
	defer srv.Close()

	provider := geoip.NewIPWhoisProvider(srv.URL)
	_, err := provider.Lookup(context.Background(), "127.0.0.1")

	require.Error(t, err)
}

func TestFreeIPAPIProvider_NoCurrencyField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"ipAddress": "1.2.3.4",
			"countryCode": "FR",
			"countryName": "France",
			"regionName": "Ile-de-France",
			"cityName": "Paris",
			"timeZone": "Europe/Paris",
			"latitude": 48.85,
			"longitude": 2.35
		}`))
	}))
	defer srv.Close()

	provider := geoip.NewFreeIPAPIProvider(srv.URL)
	loc, err := provider.Lookup(context.Background(), "1.2.3.4")

	require.NoError(t, err)
	assert.Equal(t, "FR", loc.CountryCode)
	assert.Empty(t, loc.CurrencyCode)
}

func TestProviders_HTTPStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := geoip.NewIPAPIProvider(srv.URL).Lookup(context.Background(), "1.2.3.4")
	require.Error(t, err)

	_, err = geoip.NewIPWhoisProvider(srv.URL).Lookup(context.Background(), "1.2.3.4")
	require.Error(t, err)
}
