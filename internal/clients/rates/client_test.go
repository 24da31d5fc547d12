package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carvoy/carvoy_backend/internal/clients/rates"
)

func TestFetchRates_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"result": "success",
			"base_code": "USD",
			"time_last_update_unix": 1756339200,
			"rates": {"USD": 1, "EUR": 0.92, "PKR": 278.5}
		}`))
	}))
	defer srv.Close()

	client := rates.NewClient(srv.URL)
	table, err := client.FetchRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.Len(t, table.Rates, 3)
	assert.True(t, table.Rates["EUR"].InexactFloat64() > 0.9)
}

func TestFetchRates_ErrorResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": "error", "error-type": "unsupported-code"}`))
	}))
	defer srv.Close()

	client := rates.NewClient(srv.URL)
	_, err := client.FetchRates(context.Background(), "XXX")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error")
}

func TestFetchRates_HTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := rates.NewClient(srv.URL)
	_, err := client.FetchRates(context.Background(), "USD")

	require.Error(t, err)
}

func TestFetchRates_DefaultsBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/USD", r.URL.Path)
		_, _ = w.Write([]byte(`{"result": "success", "base_code": "USD", "rates": {"USD": 1}}`))
	}))
	defer srv.Close()

	client := rates.NewClient(srv.URL)
	table, err := client.FetchRates(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "USD", table.Base)
	assert.False(t, table.FetchedAt.IsZero())
}
