package paypal_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carvoy/carvoy_backend/internal/clients/paypal"
)

func paypalStub(t *testing.T, tokenCalls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/oauth2/token":
			atomic.AddInt32(tokenCalls, 1)
			user, pass, ok := r.BasicAuth()
			require.True(t, ok)
			assert.Equal(t, "client-id", user)
			assert.Equal(t, "client-secret", pass)
			_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok-1", "expires_in": 3600})
		case "/v2/checkout/orders":
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "CAPTURE", body["intent"])
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":     "ORD-1",
				"status": "CREATED",
				"links": []map[string]string{
					{"rel": "self", "href": "https://example.com/self"},
					{"rel": "approve", "href": "https://example.com/approve/ORD-1"},
				},
			})
		case "/v2/checkout/orders/ORD-1/capture":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":     "ORD-1",
				"status": "COMPLETED",
				"purchase_units": []map[string]any{
					{"payments": map[string]any{"captures": []map[string]string{{"id": "CAP-1", "status": "COMPLETED"}}}},
				},
			})
		case "/v2/checkout/orders/ORD-declined/capture":
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "ORD-declined", "status": "DECLINED"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestCreateOrder(t *testing.T) {
	var tokenCalls int32
	srv := paypalStub(t, &tokenCalls)
	defer srv.Close()

	client := paypal.NewClient(srv.URL, "client-id", "client-secret")
	order, err := client.CreateOrder(context.Background(), decimal.NewFromInt(60), "EUR", "bk-1")

	require.NoError(t, err)
	assert.Equal(t, "ORD-1", order.OrderID)
	assert.Equal(t, "https://example.com/approve/ORD-1", order.ApprovalURL)
}

func TestCaptureOrder(t *testing.T) {
	var tokenCalls int32
	srv := paypalStub(t, &tokenCalls)
	defer srv.Close()

	client := paypal.NewClient(srv.URL, "client-id", "client-secret")
	capture, err := client.CaptureOrder(context.Background(), "ORD-1")

	require.NoError(t, err)
	assert.Equal(t, "CAP-1", capture.CaptureID)
	assert.Equal(t, "COMPLETED", capture.Status)
}

func TestCaptureOrder_Declined(t *testing.T) {
	var tokenCalls int32
	srv := paypalStub(t, &tokenCalls)
	defer srv.Close()

	client := paypal.NewClient(srv.URL, "client-id", "client-secret")
	_, err := client.CaptureOrder(context.Background(), "ORD-declined")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DECLINED")
}

func TestTokenReuse(t *testing.T) {
	var tokenCalls int32
	srv := paypalStub(t, &tokenCalls)
	defer srv.Close()

	client := paypal.NewClient(srv.URL, "client-id", "client-secret")
	_, err := client.CreateOrder(context.Background(), decimal.NewFromInt(10), "USD", "bk-1")
	require.NoError(t, err)
	_, err = client.CaptureOrder(context.Background(), "ORD-1")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}
