package fxrates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"finserver/src/clients/fxrates"
	"finserver/src/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*fxrates.FXServiceClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.ExternalClients.FX.BaseURL = server.URL
	return fxrates.NewClient(cfg), server
}

func TestGetUSDToIDR(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/latest/USD", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {"IDR": 15925.34, "EUR": 0.92}}`))
	})

	rate, err := client.GetUSDToIDR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15_925.34, rate)

	// A second call inside the TTL is served from the in-process cache.
	rate, err = client.GetUSDToIDR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15_925.34, rate)
	assert.Equal(t, 1, calls)
}

func TestGetUSDToIDRMissingRate(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base": "USD", "rates": {"EUR": 0.92}}`))
	})

	_, err := client.GetUSDToIDR(context.Background())
	assert.Error(t, err)
}

func TestGetUSDToIDRProviderError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.GetUSDToIDR(context.Background())
	assert.Error(t, err)
}
