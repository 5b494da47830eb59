package stocks_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"finserver/src/clients/stocks"
	"finserver/src/utils/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSymbol(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"BBCA", "BBCA.JK"},
		{"bbca", "BBCA.JK"},
		{" tlkm ", "TLKM.JK"},
		{"BBCA.JK", "BBCA.JK"},
		{"AAPL.US", "AAPL.US"},
		{"", ""},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, stocks.NormalizeSymbol(tc.in))
	}
}

func TestGetQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GLOBAL_QUOTE", r.URL.Query().Get("function"))
		assert.Equal(t, "BBCA.JK", r.URL.Query().Get("symbol"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Global Quote": {"01. symbol": "BBCA.JK", "05. price": "10250.0000"}}`))
	}))
	defer server.Close()

	client := &stocks.StocksServiceClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: server.URL,
		APIKey:  "test-key",
	}

	price, err := client.GetQuote(context.Background(), "BBCA")
	require.NoError(t, err)
	assert.Equal(t, 10_250.0, price)
}

func TestGetQuoteUnknownSymbol(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Global Quote": {}}`))
	}))
	defer server.Close()

	client := &stocks.StocksServiceClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: server.URL,
		APIKey:  "test-key",
	}

	_, err := client.GetQuote(context.Background(), "ZZZZ")
	assert.Error(t, err)
}
