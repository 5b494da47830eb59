package controllers_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"finserver/src/api/controllers"
	"finserver/src/clients/cryptoquotes"
	"finserver/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStocksClient struct {
	mu     sync.Mutex
	prices map[string]float64
	calls  int
}

func (f *fakeStocksClient) GetQuote(ctx context.Context, symbol string) (float64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	price, ok := f.prices[symbol]
	if !ok {
		return 0, fmt.Errorf("no quote data for symbol %s", symbol)
	}
	return price, nil
}

type fakeCryptoClient struct {
	prices map[string]float64
	err    error
}

func (f *fakeCryptoClient) GetUSDPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[string]float64)
	for _, symbol := range symbols {
		if price, ok := f.prices[symbol]; ok {
			result[symbol] = price
		}
	}
	return result, nil
}

func (f *fakeCryptoClient) SupportedCoins() []cryptoquotes.Coin {
	return []cryptoquotes.Coin{
		{Symbol: "BTC", ID: "bitcoin", Name: "Bitcoin"},
		{Symbol: "ETH", ID: "ethereum", Name: "Ethereum"},
	}
}

type fakeFXClient struct {
	rate float64
	err  error
}

func (f *fakeFXClient) GetUSDToIDR(ctx context.Context) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.rate, nil
}

type fakeQuoteCache struct {
	entries map[string]interface{}
}

func newFakeQuoteCache() *fakeQuoteCache {
	return &fakeQuoteCache{entries: make(map[string]interface{})}
}

func (c *fakeQuoteCache) Get(key string, result interface{}) error {
	value, ok := c.entries[key]
	if !ok {
		return fmt.Errorf("key %s not found", key)
	}
	switch target := result.(type) {
	case *float64:
		*target = value.(float64)
	case *map[string]float64:
		*target = value.(map[string]float64)
	}
	return nil
}

func (c *fakeQuoteCache) Set(key string, value interface{}, expiration time.Duration) error {
	c.entries[key] = value
	return nil
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*utils.HTTPError)
	require.True(t, ok, "expected *utils.HTTPError, got %T", err)
	return httpErr.Code
}

func TestGetStockPricesPartialMiss(t *testing.T) {
	controller := controllers.NewMarketController(
		&fakeStocksClient{prices: map[string]float64{"BBCA": 10_250, "TLKM": 2_980}},
		&fakeCryptoClient{},
		&fakeFXClient{rate: 15_900},
		nil,
	)

	resp, err := controller.GetStockPrices(context.Background(), []string{"BBCA", "TLKM", "ZZZZ"})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.SymbolsRequested)
	assert.Equal(t, 2, resp.SymbolsFound)
	assert.Equal(t, 10_250.0, resp.Prices["BBCA"])
	assert.NotContains(t, resp.Prices, "ZZZZ")
}

func TestGetStockPricesSkipsBlankSymbols(t *testing.T) {
	controller := controllers.NewMarketController(
		&fakeStocksClient{prices: map[string]float64{"BBCA": 10_250}},
		&fakeCryptoClient{},
		&fakeFXClient{},
		nil,
	)

	resp, err := controller.GetStockPrices(context.Background(), []string{"bbca", "", "  "})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.SymbolsRequested)
	assert.Equal(t, 1, resp.SymbolsFound)
	assert.Equal(t, 10_250.0, resp.Prices["BBCA"])
}

func TestGetStockPricesAllMiss(t *testing.T) {
	controller := controllers.NewMarketController(
		&fakeStocksClient{prices: map[string]float64{}},
		&fakeCryptoClient{},
		&fakeFXClient{},
		nil,
	)

	_, err := controller.GetStockPrices(context.Background(), []string{"AAAA", "BBBB"})
	require.Error(t, err)
	assert.Equal(t, 404, httpStatus(t, err))
}

func TestGetStockPricesValidation(t *testing.T) {
	controller := controllers.NewMarketController(&fakeStocksClient{}, &fakeCryptoClient{}, &fakeFXClient{}, nil)

	_, err := controller.GetStockPrices(context.Background(), nil)
	assert.Equal(t, 400, httpStatus(t, err))

	tooMany := make([]string, 51)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("SYM%d", i)
	}
	_, err = controller.GetStockPrices(context.Background(), tooMany)
	assert.Equal(t, 400, httpStatus(t, err))
}

func TestGetStockPricesUsesCache(t *testing.T) {
	stocksClient := &fakeStocksClient{prices: map[string]float64{"BBCA": 10_250}}
	cache := newFakeQuoteCache()
	controller := controllers.NewMarketController(stocksClient, &fakeCryptoClient{}, &fakeFXClient{}, cache)

	_, err := controller.GetStockPrices(context.Background(), []string{"BBCA"})
	require.NoError(t, err)
	assert.Equal(t, 1, stocksClient.calls)

	resp, err := controller.GetStockPrices(context.Background(), []string{"BBCA"})
	require.NoError(t, err)
	assert.Equal(t, 1, stocksClient.calls, "second request should be served from cache")
	assert.Equal(t, 10_250.0, resp.Prices["BBCA"])
}

func TestGetCryptoPrices(t *testing.T) {
	controller := controllers.NewMarketController(
		&fakeStocksClient{},
		&fakeCryptoClient{prices: map[string]float64{"BTC": 60_000, "ETH": 2_500}},
		&fakeFXClient{},
		nil,
	)

	resp, err := controller.GetCryptoPrices(context.Background(), []string{"btc", "UNKNOWN"})
	require.NoError(t, err)
	assert.Equal(t, 60_000.0, resp.Prices["BTC"])
	assert.Equal(t, 2, resp.SymbolsRequested)
	assert.Equal(t, 1, resp.SymbolsFound)
}

func TestGetCryptoPricesProviderDown(t *testing.T) {
	controller := controllers.NewMarketController(
		&fakeStocksClient{},
		&fakeCryptoClient{err: fmt.Errorf("connection refused")},
		&fakeFXClient{},
		nil,
	)

	_, err := controller.GetCryptoPrices(context.Background(), []string{"BTC"})
	require.Error(t, err)
	assert.Equal(t, 502, httpStatus(t, err))
}

func TestGetExchangeRateLive(t *testing.T) {
	controller := controllers.NewMarketController(&fakeStocksClient{}, &fakeCryptoClient{}, &fakeFXClient{rate: 15_925}, nil)

	resp := controller.GetExchangeRate(context.Background())
	assert.Equal(t, 15_925.0, resp.Rate)
	assert.Equal(t, "live", resp.Source)
}

func TestGetExchangeRateFallsBack(t *testing.T) {
	controller := controllers.NewMarketController(
		&fakeStocksClient{},
		&fakeCryptoClient{},
		&fakeFXClient{err: fmt.Errorf("provider timeout")},
		nil,
	)

	resp := controller.GetExchangeRate(context.Background())
	assert.Equal(t, controllers.FallbackUSDToIDR, resp.Rate)
	assert.Equal(t, "fallback", resp.Source)
}

func TestGetStockList(t *testing.T) {
	controller := controllers.NewMarketController(&fakeStocksClient{}, &fakeCryptoClient{}, &fakeFXClient{}, nil)

	resp := controller.GetStockList(context.Background())
	require.NotEmpty(t, resp.Stocks)
	assert.Equal(t, "BBCA", resp.Stocks[0].Symbol)
}

func TestGetCryptoList(t *testing.T) {
	controller := controllers.NewMarketController(&fakeStocksClient{}, &fakeCryptoClient{}, &fakeFXClient{}, nil)

	resp := controller.GetCryptoList(context.Background())
	require.Len(t, resp.Coins, 2)
	assert.Equal(t, "Bitcoin", resp.Coins[0].Name)
}
