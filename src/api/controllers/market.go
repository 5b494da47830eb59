package controllers

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"finserver/src/clients/cryptoquotes"
	"finserver/src/clients/fxrates"
	"finserver/src/clients/stocks"
	"finserver/src/schemas"
	"finserver/src/utils"
	redis_utils "finserver/src/utils/redis"
)

// quoteCacheTTL bounds how stale a proxied market quote may be.
const quoteCacheTTL = 5 * time.Minute

// QuoteCache is the subset of the Redis handler the market proxy needs.
// Satisfied by redis_utils.RedisHandler; nil disables caching.
type QuoteCache interface {
	Get(key string, result interface{}) error
	Set(key string, value interface{}, expiration time.Duration) error
}

// idxStocks is the fixed set of Jakarta-exchange tickers the dashboard
// offers in its pickers.
var idxStocks = []schemas.StockListEntry{
	{Symbol: "BBCA", Name: "Bank Central Asia"},
	{Symbol: "BBRI", Name: "Bank Rakyat Indonesia"},
	{Symbol: "BMRI", Name: "Bank Mandiri"},
	{Symbol: "BBNI", Name: "Bank Negara Indonesia"},
	{Symbol: "TLKM", Name: "Telkom Indonesia"},
	{Symbol: "ASII", Name: "Astra International"},
	{Symbol: "UNVR", Name: "Unilever Indonesia"},
	{Symbol: "ICBP", Name: "Indofood CBP"},
	{Symbol: "GOTO", Name: "GoTo Gojek Tokopedia"},
	{Symbol: "ANTM", Name: "Aneka Tambang"},
}

type MarketControllerI interface {
	GetStockPrices(ctx context.Context, symbols []string) (*schemas.StockPricesResponse, error)
	GetStockList(ctx context.Context) *schemas.StockListResponse
	GetCryptoPrices(ctx context.Context, symbols []string) (*schemas.CryptoPricesResponse, error)
	GetCryptoList(ctx context.Context) *schemas.CryptoListResponse
	GetExchangeRate(ctx context.Context) *schemas.ExchangeRateResponse
}

type MarketController struct {
	StocksClient stocks.StocksServiceClientI
	CryptoClient cryptoquotes.CryptoServiceClientI
	FXClient     fxrates.FXServiceClientI
	Cache        QuoteCache
}

func NewMarketController(
	stocksClient stocks.StocksServiceClientI,
	cryptoClient cryptoquotes.CryptoServiceClientI,
	fxClient fxrates.FXServiceClientI,
	cache QuoteCache,
) *MarketController {
	return &MarketController{
		StocksClient: stocksClient,
		CryptoClient: cryptoClient,
		FXClient:     fxClient,
		Cache:        cache,
	}
}

// GetStockPrices resolves prices for the requested symbols in parallel.
// Partial misses are fine and simply omitted; only a full miss is an error.
func (c *MarketController) GetStockPrices(ctx context.Context, symbols []string) (*schemas.StockPricesResponse, error) {
	logger := utils.LoggerFromContext(ctx)

	if len(symbols) == 0 {
		return nil, utils.BadRequest("symbols must not be empty")
	}
	if len(symbols) > 50 {
		return nil, utils.BadRequest("too many symbols, maximum is 50")
	}

	normalized := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol != "" {
			normalized = append(normalized, symbol)
		}
	}

	prices := make(map[string]float64)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, symbol := range normalized {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()

			cacheKey := "stock:price:" + symbol
			var cached float64
			if c.Cache != nil && c.Cache.Get(cacheKey, &cached) == nil {
				mu.Lock()
				prices[symbol] = cached
				mu.Unlock()
				return
			}

			price, err := c.StocksClient.GetQuote(ctx, symbol)
			if err != nil {
				logger.Warnf("no stock quote for %s: %v", symbol, err)
				return
			}
			if c.Cache != nil {
				if err := c.Cache.Set(cacheKey, price, quoteCacheTTL); err != nil {
					logger.Warnf("failed to cache quote for %s: %v", symbol, err)
				}
			}
			mu.Lock()
			prices[symbol] = price
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	if len(prices) == 0 {
		return nil, utils.NotFound(fmt.Sprintf("no price data available for any of the %d requested symbols", len(normalized)))
	}

	return &schemas.StockPricesResponse{
		Prices:           prices,
		SymbolsRequested: len(normalized),
		SymbolsFound:     len(prices),
	}, nil
}

func (c *MarketController) GetStockList(ctx context.Context) *schemas.StockListResponse {
	return &schemas.StockListResponse{Stocks: idxStocks}
}

// GetCryptoPrices resolves USD unit prices for the requested symbols.
// Unknown symbols are omitted; only a full miss is an error.
func (c *MarketController) GetCryptoPrices(ctx context.Context, symbols []string) (*schemas.CryptoPricesResponse, error) {
	logger := utils.LoggerFromContext(ctx)

	if len(symbols) == 0 {
		return nil, utils.BadRequest("symbols must not be empty")
	}

	normalized := make([]string, 0, len(symbols))
	for _, symbol := range symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))
		if symbol != "" {
			normalized = append(normalized, symbol)
		}
	}

	// Symbol lists can be long, so the cache key is a deterministic digest.
	key, err := redis_utils.GenerateUUID(normalized...)
	if err != nil {
		key = strings.Join(normalized, ",")
	}
	cacheKey := "crypto:prices:" + key
	var cached map[string]float64
	if c.Cache != nil && c.Cache.Get(cacheKey, &cached) == nil {
		return &schemas.CryptoPricesResponse{
			Prices:           cached,
			SymbolsRequested: len(normalized),
			SymbolsFound:     len(cached),
		}, nil
	}

	prices, err := c.CryptoClient.GetUSDPrices(ctx, normalized)
	if err != nil {
		logger.Errorf("failed to fetch crypto prices: %v", err)
		return nil, utils.BadGateway("crypto price provider is unavailable")
	}
	if len(prices) == 0 {
		return nil, utils.NotFound(fmt.Sprintf("no price data available for any of the %d requested symbols", len(normalized)))
	}

	if c.Cache != nil {
		if err := c.Cache.Set(cacheKey, prices, quoteCacheTTL); err != nil {
			logger.Warnf("failed to cache crypto prices: %v", err)
		}
	}

	return &schemas.CryptoPricesResponse{
		Prices:           prices,
		SymbolsRequested: len(normalized),
		SymbolsFound:     len(prices),
	}, nil
}

func (c *MarketController) GetCryptoList(ctx context.Context) *schemas.CryptoListResponse {
	coins := c.CryptoClient.SupportedCoins()
	entries := make([]schemas.CryptoListEntry, len(coins))
	for i, coin := range coins {
		entries[i] = schemas.CryptoListEntry{Symbol: coin.Symbol, Name: coin.Name}
	}
	return &schemas.CryptoListResponse{Coins: entries}
}

// GetExchangeRate returns the USD to IDR rate, falling back to the hardcoded
// default when the provider fails. This endpoint never errors.
func (c *MarketController) GetExchangeRate(ctx context.Context) *schemas.ExchangeRateResponse {
	logger := utils.LoggerFromContext(ctx)

	cacheKey := "fx:usd:idr"
	var cached float64
	if c.Cache != nil && c.Cache.Get(cacheKey, &cached) == nil {
		return &schemas.ExchangeRateResponse{Rate: cached, Source: "live"}
	}

	rate, err := c.FXClient.GetUSDToIDR(ctx)
	if err != nil {
		logger.Warnf("failed to fetch FX rate, using fallback: %v", err)
		return &schemas.ExchangeRateResponse{Rate: FallbackUSDToIDR, Source: "fallback"}
	}

	if c.Cache != nil {
		if err := c.Cache.Set(cacheKey, rate, quoteCacheTTL); err != nil {
			logger.Warnf("failed to cache FX rate: %v", err)
		}
	}
	return &schemas.ExchangeRateResponse{Rate: rate, Source: "live"}
}
