package stocks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"finserver/src/config"
	"finserver/src/utils/requests"
)

type StocksServiceClientI interface {
	GetQuote(ctx context.Context, symbol string) (float64, error)
}

type StocksServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
	APIKey  string
}

// NewClient creates a new instance of StocksServiceClient
func NewClient(cfg *config.Config) *StocksServiceClient {
	api := requests.NewExternalAPIService()
	return &StocksServiceClient{
		API:     api,
		BaseURL: cfg.ExternalClients.Stocks.BaseURL,
		APIKey:  cfg.ExternalClients.Stocks.APIKey,
	}
}

// NormalizeSymbol resolves bare tickers to the Jakarta exchange listing.
// Symbols that already carry an exchange suffix are left untouched.
func NormalizeSymbol(symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" || strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + ".JK"
}

// GetQuote fetches the latest price for a single symbol. A symbol the
// provider has no data for returns an error; callers decide whether that
// degrades or fails the request.
func (c *StocksServiceClient) GetQuote(ctx context.Context, symbol string) (float64, error) {
	endpoint := fmt.Sprintf("%s/query", c.BaseURL)

	params := url.Values{}
	params.Add("function", "GLOBAL_QUOTE")
	params.Add("symbol", NormalizeSymbol(symbol))
	params.Add("apikey", c.APIKey)

	resp, err := c.API.Get(ctx, endpoint, "", params)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var quoteResponse GlobalQuoteResponse
	err = json.Unmarshal(responseBody, &quoteResponse)
	if err != nil {
		return 0, err
	}

	if quoteResponse.GlobalQuote.Price == "" {
		return 0, fmt.Errorf("no quote data for symbol %s", symbol)
	}

	price, err := strconv.ParseFloat(quoteResponse.GlobalQuote.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q for symbol %s", quoteResponse.GlobalQuote.Price, symbol)
	}
	return price, nil
}
