package cryptoquotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"finserver/src/config"
	"finserver/src/utils/requests"
)

type CryptoServiceClientI interface {
	GetUSDPrices(ctx context.Context, symbols []string) (map[string]float64, error)
	SupportedCoins() []Coin
}

type CryptoServiceClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// supportedCoins maps exchange symbols to provider coin ids. The dashboard
// only offers this fixed set, so a static table beats a list-coins call on
// every request.
var supportedCoins = []Coin{
	{Symbol: "BTC", ID: "bitcoin", Name: "Bitcoin"},
	{Symbol: "ETH", ID: "ethereum", Name: "Ethereum"},
	{Symbol: "BNB", ID: "binancecoin", Name: "BNB"},
	{Symbol: "SOL", ID: "solana", Name: "Solana"},
	{Symbol: "XRP", ID: "ripple", Name: "XRP"},
	{Symbol: "ADA", ID: "cardano", Name: "Cardano"},
	{Symbol: "DOGE", ID: "dogecoin", Name: "Dogecoin"},
	{Symbol: "DOT", ID: "polkadot", Name: "Polkadot"},
	{Symbol: "MATIC", ID: "matic-network", Name: "Polygon"},
	{Symbol: "LTC", ID: "litecoin", Name: "Litecoin"},
	{Symbol: "AVAX", ID: "avalanche-2", Name: "Avalanche"},
	{Symbol: "LINK", ID: "chainlink", Name: "Chainlink"},
	{Symbol: "USDT", ID: "tether", Name: "Tether"},
	{Symbol: "USDC", ID: "usd-coin", Name: "USD Coin"},
}

// NewClient creates a new instance of CryptoServiceClient
func NewClient(cfg *config.Config) *CryptoServiceClient {
	api := requests.NewExternalAPIService()
	return &CryptoServiceClient{
		API:     api,
		BaseURL: cfg.ExternalClients.Crypto.BaseURL,
	}
}

func (c *CryptoServiceClient) SupportedCoins() []Coin {
	return supportedCoins
}

func coinIDForSymbol(symbol string) (string, bool) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, coin := range supportedCoins {
		if coin.Symbol == symbol {
			return coin.ID, true
		}
	}
	return "", false
}

// GetUSDPrices resolves USD unit prices for the given symbols. Symbols the
// provider does not know are omitted from the result map, never an error.
func (c *CryptoServiceClient) GetUSDPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
	ids := make([]string, 0, len(symbols))
	idToSymbol := make(map[string]string, len(symbols))
	for _, symbol := range symbols {
		id, ok := coinIDForSymbol(symbol)
		if !ok {
			continue
		}
		ids = append(ids, id)
		idToSymbol[id] = strings.ToUpper(strings.TrimSpace(symbol))
	}

	prices := make(map[string]float64)
	if len(ids) == 0 {
		return prices, nil
	}

	endpoint := fmt.Sprintf("%s/simple/price", c.BaseURL)
	params := url.Values{}
	params.Add("ids", strings.Join(ids, ","))
	params.Add("vs_currencies", "usd")

	resp, err := c.API.Get(ctx, endpoint, "", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var priceResponse SimplePriceResponse
	err = json.Unmarshal(responseBody, &priceResponse)
	if err != nil {
		return nil, err
	}

	for id, currencies := range priceResponse {
		symbol, ok := idToSymbol[id]
		if !ok {
			continue
		}
		if usd, ok := currencies["usd"]; ok {
			prices[symbol] = usd
		}
	}
	return prices, nil
}
