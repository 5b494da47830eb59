package fxrates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"finserver/src/config"
	"finserver/src/utils"
	"finserver/src/utils/requests"
)

// rateCacheTTL keeps the advisor and net-worth endpoints from hitting the
// provider on every request. FX moves slowly enough for a short in-process TTL.
const rateCacheTTL = 5 * time.Minute

type FXServiceClientI interface {
	GetUSDToIDR(ctx context.Context) (float64, error)
}

type FXServiceClient struct {
	API       *requests.ExternalAPIService
	BaseURL   string
	rateCache *utils.Cache[float64]
}

// NewClient creates a new instance of FXServiceClient
func NewClient(cfg *config.Config) *FXServiceClient {
	api := requests.NewExternalAPIService()
	return &FXServiceClient{
		API:       api,
		BaseURL:   cfg.ExternalClients.FX.BaseURL,
		rateCache: utils.NewCache[float64](),
	}
}

// GetUSDToIDR fetches the current USD to IDR rate. Callers are expected to
// fall back to a default rate when this fails.
func (c *FXServiceClient) GetUSDToIDR(ctx context.Context) (float64, error) {
	if rate, ok := c.rateCache.Get(); ok {
		return rate, nil
	}

	endpoint := fmt.Sprintf("%s/latest/USD", c.BaseURL)

	resp, err := c.API.Get(ctx, endpoint, "", nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return 0, fmt.Errorf("fx provider returned status %d", resp.StatusCode)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var ratesResponse LatestRatesResponse
	err = json.Unmarshal(responseBody, &ratesResponse)
	if err != nil {
		return 0, err
	}

	rate, ok := ratesResponse.Rates["IDR"]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("fx provider response missing IDR rate")
	}

	c.rateCache.Set(rate, rateCacheTTL)
	return rate, nil
}
