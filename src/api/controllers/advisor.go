package controllers

import (
	"context"
	"strings"
	"sync"

	"finserver/src/clients/aigateway"
	"finserver/src/clients/cryptoquotes"
	"finserver/src/clients/fxrates"
	"finserver/src/clients/stocks"
	"finserver/src/models"
	"finserver/src/repositories"
	"finserver/src/schemas"
	"finserver/src/services"
	"finserver/src/utils"
)

// FallbackUSDToIDR is used whenever the FX provider is unavailable.
// Availability over accuracy: a slightly stale rate beats a failed request.
const FallbackUSDToIDR = 15700.0

type AdvisorControllerI interface {
	Chat(ctx context.Context, userID string, req *schemas.ChatRequest) (*schemas.ChatResponse, error)
	NetWorth(ctx context.Context, userID string) (*schemas.NetWorthResponse, error)
}

type AdvisorController struct {
	BudgetRepo     repositories.BudgetTransactionRepository
	InvestmentRepo repositories.InvestmentRepository
	BusinessRepo   repositories.BusinessFinanceRepository
	CryptoRepo     repositories.CryptoHoldingRepository
	StocksClient   stocks.StocksServiceClientI
	CryptoClient   cryptoquotes.CryptoServiceClientI
	FXClient       fxrates.FXServiceClientI
	AIClient       aigateway.AIGatewayClientI
}

func NewAdvisorController(
	budgetRepo repositories.BudgetTransactionRepository,
	investmentRepo repositories.InvestmentRepository,
	businessRepo repositories.BusinessFinanceRepository,
	cryptoRepo repositories.CryptoHoldingRepository,
	stocksClient stocks.StocksServiceClientI,
	cryptoClient cryptoquotes.CryptoServiceClientI,
	fxClient fxrates.FXServiceClientI,
	aiClient aigateway.AIGatewayClientI,
) *AdvisorController {
	return &AdvisorController{
		BudgetRepo:     budgetRepo,
		InvestmentRepo: investmentRepo,
		BusinessRepo:   businessRepo,
		CryptoRepo:     cryptoRepo,
		StocksClient:   stocksClient,
		CryptoClient:   cryptoClient,
		FXClient:       fxClient,
		AIClient:       aiClient,
	}
}

// fetchContextData loads the four row sets concurrently and then enriches
// them with live prices. A failed fetch degrades its category to empty, and a
// failed enrichment degrades to cost basis; neither aborts the request.
func (c *AdvisorController) fetchContextData(ctx context.Context, userID string) services.ContextData {
	logger := utils.LoggerFromContext(ctx)

	var data services.ContextData
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		rows, err := c.BudgetRepo.GetByUserID(ctx, userID)
		if err != nil {
			logger.Errorf("failed to fetch budget transactions: %v", err)
			return
		}
		data.BudgetTransactions = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := c.InvestmentRepo.GetByUserID(ctx, userID)
		if err != nil {
			logger.Errorf("failed to fetch investments: %v", err)
			return
		}
		data.Investments = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := c.BusinessRepo.GetByUserID(ctx, userID)
		if err != nil {
			logger.Errorf("failed to fetch business finances: %v", err)
			return
		}
		data.BusinessFinances = rows
	}()
	go func() {
		defer wg.Done()
		rows, err := c.CryptoRepo.GetByUserID(ctx, userID)
		if err != nil {
			logger.Errorf("failed to fetch crypto holdings: %v", err)
			return
		}
		data.CryptoHoldings = rows
	}()
	wg.Wait()

	data.StockPrices, data.CryptoUSDPrices, data.FXRate = c.fetchPrices(ctx, data.Investments, data.CryptoHoldings)
	return data
}

// fetchPrices resolves live quotes for the stock tickers and crypto symbols
// present in the user's rows, plus the USD to IDR rate, in parallel.
func (c *AdvisorController) fetchPrices(ctx context.Context, investments []models.Investment, holdings []models.CryptoHolding) (map[string]float64, map[string]float64, float64) {
	logger := utils.LoggerFromContext(ctx)

	stockPrices := make(map[string]float64)
	cryptoPrices := make(map[string]float64)
	fxRate := FallbackUSDToIDR

	tickers := make([]string, 0, len(investments))
	seen := make(map[string]bool)
	for _, inv := range investments {
		if inv.InvestmentType != models.InvestmentTypeStock {
			continue
		}
		ticker := strings.ToUpper(strings.TrimSpace(inv.Name))
		if ticker == "" || seen[ticker] {
			continue
		}
		seen[ticker] = true
		tickers = append(tickers, ticker)
	}

	symbols := make([]string, 0, len(holdings))
	seenSymbols := make(map[string]bool)
	for _, h := range holdings {
		symbol := strings.ToUpper(strings.TrimSpace(h.Symbol))
		if symbol == "" || seenSymbols[symbol] {
			continue
		}
		seenSymbols[symbol] = true
		symbols = append(symbols, symbol)
	}

	var wg sync.WaitGroup
	var stockMu sync.Mutex

	for _, ticker := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			price, err := c.StocksClient.GetQuote(ctx, ticker)
			if err != nil {
				// Unresolved ticker: skip, the row keeps its stored value.
				logger.Warnf("no stock quote for %s: %v", ticker, err)
				return
			}
			stockMu.Lock()
			stockPrices[ticker] = price
			stockMu.Unlock()
		}(ticker)
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		if len(symbols) == 0 {
			return
		}
		prices, err := c.CryptoClient.GetUSDPrices(ctx, symbols)
		if err != nil {
			logger.Warnf("failed to fetch crypto prices: %v", err)
			return
		}
		for symbol, price := range prices {
			cryptoPrices[symbol] = price
		}
	}()
	go func() {
		defer wg.Done()
		rate, err := c.FXClient.GetUSDToIDR(ctx)
		if err != nil {
			logger.Warnf("failed to fetch FX rate, using fallback %v: %v", FallbackUSDToIDR, err)
			return
		}
		fxRate = rate
	}()
	wg.Wait()

	return stockPrices, cryptoPrices, fxRate
}

// Chat runs the advisor pipeline: fetch, enrich, compile, single AI call.
func (c *AdvisorController) Chat(ctx context.Context, userID string, req *schemas.ChatRequest) (*schemas.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, utils.BadRequest("message must not be empty")
	}

	data := c.fetchContextData(ctx, userID)
	financialContext := services.CompileFinancialContext(data)

	messages := make([]aigateway.ChatMessage, 0, len(req.History)+3)
	messages = append(messages, aigateway.ChatMessage{Role: "system", Content: AdvisorSystemPrompt})
	messages = append(messages, aigateway.ChatMessage{Role: "system", Content: financialContext})
	for _, turn := range req.History {
		if turn.Role != "user" && turn.Role != "assistant" {
			continue
		}
		messages = append(messages, aigateway.ChatMessage{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, aigateway.ChatMessage{Role: "user", Content: req.Message})

	reply, err := c.AIClient.CreateChatCompletion(ctx, messages)
	if err != nil {
		return nil, err
	}

	return &schemas.ChatResponse{Reply: utils.StripEmphasis(reply)}, nil
}

// NetWorth aggregates all holdings in IDR with live-price enrichment.
func (c *AdvisorController) NetWorth(ctx context.Context, userID string) (*schemas.NetWorthResponse, error) {
	data := c.fetchContextData(ctx, userID)

	budgetTotals := services.SumBudgetTransactions(data.BudgetTransactions)
	businessTotals := services.SumBusinessFinances(data.BusinessFinances)

	var investmentsValue float64
	for _, inv := range data.Investments {
		investmentsValue += inv.CurrentValue
	}

	var cryptoValue float64
	costBasisCount := 0
	for _, h := range data.CryptoHoldings {
		value, live := services.CryptoHoldingValue(h, data.CryptoUSDPrices, data.FXRate)
		cryptoValue += value
		if !live {
			costBasisCount++
		}
	}

	cash := budgetTotals.Net + businessTotals.Net
	source := "live"
	if data.FXRate == FallbackUSDToIDR {
		source = "fallback"
	}

	return &schemas.NetWorthResponse{
		CashBalance:       cash,
		InvestmentsValue:  investmentsValue,
		CryptoValue:       cryptoValue,
		Total:             cash + investmentsValue + cryptoValue,
		FXRate:            data.FXRate,
		FXSource:          source,
		ValuedAtCostBasis: costBasisCount,
	}, nil
}
