package schemas

type CreateBudgetTransactionRequest struct {
	TransactionType string  `json:"transaction_type"`
	Category        string  `json:"category"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	Date            string  `json:"date"`
}

type CreateInvestmentRequest struct {
	Name           string  `json:"name"`
	InvestmentType string  `json:"investment_type"`
	Amount         float64 `json:"amount"`
	CurrentValue   float64 `json:"current_value"`
	PurchaseDate   string  `json:"purchase_date"`
}

type CreateCryptoHoldingRequest struct {
	CoinName      string  `json:"coin_name"`
	Symbol        string  `json:"symbol"`
	Amount        float64 `json:"amount"`
	PurchasePrice float64 `json:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date"`
}

type CreateBusinessFinanceRequest struct {
	BusinessName    string  `json:"business_name"`
	TransactionType string  `json:"transaction_type"`
	Category        string  `json:"category"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
}

type CreateInvoiceRequest struct {
	ClientName string  `json:"client_name"`
	Number     string  `json:"number"`
	Amount     float64 `json:"amount"`
	IssueDate  string  `json:"issue_date"`
	DueDate    string  `json:"due_date"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"`
}

type CreateFinancialGoalRequest struct {
	Name         string  `json:"name"`
	TargetAmount float64 `json:"target_amount"`
	Deadline     string  `json:"deadline"`
}

type UpdateGoalProgressRequest struct {
	CurrentAmount float64 `json:"current_amount"`
}

type CreateRecurringTransactionRequest struct {
	TransactionType string  `json:"transaction_type"`
	Category        string  `json:"category"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	Frequency       string  `json:"frequency"`
	NextDueDate     string  `json:"next_due_date"`
}

type CreateDividendRequest struct {
	Ticker      string  `json:"ticker"`
	Amount      float64 `json:"amount"`
	PaymentDate string  `json:"payment_date"`
}

// NetWorthResponse summarizes a user's holdings in IDR. Crypto positions with
// no live quote are valued at cost basis and counted in ValuedAtCostBasis.
type NetWorthResponse struct {
	CashBalance       float64 `json:"cash_balance"`
	InvestmentsValue  float64 `json:"investments_value"`
	CryptoValue       float64 `json:"crypto_value"`
	Total             float64 `json:"total"`
	FXRate            float64 `json:"fx_rate"`
	FXSource          string  `json:"fx_source"`
	ValuedAtCostBasis int     `json:"valued_at_cost_basis"`
}
