package controllers

import (
	"context"
	"fmt"
	"time"

	"finserver/src/models"
	"finserver/src/repositories"
	"finserver/src/schemas"
	"finserver/src/utils"
)

type FinanceControllerI interface {
	ListBudgetTransactions(ctx context.Context, userID string) ([]models.BudgetTransaction, error)
	ListBudgetTransactionsInRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.BudgetTransaction, error)
	CreateBudgetTransaction(ctx context.Context, userID string, req *schemas.CreateBudgetTransactionRequest) (*models.BudgetTransaction, error)
	DeleteBudgetTransaction(ctx context.Context, userID string, id int) error

	ListInvestments(ctx context.Context, userID string) ([]models.Investment, error)
	CreateInvestment(ctx context.Context, userID string, req *schemas.CreateInvestmentRequest) (*models.Investment, error)
	DeleteInvestment(ctx context.Context, userID string, id int) error

	ListCryptoHoldings(ctx context.Context, userID string) ([]models.CryptoHolding, error)
	CreateCryptoHolding(ctx context.Context, userID string, req *schemas.CreateCryptoHoldingRequest) (*models.CryptoHolding, error)
	DeleteCryptoHolding(ctx context.Context, userID string, id int) error

	ListBusinessFinances(ctx context.Context, userID string) ([]models.BusinessFinance, error)
	CreateBusinessFinance(ctx context.Context, userID string, req *schemas.CreateBusinessFinanceRequest) (*models.BusinessFinance, error)
	DeleteBusinessFinance(ctx context.Context, userID string, id int) error

	ListInvoices(ctx context.Context, userID string) ([]models.Invoice, error)
	CreateInvoice(ctx context.Context, userID string, req *schemas.CreateInvoiceRequest) (*models.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, userID string, id int, status string) error
	DeleteInvoice(ctx context.Context, userID string, id int) error

	ListFinancialGoals(ctx context.Context, userID string) ([]models.FinancialGoal, error)
	CreateFinancialGoal(ctx context.Context, userID string, req *schemas.CreateFinancialGoalRequest) (*models.FinancialGoal, error)
	UpdateGoalProgress(ctx context.Context, userID string, id int, currentAmount float64) error
	DeleteFinancialGoal(ctx context.Context, userID string, id int) error

	ListRecurringTransactions(ctx context.Context, userID string) ([]models.RecurringTransaction, error)
	CreateRecurringTransaction(ctx context.Context, userID string, req *schemas.CreateRecurringTransactionRequest) (*models.RecurringTransaction, error)
	SetRecurringActive(ctx context.Context, userID string, id int, active bool) error
	DeleteRecurringTransaction(ctx context.Context, userID string, id int) error

	ListDividends(ctx context.Context, userID string) ([]models.Dividend, error)
	CreateDividend(ctx context.Context, userID string, req *schemas.CreateDividendRequest) (*models.Dividend, error)
	DeleteDividend(ctx context.Context, userID string, id int) error
}

type FinanceController struct {
	BudgetRepo     repositories.BudgetTransactionRepository
	InvestmentRepo repositories.InvestmentRepository
	CryptoRepo     repositories.CryptoHoldingRepository
	BusinessRepo   repositories.BusinessFinanceRepository
	InvoiceRepo    repositories.InvoiceRepository
	GoalRepo       repositories.FinancialGoalRepository
	RecurringRepo  repositories.RecurringTransactionRepository
	DividendRepo   repositories.DividendRepository
}

func NewFinanceController(
	budgetRepo repositories.BudgetTransactionRepository,
	investmentRepo repositories.InvestmentRepository,
	cryptoRepo repositories.CryptoHoldingRepository,
	businessRepo repositories.BusinessFinanceRepository,
	invoiceRepo repositories.InvoiceRepository,
	goalRepo repositories.FinancialGoalRepository,
	recurringRepo repositories.RecurringTransactionRepository,
	dividendRepo repositories.DividendRepository,
) *FinanceController {
	return &FinanceController{
		BudgetRepo:     budgetRepo,
		InvestmentRepo: investmentRepo,
		CryptoRepo:     cryptoRepo,
		BusinessRepo:   businessRepo,
		InvoiceRepo:    invoiceRepo,
		GoalRepo:       goalRepo,
		RecurringRepo:  recurringRepo,
		DividendRepo:   dividendRepo,
	}
}

func validateTransactionType(transactionType string) error {
	if transactionType != models.TransactionTypeIncome && transactionType != models.TransactionTypeExpense {
		return utils.BadRequest(fmt.Sprintf("transaction_type must be %q or %q", models.TransactionTypeIncome, models.TransactionTypeExpense))
	}
	return nil
}

func validatePositiveAmount(amount float64) error {
	if amount <= 0 || amount > 1e12 {
		return utils.BadRequest("amount must be positive and within a sane range")
	}
	return nil
}

func parseRequestDate(value string) (time.Time, error) {
	date, err := utils.ParseShortDate(value)
	if err != nil {
		return time.Time{}, utils.BadRequest(err.Error())
	}
	return date, nil
}

func (c *FinanceController) ListBudgetTransactions(ctx context.Context, userID string) ([]models.BudgetTransaction, error) {
	return c.BudgetRepo.GetByUserID(ctx, userID)
}

func (c *FinanceController) ListBudgetTransactionsInRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.BudgetTransaction, error) {
	if endDate.Before(startDate) {
		return nil, utils.BadRequest("end date must not be before start date")
	}
	return c.BudgetRepo.GetByUserIDDateRange(ctx, userID, startDate, endDate)
}

func (c *FinanceController) CreateBudgetTransaction(ctx context.Context, userID string, req *schemas.CreateBudgetTransactionRequest) (*models.BudgetTransaction, error) {
	if err := validateTransactionType(req.TransactionType); err != nil {
		return nil, err
	}
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	date, err := parseRequestDate(req.Date)
	if err != nil {
		return nil, err
	}

	t := &models.BudgetTransaction{
		UserID:          userID,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		Date:            date,
	}
	if err := c.BudgetRepo.Create(ctx, t, nil); err != nil {
		return nil, err
	}
	return t, nil
}

func (c *FinanceController) DeleteBudgetTransaction(ctx context.Context, userID string, id int) error {
	return c.BudgetRepo.Delete(ctx, userID, id)
}

func (c *FinanceController) ListInvestments(ctx context.Context, userID string) ([]models.Investment, error) {
	return c.InvestmentRepo.GetByUserID(ctx, userID)
}

func (c *FinanceController) CreateInvestment(ctx context.Context, userID string, req *schemas.CreateInvestmentRequest) (*models.Investment, error) {
	if req.InvestmentType != models.InvestmentTypeStock && req.InvestmentType != models.InvestmentTypeOther {
		return nil, utils.BadRequest(fmt.Sprintf("investment_type must be %q or %q", models.InvestmentTypeStock, models.InvestmentTypeOther))
	}
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	date, err := parseRequestDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	inv := &models.Investment{
		UserID:         userID,
		Name:           req.Name,
		InvestmentType: req.InvestmentType,
		Amount:         req.Amount,
		CurrentValue:   req.CurrentValue,
		PurchaseDate:   date,
	}
	if err := c.InvestmentRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (c *FinanceController) DeleteInvestment(ctx context.Context, userID string, id int) error {
	return c.InvestmentRepo.Delete(ctx, userID, id)
}

func (c *FinanceController) ListCryptoHoldings(ctx context.Context, userID string) ([]models.CryptoHolding, error) {
	return c.CryptoRepo.GetByUserID(ctx, userID)
}

func (c *FinanceController) CreateCryptoHolding(ctx context.Context, userID string, req *schemas.CreateCryptoHoldingRequest) (*models.CryptoHolding, error) {
	if req.Symbol == "" {
		return nil, utils.BadRequest("symbol must not be empty")
	}
	if req.Amount <= 0 {
		return nil, utils.BadRequest("amount must be positive")
	}
	date, err := parseRequestDate(req.PurchaseDate)
	if err != nil {
		return nil, err
	}

	h := &models.CryptoHolding{
		UserID:        userID,
		CoinName:      req.CoinName,
		Symbol:        req.Symbol,
		Amount:        req.Amount,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  date,
	}
	if err := c.CryptoRepo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (c *FinanceController) DeleteCryptoHolding(ctx context.Context, userID string, id int) error {
	return c.CryptoRepo.Delete(ctx, userID, id)
}

func (c *FinanceController) ListBusinessFinances(ctx context.Context, userID string) ([]models.BusinessFinance, error) {
	return c.BusinessRepo.GetByUserID(ctx, userID)
}

func (c *FinanceController) CreateBusinessFinance(ctx context.Context, userID string, req *schemas.CreateBusinessFinanceRequest) (*models.BusinessFinance, error) {
	if req.BusinessName == "" {
		return nil, utils.BadRequest("business_name must not be empty")
	}
	if err := validateTransactionType(req.TransactionType); err != nil {
		return nil, err
	}
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	date, err := parseRequestDate(req.TransactionDate)
	if err != nil {
		return nil, err
	}

	b := &models.BusinessFinance{
		UserID:          userID,
		BusinessName:    req.BusinessName,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: date,
	}
	if err := c.BusinessRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (c *FinanceController) DeleteBusinessFinance(ctx context.Context, userID string, id int) error {
	return c.BusinessRepo.Delete(ctx, userID, id)
}

func (c *FinanceController) ListInvoices(ctx context.Context, userID string) ([]models.Invoice, error) {
	return c.InvoiceRepo.GetByUserID(ctx, userID)
}

func (c *FinanceController) CreateInvoice(ctx context.Context, userID string, req *schemas.CreateInvoiceRequest) (*models.Invoice, error) {
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	issueDate, err := parseRequestDate(req.IssueDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseRequestDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate.Before(issueDate) {
		return nil, utils.BadRequest("due_date must not be before issue_date")
	}

	inv := &models.Invoice{
		UserID:     userID,
		ClientName: req.ClientName,
		Number:     req.Number,
		Amount:     req.Amount,
		Status:     models.InvoiceStatusDraft,
		IssueDate:  issueDate,
		DueDate:    dueDate,
	}
	if err := c.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (c *FinanceController) UpdateInvoiceStatus(ctx context.Context, userID string, id int, status string) error {
	switch status {
	case models.InvoiceStatusDraft, models.InvoiceStatusSent, models.InvoiceStatusPaid:
	default:
		return utils.BadRequest(fmt.Sprintf("invalid invoice status %q", status))
	}
	return c.InvoiceRepo.UpdateStatus(ctx, userID, id, status)
}

func (c *FinanceController) DeleteInvoice(ctx context.Context, userID string, id int) error {
	return c.InvoiceRepo.Delete(ctx, userID, id)
}

func (c *FinanceController) ListFinancialGoals(ctx context.Context, userID string) ([]models.FinancialGoal, error) {
	return c.GoalRepo.GetByUserID(ctx, userID)
}

func (c *FinanceController) CreateFinancialGoal(ctx context.Context, userID string, req *schemas.CreateFinancialGoalRequest) (*models.FinancialGoal, error) {
	if req.Name == "" {
		return nil, utils.BadRequest("name must not be empty")
	}
	if err := validatePositiveAmount(req.TargetAmount); err != nil {
		return nil, err
	}
	deadline, err := parseRequestDate(req.Deadline)
	if err != nil {
		return nil, err
	}

	g := &models.FinancialGoal{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Status:       models.GoalStatusActive,
		Deadline:     deadline,
	}
	if err := c.GoalRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// UpdateGoalProgress sets the saved amount and flips the goal to completed
// once the target is reached.
func (c *FinanceController) UpdateGoalProgress(ctx context.Context, userID string, id int, currentAmount float64) error {
	if currentAmount < 0 {
		return utils.BadRequest("current_amount must not be negative")
	}

	goals, err := c.GoalRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	for _, g := range goals {
		if g.ID != id {
			continue
		}
		status := models.GoalStatusActive
		if currentAmount >= g.TargetAmount {
			status = models.GoalStatusCompleted
		}
		return c.GoalRepo.UpdateProgress(ctx, userID, id, currentAmount, status)
	}
	return utils.NotFound(fmt.Sprintf("no goal with id %d", id))
}

func (c *FinanceController) DeleteFinancialGoal(ctx context.Context, userID string, id int) error {
	return c.GoalRepo.Delete(ctx, userID, id)
}

func (c *FinanceController) ListRecurringTransactions(ctx context.Context, userID string) ([]models.RecurringTransaction, error) {
	return c.RecurringRepo.GetByUserID(ctx, userID)
}

func (c *FinanceController) CreateRecurringTransaction(ctx context.Context, userID string, req *schemas.CreateRecurringTransactionRequest) (*models.RecurringTransaction, error) {
	if err := validateTransactionType(req.TransactionType); err != nil {
		return nil, err
	}
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	switch req.Frequency {
	case models.FrequencyDaily, models.FrequencyWeekly, models.FrequencyMonthly, models.FrequencyYearly:
	default:
		return nil, utils.BadRequest(fmt.Sprintf("invalid frequency %q", req.Frequency))
	}
	nextDueDate, err := parseRequestDate(req.NextDueDate)
	if err != nil {
		return nil, err
	}

	rt := &models.RecurringTransaction{
		UserID:          userID,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		Amount:          req.Amount,
		Description:     req.Description,
		Frequency:       req.Frequency,
		NextDueDate:     nextDueDate,
		Active:          true,
	}
	if err := c.RecurringRepo.Create(ctx, rt); err != nil {
		return nil, err
	}
	return rt, nil
}

func (c *FinanceController) SetRecurringActive(ctx context.Context, userID string, id int, active bool) error {
	return c.RecurringRepo.SetActive(ctx, userID, id, active)
}

func (c *FinanceController) DeleteRecurringTransaction(ctx context.Context, userID string, id int) error {
	return c.RecurringRepo.Delete(ctx, userID, id)
}

func (c *FinanceController) ListDividends(ctx context.Context, userID string) ([]models.Dividend, error) {
	return c.DividendRepo.GetByUserID(ctx, userID)
}

func (c *FinanceController) CreateDividend(ctx context.Context, userID string, req *schemas.CreateDividendRequest) (*models.Dividend, error) {
	if req.Ticker == "" {
		return nil, utils.BadRequest("ticker must not be empty")
	}
	if err := validatePositiveAmount(req.Amount); err != nil {
		return nil, err
	}
	date, err := parseRequestDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	d := &models.Dividend{
		UserID:      userID,
		Ticker:      req.Ticker,
		Amount:      req.Amount,
		PaymentDate: date,
	}
	if err := c.DividendRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *FinanceController) DeleteDividend(ctx context.Context, userID string, id int) error {
	return c.DividendRepo.Delete(ctx, userID, id)
}
