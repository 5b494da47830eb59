package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"finserver/src/api/controllers"
	"finserver/src/clients/aigateway"
	"finserver/src/clients/cryptoquotes"
	"finserver/src/clients/fxrates"
	"finserver/src/clients/stocks"
	"finserver/src/config"
	"finserver/src/repositories"
	"finserver/src/services"
	"finserver/src/utils"

	"github.com/go-chi/jwtauth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	Advisor   controllers.AdvisorControllerI
	Market    controllers.MarketControllerI
	Analyzer  controllers.AnalyzerControllerI
	Finance   controllers.FinanceControllerI
	Reports   services.ReportServiceI
	jwtSecret []byte
}

func NewHandler(cfg *config.Config, db *pgxpool.Pool, cache controllers.QuoteCache) *Handler {
	budgetRepo := repositories.NewBudgetTransactionRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	cryptoRepo := repositories.NewCryptoHoldingRepository(db)
	businessRepo := repositories.NewBusinessFinanceRepository(db)
	invoiceRepo := repositories.NewInvoiceRepository(db)
	goalRepo := repositories.NewFinancialGoalRepository(db)
	recurringRepo := repositories.NewRecurringTransactionRepository(db)
	dividendRepo := repositories.NewDividendRepository(db)

	stocksClient := stocks.NewClient(cfg)
	cryptoClient := cryptoquotes.NewClient(cfg)
	fxClient := fxrates.NewClient(cfg)
	aiClient := aigateway.NewClient(cfg)

	return &Handler{
		Advisor: controllers.NewAdvisorController(
			budgetRepo, investmentRepo, businessRepo, cryptoRepo,
			stocksClient, cryptoClient, fxClient, aiClient,
		),
		Market:   controllers.NewMarketController(stocksClient, cryptoClient, fxClient, cache),
		Analyzer: controllers.NewAnalyzerController(aiClient),
		Finance: controllers.NewFinanceController(
			budgetRepo, investmentRepo, cryptoRepo, businessRepo,
			invoiceRepo, goalRepo, recurringRepo, dividendRepo,
		),
		Reports:   services.NewReportService(),
		jwtSecret: []byte(cfg.Auth.JWTSecret),
	}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

// HandleErrors maps controller errors onto the wire. Unknown error types
// become a generic 500 so internals never leak to clients.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	if _, ok := err.(*utils.HTTPError); ok {
		utils.WriteError(w, err)
		return
	}
	utils.WriteError(w, utils.InternalServerError("something went wrong, please try again"))
}

// authenticate resolves the bearer token to a verified user id. Every data
// access must use the id returned here, never one supplied by the client.
func (h *Handler) authenticate(r *http.Request) (string, error) {
	tokenString := jwtauth.TokenFromHeader(r)
	if tokenString == "" {
		return "", utils.Unauthorized("missing or malformed authorization header")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", utils.Unauthorized("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", utils.Unauthorized("invalid token claims")
	}
	userID, err := claims.GetSubject()
	if err != nil || userID == "" {
		return "", utils.Unauthorized("token does not resolve to a user")
	}
	return userID, nil
}
