package api

import (
	"net/http"
	"time"

	"finserver/src/api/controllers"
	"finserver/src/api/handlers"
	"finserver/src/config"
	"finserver/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler
	logger  *logrus.Logger
}

func NewServer(cfg *config.Config, db *pgxpool.Pool, cache controllers.QuoteCache, logger *logrus.Logger) *Server {
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: *handlers.NewHandler(cfg, db, cache),
		logger:  logger,
	}
	server.InitRoutes()
	return server
}

// withLogger makes the service logger reachable from every request context.
func (s *Server) withLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), s.logger)))
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(s.withLogger)
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler)

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/advisor", func(r chi.Router) {
		r.Post("/chat", s.Handler.PostAdvisorChat)
		r.Get("/net-worth", s.Handler.GetNetWorth)
	})

	s.Router.Route("/api/analysis", func(r chi.Router) {
		r.Post("/receipt", s.Handler.PostAnalyzeReceipt)
		r.Post("/stock-transaction", s.Handler.PostAnalyzeStockTransaction)
		r.Post("/crypto-transaction", s.Handler.PostAnalyzeCryptoTransaction)
	})

	s.Router.Route("/api/market", func(r chi.Router) {
		r.Post("/stock-prices", s.Handler.PostStockPrices)
		r.Get("/stock-list", s.Handler.GetStockList)
		r.Post("/crypto-prices", s.Handler.PostCryptoPrices)
		r.Get("/crypto-list", s.Handler.GetCryptoList)
		r.Get("/exchange-rate", s.Handler.GetExchangeRate)
	})

	s.Router.Route("/api/transactions", func(r chi.Router) {
		r.Get("/", s.Handler.GetBudgetTransactions)
		r.Post("/", s.Handler.PostBudgetTransaction)
		r.Delete("/{id}", s.Handler.DeleteBudgetTransaction)
	})

	s.Router.Route("/api/investments", func(r chi.Router) {
		r.Get("/", s.Handler.GetInvestments)
		r.Post("/", s.Handler.PostInvestment)
		r.Delete("/{id}", s.Handler.DeleteInvestment)
	})

	s.Router.Route("/api/crypto-holdings", func(r chi.Router) {
		r.Get("/", s.Handler.GetCryptoHoldings)
		r.Post("/", s.Handler.PostCryptoHolding)
		r.Delete("/{id}", s.Handler.DeleteCryptoHolding)
	})

	s.Router.Route("/api/business", func(r chi.Router) {
		r.Get("/", s.Handler.GetBusinessFinances)
		r.Post("/", s.Handler.PostBusinessFinance)
		r.Delete("/{id}", s.Handler.DeleteBusinessFinance)
	})

	s.Router.Route("/api/invoices", func(r chi.Router) {
		r.Get("/", s.Handler.GetInvoices)
		r.Post("/", s.Handler.PostInvoice)
		r.Put("/{id}/status", s.Handler.PutInvoiceStatus)
		r.Delete("/{id}", s.Handler.DeleteInvoice)
	})

	s.Router.Route("/api/goals", func(r chi.Router) {
		r.Get("/", s.Handler.GetFinancialGoals)
		r.Post("/", s.Handler.PostFinancialGoal)
		r.Put("/{id}/progress", s.Handler.PutGoalProgress)
		r.Delete("/{id}", s.Handler.DeleteFinancialGoal)
	})

	s.Router.Route("/api/recurring", func(r chi.Router) {
		r.Get("/", s.Handler.GetRecurringTransactions)
		r.Post("/", s.Handler.PostRecurringTransaction)
		r.Put("/{id}/active", s.Handler.PutRecurringActive)
		r.Delete("/{id}", s.Handler.DeleteRecurringTransaction)
	})

	s.Router.Route("/api/dividends", func(r chi.Router) {
		r.Get("/", s.Handler.GetDividends)
		r.Post("/", s.Handler.PostDividend)
		r.Delete("/{id}", s.Handler.DeleteDividend)
	})

	s.Router.Route("/api/reports", func(r chi.Router) {
		r.Get("/transactions.csv", s.Handler.GetTransactionsCSV)
		r.Get("/transactions.xlsx", s.Handler.GetTransactionsXLSX)
		r.Get("/statement.pdf", s.Handler.GetStatementPDF)
	})
}

func NewHTTPServer(cfg *config.Config, server *Server) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + cfg.Service.Port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
