package handlers

import (
	"context"
	"net/http"
	"time"

	"finserver/src/models"
	"finserver/src/utils"
)

// listTransactionsForReport honors optional start/end query params, both in
// YYYY-MM-DD form. With neither present the full history is exported.
func (h *Handler) listTransactionsForReport(ctx context.Context, r *http.Request, userID string) ([]models.BudgetTransaction, error) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" && end == "" {
		return h.Finance.ListBudgetTransactions(ctx, userID)
	}

	startDate, err := utils.ParseShortDate(start)
	if err != nil {
		return nil, utils.BadRequest(err.Error())
	}
	endDate, err := utils.ParseShortDate(end)
	if err != nil {
		return nil, utils.BadRequest(err.Error())
	}
	return h.Finance.ListBudgetTransactionsInRange(ctx, userID, startDate, endDate)
}

func (h *Handler) GetTransactionsCSV(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	transactions, err := h.listTransactionsForReport(ctx, r, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	csvBytes, err := h.Reports.GenerateTransactionsCSV(ctx, transactions)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=transactions.csv")
	_, _ = w.Write(csvBytes)
}

func (h *Handler) GetTransactionsXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	transactions, err := h.listTransactionsForReport(ctx, r, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	file, err := h.Reports.GenerateTransactionsXLSX(ctx, transactions)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=transactions.xlsx")
	if err := file.Write(w); err != nil {
		h.HandleErrors(w, err)
		return
	}
}

func (h *Handler) GetStatementPDF(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, err := h.authenticate(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	transactions, err := h.listTransactionsForReport(ctx, r, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	business, err := h.Finance.ListBusinessFinances(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	pdfBytes, err := h.Reports.GenerateStatementPDF(ctx, transactions, business)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=statement.pdf")
	_, _ = w.Write(pdfBytes)
}
