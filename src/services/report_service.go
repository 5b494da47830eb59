package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"finserver/src/models"
	"finserver/src/utils"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

type ReportServiceI interface {
	GenerateTransactionsCSV(ctx context.Context, transactions []models.BudgetTransaction) ([]byte, error)
	GenerateTransactionsXLSX(ctx context.Context, transactions []models.BudgetTransaction) (*excelize.File, error)
	GenerateStatementPDF(ctx context.Context, transactions []models.BudgetTransaction, business []models.BusinessFinance) ([]byte, error)
}

type ReportService struct{}

func NewReportService() *ReportService {
	return &ReportService{}
}

var transactionHeader = []string{"Date", "Type", "Category", "Amount", "Description"}

func (rs *ReportService) GenerateTransactionsCSV(ctx context.Context, transactions []models.BudgetTransaction) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(transactionHeader); err != nil {
		return nil, err
	}
	for _, t := range transactions {
		record := []string{
			t.Date.Format(utils.ShortDashDateLayout),
			t.TransactionType,
			t.Category,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Description,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (rs *ReportService) GenerateTransactionsXLSX(ctx context.Context, transactions []models.BudgetTransaction) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := "Transactions"

	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	for col, title := range transactionHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, t := range transactions {
		row := i + 2
		values := []interface{}{
			t.Date.Format(utils.ShortDashDateLayout),
			t.TransactionType,
			t.Category,
			t.Amount,
			t.Description,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	totals := SumBudgetTransactions(transactions)
	summaryRow := len(transactions) + 3
	summary := [][]interface{}{
		{"Total income", totals.Income},
		{"Total expense", totals.Expense},
		{"Net", totals.Net},
	}
	for i, pair := range summary {
		labelCell, err := excelize.CoordinatesToCellName(1, summaryRow+i)
		if err != nil {
			return nil, err
		}
		valueCell, err := excelize.CoordinatesToCellName(4, summaryRow+i)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, labelCell, pair[0]); err != nil {
			return nil, err
		}
		if err := file.SetCellValue(sheet, valueCell, pair[1]); err != nil {
			return nil, err
		}
	}

	return file, nil
}

// GenerateStatementPDF renders a one-page income/expense statement covering
// personal and business activity.
func (rs *ReportService) GenerateStatementPDF(ctx context.Context, transactions []models.BudgetTransaction, business []models.BusinessFinance) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Financial Statement")
	pdf.Ln(14)

	personal := SumBudgetTransactions(transactions)
	businessTotals := SumBusinessFinances(business)

	writeSection := func(title string, totals BudgetTotals) {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		pdf.SetFont("Arial", "", 11)
		pdf.Cell(60, 7, "Income")
		pdf.Cell(0, 7, utils.FormatIDR(totals.Income))
		pdf.Ln(7)
		pdf.Cell(60, 7, "Expense")
		pdf.Cell(0, 7, utils.FormatIDR(totals.Expense))
		pdf.Ln(7)
		pdf.Cell(60, 7, "Net")
		pdf.Cell(0, 7, utils.FormatIDR(totals.Net))
		pdf.Ln(12)
	}

	writeSection("Personal", personal)
	writeSection("Business", businessTotals)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(60, 8, "Combined net")
	pdf.Cell(0, 8, utils.FormatIDR(personal.Net+businessTotals.Net))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	return buf.Bytes(), nil
}
