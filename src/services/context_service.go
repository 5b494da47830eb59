package services

import (
	"fmt"
	"strings"

	"finserver/src/models"
	"finserver/src/utils"
)

// ContextData carries everything the compiler needs: the four row sets for
// the user plus the live price maps and the USD to IDR rate. Price maps may
// be empty or missing entries; rows missing a price are valued at cost basis.
type ContextData struct {
	BudgetTransactions []models.BudgetTransaction
	Investments        []models.Investment
	BusinessFinances   []models.BusinessFinance
	CryptoHoldings     []models.CryptoHolding
	StockPrices        map[string]float64
	CryptoUSDPrices    map[string]float64
	FXRate             float64
}

// BudgetTotals aggregates signed transaction amounts by type.
type BudgetTotals struct {
	Income  float64
	Expense float64
	Net     float64
}

// maxContextRows caps per-category listing so the prompt stays within the
// gateway's context size.
const maxContextRows = 20

// SumBudgetTransactions totals income and expense over budget rows.
func SumBudgetTransactions(transactions []models.BudgetTransaction) BudgetTotals {
	var totals BudgetTotals
	for _, t := range transactions {
		switch t.TransactionType {
		case models.TransactionTypeIncome:
			totals.Income += t.Amount
		case models.TransactionTypeExpense:
			totals.Expense += t.Amount
		}
	}
	totals.Net = totals.Income - totals.Expense
	return totals
}

// SumBusinessFinances totals income and expense over business rows.
func SumBusinessFinances(finances []models.BusinessFinance) BudgetTotals {
	var totals BudgetTotals
	for _, f := range finances {
		switch f.TransactionType {
		case models.TransactionTypeIncome:
			totals.Income += f.Amount
		case models.TransactionTypeExpense:
			totals.Expense += f.Amount
		}
	}
	totals.Net = totals.Income - totals.Expense
	return totals
}

// CryptoHoldingValue values a holding in IDR. With a live USD quote the value
// is amount * usd * fx; without one it falls back to the stored purchase
// price, never zero. The second return reports whether the value is live.
func CryptoHoldingValue(h models.CryptoHolding, usdPrices map[string]float64, fxRate float64) (float64, bool) {
	symbol := strings.ToUpper(strings.TrimSpace(h.Symbol))
	if usd, ok := usdPrices[symbol]; ok && usd > 0 && fxRate > 0 {
		return h.Amount * usd * fxRate, true
	}
	return h.Amount * h.PurchasePrice, false
}

// CompileFinancialContext formats the user's financial data into the natural
// language block that grounds the advisor. Deterministic given its inputs.
func CompileFinancialContext(data ContextData) string {
	var b strings.Builder

	b.WriteString("DATA KEUANGAN PENGGUNA\n")
	b.WriteString("======================\n\n")

	compileBudgetSection(&b, data.BudgetTransactions)
	compileInvestmentSection(&b, data.Investments, data.StockPrices)
	compileCryptoSection(&b, data.CryptoHoldings, data.CryptoUSDPrices, data.FXRate)
	compileBusinessSection(&b, data.BusinessFinances)

	return strings.TrimRight(b.String(), "\n")
}

func compileBudgetSection(b *strings.Builder, transactions []models.BudgetTransaction) {
	b.WriteString("TRANSAKSI ANGGARAN:\n")
	if len(transactions) == 0 {
		b.WriteString("Belum ada data transaksi.\n\n")
		return
	}

	for i, t := range transactions {
		if i == maxContextRows {
			fmt.Fprintf(b, "... dan %d transaksi lainnya\n", len(transactions)-maxContextRows)
			break
		}
		fmt.Fprintf(b, "- [%s] %s / %s: %s (%s)\n",
			t.Date.Format(utils.ShortDashDateLayout),
			t.TransactionType,
			t.Category,
			utils.FormatIDR(t.Amount),
			t.Description,
		)
	}

	totals := SumBudgetTransactions(transactions)
	fmt.Fprintf(b, "Total pemasukan: %s\n", utils.FormatIDR(totals.Income))
	fmt.Fprintf(b, "Total pengeluaran: %s\n", utils.FormatIDR(totals.Expense))
	fmt.Fprintf(b, "Saldo bersih: %s\n\n", utils.FormatIDR(totals.Net))
}

func compileInvestmentSection(b *strings.Builder, investments []models.Investment, stockPrices map[string]float64) {
	b.WriteString("INVESTASI:\n")
	if len(investments) == 0 {
		b.WriteString("Belum ada data investasi.\n\n")
		return
	}

	var totalInvested, totalValue float64
	for _, inv := range investments {
		gain := inv.CurrentValue - inv.Amount
		line := fmt.Sprintf("- %s (%s): modal %s, nilai %s, selisih %s",
			inv.Name,
			inv.InvestmentType,
			utils.FormatIDR(inv.Amount),
			utils.FormatIDR(inv.CurrentValue),
			utils.FormatIDR(gain),
		)
		if inv.Amount > 0 {
			line += fmt.Sprintf(" (%s)", utils.FormatPercent(gain/inv.Amount*100))
		}
		if price, ok := stockPrices[strings.ToUpper(inv.Name)]; ok {
			line += fmt.Sprintf(", harga pasar %s/lembar", utils.FormatIDR(price))
		}
		b.WriteString(line + "\n")

		totalInvested += inv.Amount
		totalValue += inv.CurrentValue
	}

	totalGain := totalValue - totalInvested
	fmt.Fprintf(b, "Total modal investasi: %s\n", utils.FormatIDR(totalInvested))
	fmt.Fprintf(b, "Total nilai investasi: %s\n", utils.FormatIDR(totalValue))
	if totalInvested > 0 {
		fmt.Fprintf(b, "Total selisih: %s (%s)\n\n", utils.FormatIDR(totalGain), utils.FormatPercent(totalGain/totalInvested*100))
	} else {
		fmt.Fprintf(b, "Total selisih: %s\n\n", utils.FormatIDR(totalGain))
	}
}

func compileCryptoSection(b *strings.Builder, holdings []models.CryptoHolding, usdPrices map[string]float64, fxRate float64) {
	b.WriteString("ASET KRIPTO:\n")
	if len(holdings) == 0 {
		b.WriteString("Belum ada data aset kripto.\n\n")
		return
	}

	var totalCost, totalValue float64
	for _, h := range holdings {
		cost := h.Amount * h.PurchasePrice
		value, live := CryptoHoldingValue(h, usdPrices, fxRate)
		gain := value - cost

		line := fmt.Sprintf("- %s (%s): %g unit, modal %s, nilai %s, selisih %s",
			h.CoinName,
			h.Symbol,
			h.Amount,
			utils.FormatIDR(cost),
			utils.FormatIDR(value),
			utils.FormatIDR(gain),
		)
		if cost > 0 {
			line += fmt.Sprintf(" (%s)", utils.FormatPercent(gain/cost*100))
		}
		if !live {
			line += " [harga pasar tidak tersedia, memakai harga beli]"
		}
		b.WriteString(line + "\n")

		totalCost += cost
		totalValue += value
	}

	totalGain := totalValue - totalCost
	fmt.Fprintf(b, "Total modal kripto: %s\n", utils.FormatIDR(totalCost))
	fmt.Fprintf(b, "Total nilai kripto: %s\n", utils.FormatIDR(totalValue))
	if totalCost > 0 {
		fmt.Fprintf(b, "Total selisih: %s (%s)\n\n", utils.FormatIDR(totalGain), utils.FormatPercent(totalGain/totalCost*100))
	} else {
		fmt.Fprintf(b, "Total selisih: %s\n\n", utils.FormatIDR(totalGain))
	}
}

func compileBusinessSection(b *strings.Builder, finances []models.BusinessFinance) {
	b.WriteString("KEUANGAN BISNIS:\n")
	if len(finances) == 0 {
		b.WriteString("Belum ada data keuangan bisnis.\n\n")
		return
	}

	for i, f := range finances {
		if i == maxContextRows {
			fmt.Fprintf(b, "... dan %d transaksi lainnya\n", len(finances)-maxContextRows)
			break
		}
		fmt.Fprintf(b, "- [%s] %s - %s / %s: %s (%s)\n",
			f.TransactionDate.Format(utils.ShortDashDateLayout),
			f.BusinessName,
			f.TransactionType,
			f.Category,
			utils.FormatIDR(f.Amount),
			f.Description,
		)
	}

	totals := SumBusinessFinances(finances)
	fmt.Fprintf(b, "Total pemasukan bisnis: %s\n", utils.FormatIDR(totals.Income))
	fmt.Fprintf(b, "Total pengeluaran bisnis: %s\n", utils.FormatIDR(totals.Expense))
	fmt.Fprintf(b, "Laba bersih: %s\n\n", utils.FormatIDR(totals.Net))
}
