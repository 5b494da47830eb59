package models

import (
	"time"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

type BudgetTransaction struct {
	ID              int       `db:"id"`
	UserID          string    `db:"user_id"`
	TransactionType string    `db:"transaction_type"`
	Category        string    `db:"category"`
	Amount          float64   `db:"amount"`
	Description     string    `db:"description"`
	Date            time.Time `db:"date"`
	CreatedAt       time.Time `db:"created_at"`
}
