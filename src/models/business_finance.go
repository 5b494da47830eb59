package models

import "time"

type BusinessFinance struct {
	ID              int       `db:"id"`
	UserID          string    `db:"user_id"`
	BusinessName    string    `db:"business_name"`
	TransactionType string    `db:"transaction_type"`
	Category        string    `db:"category"`
	Amount          float64   `db:"amount"`
	Description     string    `db:"description"`
	TransactionDate time.Time `db:"transaction_date"`
	CreatedAt       time.Time `db:"created_at"`
}
