package models

import "time"

const (
	InvestmentTypeStock = "stock"
	InvestmentTypeOther = "other"
)

type Investment struct {
	ID             int       `db:"id"`
	UserID         string    `db:"user_id"`
	Name           string    `db:"name"`
	InvestmentType string    `db:"investment_type"`
	Amount         float64   `db:"amount"`
	CurrentValue   float64   `db:"current_value"`
	PurchaseDate   time.Time `db:"purchase_date"`
	CreatedAt      time.Time `db:"created_at"`
}
