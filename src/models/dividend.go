package models

import "time"

type Dividend struct {
	ID          int       `db:"id"`
	UserID      string    `db:"user_id"`
	Ticker      string    `db:"ticker"`
	Amount      float64   `db:"amount"`
	PaymentDate time.Time `db:"payment_date"`
	CreatedAt   time.Time `db:"created_at"`
}
