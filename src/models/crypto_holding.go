package models

import "time"

type CryptoHolding struct {
	ID            int       `db:"id"`
	UserID        string    `db:"user_id"`
	CoinName      string    `db:"coin_name"`
	Symbol        string    `db:"symbol"`
	Amount        float64   `db:"amount"`
	PurchasePrice float64   `db:"purchase_price"`
	PurchaseDate  time.Time `db:"purchase_date"`
	CreatedAt     time.Time `db:"created_at"`
}
