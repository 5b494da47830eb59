package models

import "time"

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
)

type RecurringTransaction struct {
	ID              int       `db:"id"`
	UserID          string    `db:"user_id"`
	TransactionType string    `db:"transaction_type"`
	Category        string    `db:"category"`
	Amount          float64   `db:"amount"`
	Description     string    `db:"description"`
	Frequency       string    `db:"frequency"`
	NextDueDate     time.Time `db:"next_due_date"`
	Active          bool      `db:"active"`
	CreatedAt       time.Time `db:"created_at"`
}
