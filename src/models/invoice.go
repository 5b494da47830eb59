package models

import "time"

const (
	InvoiceStatusDraft = "draft"
	InvoiceStatusSent  = "sent"
	InvoiceStatusPaid  = "paid"
)

type Invoice struct {
	ID         int       `db:"id"`
	UserID     string    `db:"user_id"`
	ClientName string    `db:"client_name"`
	Number     string    `db:"number"`
	Amount     float64   `db:"amount"`
	Status     string    `db:"status"`
	IssueDate  time.Time `db:"issue_date"`
	DueDate    time.Time `db:"due_date"`
	CreatedAt  time.Time `db:"created_at"`
}
