package repositories

import (
	"context"

	"finserver/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvoiceRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Invoice, error)
	Create(ctx context.Context, inv *models.Invoice) error
	UpdateStatus(ctx context.Context, userID string, id int, status string) error
	Delete(ctx context.Context, userID string, id int) error
}

type invoiceRepo struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) GetByUserID(ctx context.Context, userID string) ([]models.Invoice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, client_name, number, amount, status, issue_date, due_date, created_at
		FROM invoices
		WHERE user_id = $1
		ORDER BY issue_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []models.Invoice
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(&inv.ID, &inv.UserID, &inv.ClientName, &inv.Number, &inv.Amount, &inv.Status, &inv.IssueDate, &inv.DueDate, &inv.CreatedAt); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO invoices (user_id, client_name, number, amount, status, issue_date, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		inv.UserID, inv.ClientName, inv.Number, inv.Amount, inv.Status, inv.IssueDate, inv.DueDate,
	).Scan(&inv.ID)
}

func (r *invoiceRepo) UpdateStatus(ctx context.Context, userID string, id int, status string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE invoices SET status = $3 WHERE user_id = $1 AND id = $2`,
		userID, id, status,
	)
	return err
}

func (r *invoiceRepo) Delete(ctx context.Context, userID string, id int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM invoices WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}
