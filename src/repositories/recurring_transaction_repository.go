package repositories

import (
	"context"
	"time"

	"finserver/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RecurringTransactionRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.RecurringTransaction, error)
	GetDue(ctx context.Context, asOf time.Time) ([]models.RecurringTransaction, error)
	Create(ctx context.Context, rt *models.RecurringTransaction) error
	UpdateNextDueDate(ctx context.Context, id int, nextDueDate time.Time, tx pgx.Tx) error
	SetActive(ctx context.Context, userID string, id int, active bool) error
	Delete(ctx context.Context, userID string, id int) error
	BeginTx(ctx context.Context) (pgx.Tx, error)
}

type recurringTransactionRepo struct {
	db *pgxpool.Pool
}

func NewRecurringTransactionRepository(db *pgxpool.Pool) RecurringTransactionRepository {
	return &recurringTransactionRepo{db: db}
}

func (r *recurringTransactionRepo) GetByUserID(ctx context.Context, userID string) ([]models.RecurringTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, transaction_type, category, amount, description, frequency, next_due_date, active, created_at
		FROM recurring_transactions
		WHERE user_id = $1
		ORDER BY next_due_date ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecurringTransactions(rows)
}

// GetDue returns every active recurring transaction across all users whose
// next due date is on or before asOf.
func (r *recurringTransactionRepo) GetDue(ctx context.Context, asOf time.Time) ([]models.RecurringTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, transaction_type, category, amount, description, frequency, next_due_date, active, created_at
		FROM recurring_transactions
		WHERE active = TRUE AND next_due_date <= $1
		ORDER BY next_due_date ASC`,
		asOf,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecurringTransactions(rows)
}

func scanRecurringTransactions(rows pgx.Rows) ([]models.RecurringTransaction, error) {
	var transactions []models.RecurringTransaction
	for rows.Next() {
		var rt models.RecurringTransaction
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.TransactionType, &rt.Category, &rt.Amount, &rt.Description, &rt.Frequency, &rt.NextDueDate, &rt.Active, &rt.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, rt)
	}
	return transactions, rows.Err()
}

func (r *recurringTransactionRepo) Create(ctx context.Context, rt *models.RecurringTransaction) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO recurring_transactions (user_id, transaction_type, category, amount, description, frequency, next_due_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		rt.UserID, rt.TransactionType, rt.Category, rt.Amount, rt.Description, rt.Frequency, rt.NextDueDate, rt.Active,
	).Scan(&rt.ID)
}

func (r *recurringTransactionRepo) UpdateNextDueDate(ctx context.Context, id int, nextDueDate time.Time, tx pgx.Tx) error {
	query := `UPDATE recurring_transactions SET next_due_date = $2 WHERE id = $1`
	if tx != nil {
		_, err := tx.Exec(ctx, query, id, nextDueDate)
		return err
	}
	_, err := r.db.Exec(ctx, query, id, nextDueDate)
	return err
}

func (r *recurringTransactionRepo) SetActive(ctx context.Context, userID string, id int, active bool) error {
	_, err := r.db.Exec(ctx,
		`UPDATE recurring_transactions SET active = $3 WHERE user_id = $1 AND id = $2`,
		userID, id, active,
	)
	return err
}

func (r *recurringTransactionRepo) Delete(ctx context.Context, userID string, id int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM recurring_transactions WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}

func (r *recurringTransactionRepo) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.db.Begin(ctx)
}
