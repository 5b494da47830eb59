package repositories

import (
	"context"
	"time"

	"finserver/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BudgetTransactionRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.BudgetTransaction, error)
	GetByUserIDDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.BudgetTransaction, error)
	Create(ctx context.Context, t *models.BudgetTransaction, tx pgx.Tx) error
	Delete(ctx context.Context, userID string, id int) error
}

type budgetTransactionRepo struct {
	db *pgxpool.Pool
}

func NewBudgetTransactionRepository(db *pgxpool.Pool) BudgetTransactionRepository {
	return &budgetTransactionRepo{db: db}
}

func (r *budgetTransactionRepo) GetByUserID(ctx context.Context, userID string) ([]models.BudgetTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, transaction_type, category, amount, description, date, created_at
		FROM budget_transactions
		WHERE user_id = $1
		ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBudgetTransactions(rows)
}

func (r *budgetTransactionRepo) GetByUserIDDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.BudgetTransaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, transaction_type, category, amount, description, date, created_at
		FROM budget_transactions
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC`,
		userID, startDate, endDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBudgetTransactions(rows)
}

func scanBudgetTransactions(rows pgx.Rows) ([]models.BudgetTransaction, error) {
	var transactions []models.BudgetTransaction
	for rows.Next() {
		var t models.BudgetTransaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.TransactionType, &t.Category, &t.Amount, &t.Description, &t.Date, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *budgetTransactionRepo) Create(ctx context.Context, t *models.BudgetTransaction, tx pgx.Tx) error {
	query := `
		INSERT INTO budget_transactions (user_id, transaction_type, category, amount, description, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	if tx != nil {
		return tx.QueryRow(ctx, query,
			t.UserID, t.TransactionType, t.Category, t.Amount, t.Description, t.Date,
		).Scan(&t.ID)
	}

	return r.db.QueryRow(ctx, query,
		t.UserID, t.TransactionType, t.Category, t.Amount, t.Description, t.Date,
	).Scan(&t.ID)
}

func (r *budgetTransactionRepo) Delete(ctx context.Context, userID string, id int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM budget_transactions WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}
