package repositories

import (
	"context"

	"finserver/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BusinessFinanceRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.BusinessFinance, error)
	Create(ctx context.Context, b *models.BusinessFinance) error
	Delete(ctx context.Context, userID string, id int) error
}

type businessFinanceRepo struct {
	db *pgxpool.Pool
}

func NewBusinessFinanceRepository(db *pgxpool.Pool) BusinessFinanceRepository {
	return &businessFinanceRepo{db: db}
}

func (r *businessFinanceRepo) GetByUserID(ctx context.Context, userID string) ([]models.BusinessFinance, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, business_name, transaction_type, category, amount, description, transaction_date, created_at
		FROM business_finances
		WHERE user_id = $1
		ORDER BY transaction_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var finances []models.BusinessFinance
	for rows.Next() {
		var b models.BusinessFinance
		if err := rows.Scan(&b.ID, &b.UserID, &b.BusinessName, &b.TransactionType, &b.Category, &b.Amount, &b.Description, &b.TransactionDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		finances = append(finances, b)
	}
	return finances, rows.Err()
}

func (r *businessFinanceRepo) Create(ctx context.Context, b *models.BusinessFinance) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO business_finances (user_id, business_name, transaction_type, category, amount, description, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		b.UserID, b.BusinessName, b.TransactionType, b.Category, b.Amount, b.Description, b.TransactionDate,
	).Scan(&b.ID)
}

func (r *businessFinanceRepo) Delete(ctx context.Context, userID string, id int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM business_finances WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}
