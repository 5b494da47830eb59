package repositories

import (
	"context"

	"finserver/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvestmentRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Investment, error)
	Create(ctx context.Context, i *models.Investment) error
	Delete(ctx context.Context, userID string, id int) error
}

type investmentRepo struct {
	db *pgxpool.Pool
}

func NewInvestmentRepository(db *pgxpool.Pool) InvestmentRepository {
	return &investmentRepo{db: db}
}

func (r *investmentRepo) GetByUserID(ctx context.Context, userID string) ([]models.Investment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, investment_type, amount, current_value, purchase_date, created_at
		FROM investments
		WHERE user_id = $1
		ORDER BY purchase_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var investments []models.Investment
	for rows.Next() {
		var i models.Investment
		if err := rows.Scan(&i.ID, &i.UserID, &i.Name, &i.InvestmentType, &i.Amount, &i.CurrentValue, &i.PurchaseDate, &i.CreatedAt); err != nil {
			return nil, err
		}
		investments = append(investments, i)
	}
	return investments, rows.Err()
}

func (r *investmentRepo) Create(ctx context.Context, i *models.Investment) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO investments (user_id, name, investment_type, amount, current_value, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		i.UserID, i.Name, i.InvestmentType, i.Amount, i.CurrentValue, i.PurchaseDate,
	).Scan(&i.ID)
}

func (r *investmentRepo) Delete(ctx context.Context, userID string, id int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM investments WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}
