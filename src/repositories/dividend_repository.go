package repositories

import (
	"context"

	"finserver/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DividendRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Dividend, error)
	Create(ctx context.Context, d *models.Dividend) error
	Delete(ctx context.Context, userID string, id int) error
}

type dividendRepo struct {
	db *pgxpool.Pool
}

func NewDividendRepository(db *pgxpool.Pool) DividendRepository {
	return &dividendRepo{db: db}
}

func (r *dividendRepo) GetByUserID(ctx context.Context, userID string) ([]models.Dividend, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, ticker, amount, payment_date, created_at
		FROM dividends
		WHERE user_id = $1
		ORDER BY payment_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dividends []models.Dividend
	for rows.Next() {
		var d models.Dividend
		if err := rows.Scan(&d.ID, &d.UserID, &d.Ticker, &d.Amount, &d.PaymentDate, &d.CreatedAt); err != nil {
			return nil, err
		}
		dividends = append(dividends, d)
	}
	return dividends, rows.Err()
}

func (r *dividendRepo) Create(ctx context.Context, d *models.Dividend) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO dividends (user_id, ticker, amount, payment_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		d.UserID, d.Ticker, d.Amount, d.PaymentDate,
	).Scan(&d.ID)
}

func (r *dividendRepo) Delete(ctx context.Context, userID string, id int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM dividends WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}
