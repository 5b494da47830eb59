package repositories

import (
	"context"

	"finserver/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CryptoHoldingRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.CryptoHolding, error)
	Create(ctx context.Context, h *models.CryptoHolding) error
	Delete(ctx context.Context, userID string, id int) error
}

type cryptoHoldingRepo struct {
	db *pgxpool.Pool
}

func NewCryptoHoldingRepository(db *pgxpool.Pool) CryptoHoldingRepository {
	return &cryptoHoldingRepo{db: db}
}

func (r *cryptoHoldingRepo) GetByUserID(ctx context.Context, userID string) ([]models.CryptoHolding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, coin_name, symbol, amount, purchase_price, purchase_date, created_at
		FROM crypto_holdings
		WHERE user_id = $1
		ORDER BY purchase_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.CryptoHolding
	for rows.Next() {
		var h models.CryptoHolding
		if err := rows.Scan(&h.ID, &h.UserID, &h.CoinName, &h.Symbol, &h.Amount, &h.PurchasePrice, &h.PurchaseDate, &h.CreatedAt); err != nil {
			return nil, err
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *cryptoHoldingRepo) Create(ctx context.Context, h *models.CryptoHolding) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO crypto_holdings (user_id, coin_name, symbol, amount, purchase_price, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		h.UserID, h.CoinName, h.Symbol, h.Amount, h.PurchasePrice, h.PurchaseDate,
	).Scan(&h.ID)
}

func (r *cryptoHoldingRepo) Delete(ctx context.Context, userID string, id int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM crypto_holdings WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}
