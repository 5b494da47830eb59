package repositories

import (
	"context"

	"finserver/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FinancialGoalRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.FinancialGoal, error)
	Create(ctx context.Context, g *models.FinancialGoal) error
	UpdateProgress(ctx context.Context, userID string, id int, currentAmount float64, status string) error
	Delete(ctx context.Context, userID string, id int) error
}

type financialGoalRepo struct {
	db *pgxpool.Pool
}

func NewFinancialGoalRepository(db *pgxpool.Pool) FinancialGoalRepository {
	return &financialGoalRepo{db: db}
}

func (r *financialGoalRepo) GetByUserID(ctx context.Context, userID string) ([]models.FinancialGoal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, target_amount, current_amount, status, deadline, created_at
		FROM financial_goals
		WHERE user_id = $1
		ORDER BY deadline ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.FinancialGoal
	for rows.Next() {
		var g models.FinancialGoal
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Status, &g.Deadline, &g.CreatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (r *financialGoalRepo) Create(ctx context.Context, g *models.FinancialGoal) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO financial_goals (user_id, name, target_amount, current_amount, status, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		g.UserID, g.Name, g.TargetAmount, g.CurrentAmount, g.Status, g.Deadline,
	).Scan(&g.ID)
}

func (r *financialGoalRepo) UpdateProgress(ctx context.Context, userID string, id int, currentAmount float64, status string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE financial_goals SET current_amount = $3, status = $4 WHERE user_id = $1 AND id = $2`,
		userID, id, currentAmount, status,
	)
	return err
}

func (r *financialGoalRepo) Delete(ctx context.Context, userID string, id int) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM financial_goals WHERE user_id = $1 AND id = $2`,
		userID, id,
	)
	return err
}
