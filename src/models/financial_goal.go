package models

import "time"

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
)

type FinancialGoal struct {
	ID            int       `db:"id"`
	UserID        string    `db:"user_id"`
	Name          string    `db:"name"`
	TargetAmount  float64   `db:"target_amount"`
	CurrentAmount float64   `db:"current_amount"`
	Status        string    `db:"status"`
	Deadline      time.Time `db:"deadline"`
	CreatedAt     time.Time `db:"created_at"`
}
