package services

import (
	"context"
	"time"

	"finserver/src/models"
	"finserver/src/repositories"
	"finserver/src/utils"
)

type RecurringServiceI interface {
	MaterializeDue(ctx context.Context, asOf time.Time) (int, error)
}

// RecurringService turns due recurring transactions into budget transactions
// and advances their schedule. Run daily by the cron task.
type RecurringService struct {
	recurringRepo repositories.RecurringTransactionRepository
	budgetRepo    repositories.BudgetTransactionRepository
}

func NewRecurringService(
	recurringRepo repositories.RecurringTransactionRepository,
	budgetRepo repositories.BudgetTransactionRepository,
) *RecurringService {
	return &RecurringService{
		recurringRepo: recurringRepo,
		budgetRepo:    budgetRepo,
	}
}

// NextDueDate advances a due date by one period of the given frequency.
func NextDueDate(current time.Time, frequency string) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return current.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return current.AddDate(0, 0, 7)
	case models.FrequencyYearly:
		return current.AddDate(1, 0, 0)
	default:
		return current.AddDate(0, 1, 0)
	}
}

// MaterializeDue creates one budget transaction per due recurring entry and
// moves the entry's next due date forward. Each entry is processed in its own
// database transaction so one failure does not block the rest.
func (s *RecurringService) MaterializeDue(ctx context.Context, asOf time.Time) (int, error) {
	logger := utils.LoggerFromContext(ctx)

	due, err := s.recurringRepo.GetDue(ctx, asOf)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, rt := range due {
		tx, err := s.recurringRepo.BeginTx(ctx)
		if err != nil {
			return created, err
		}

		budgetTx := &models.BudgetTransaction{
			UserID:          rt.UserID,
			TransactionType: rt.TransactionType,
			Category:        rt.Category,
			Amount:          rt.Amount,
			Description:     rt.Description,
			Date:            rt.NextDueDate,
		}
		if err = s.budgetRepo.Create(ctx, budgetTx, tx); err == nil {
			err = s.recurringRepo.UpdateNextDueDate(ctx, rt.ID, NextDueDate(rt.NextDueDate, rt.Frequency), tx)
		}

		if err != nil {
			_ = tx.Rollback(ctx)
			logger.Errorf("failed to materialize recurring transaction %d: %v", rt.ID, err)
			continue
		}
		if err := tx.Commit(ctx); err != nil {
			logger.Errorf("failed to commit recurring transaction %d: %v", rt.ID, err)
			continue
		}
		created++
	}
	return created, nil
}
