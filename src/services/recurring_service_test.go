package services_test

import (
	"context"
	"testing"
	"time"

	"finserver/src/models"
	"finserver/src/services"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDueDate(t *testing.T) {
	base := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC), services.NextDueDate(base, models.FrequencyDaily))
	assert.Equal(t, time.Date(2025, 8, 22, 0, 0, 0, 0, time.UTC), services.NextDueDate(base, models.FrequencyWeekly))
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), services.NextDueDate(base, models.FrequencyMonthly))
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), services.NextDueDate(base, models.FrequencyYearly))
}

func TestNextDueDateMonthEndRollover(t *testing.T) {
	// AddDate normalizes Jan 31 + 1 month to Mar 3; the schedule keeps moving
	// forward either way, which is what matters for materialization.
	next := services.NextDueDate(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), models.FrequencyMonthly)
	assert.True(t, next.After(time.Date(2025, 2, 27, 0, 0, 0, 0, time.UTC)))
}

func TestNextDueDateUnknownFrequencyDefaultsToMonthly(t *testing.T) {
	base := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), services.NextDueDate(base, "fortnightly"))
}

// fakeTx embeds pgx.Tx for the methods the materializer never touches.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }

type fakeRecurringTxRepo struct {
	due      []models.RecurringTransaction
	txs      []*fakeTx
	advanced map[int]time.Time
}

func (f *fakeRecurringTxRepo) GetByUserID(ctx context.Context, userID string) ([]models.RecurringTransaction, error) {
	return nil, nil
}

func (f *fakeRecurringTxRepo) GetDue(ctx context.Context, asOf time.Time) ([]models.RecurringTransaction, error) {
	return f.due, nil
}

func (f *fakeRecurringTxRepo) Create(ctx context.Context, rt *models.RecurringTransaction) error {
	return nil
}

func (f *fakeRecurringTxRepo) UpdateNextDueDate(ctx context.Context, id int, nextDueDate time.Time, tx pgx.Tx) error {
	if f.advanced == nil {
		f.advanced = make(map[int]time.Time)
	}
	f.advanced[id] = nextDueDate
	return nil
}

func (f *fakeRecurringTxRepo) SetActive(ctx context.Context, userID string, id int, active bool) error {
	return nil
}

func (f *fakeRecurringTxRepo) Delete(ctx context.Context, userID string, id int) error { return nil }

func (f *fakeRecurringTxRepo) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx := &fakeTx{}
	f.txs = append(f.txs, tx)
	return tx, nil
}

type fakeBudgetTxRepo struct {
	created      []models.BudgetTransaction
	failCategory string
}

func (f *fakeBudgetTxRepo) GetByUserID(ctx context.Context, userID string) ([]models.BudgetTransaction, error) {
	return nil, nil
}

func (f *fakeBudgetTxRepo) GetByUserIDDateRange(ctx context.Context, userID string, startDate, endDate time.Time) ([]models.BudgetTransaction, error) {
	return nil, nil
}

func (f *fakeBudgetTxRepo) Create(ctx context.Context, t *models.BudgetTransaction, tx pgx.Tx) error {
	if t.Category == f.failCategory {
		return assert.AnError
	}
	f.created = append(f.created, *t)
	return nil
}

func (f *fakeBudgetTxRepo) Delete(ctx context.Context, userID string, id int) error { return nil }

func TestMaterializeDueSkipsFailedEntries(t *testing.T) {
	due := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	recurringRepo := &fakeRecurringTxRepo{
		due: []models.RecurringTransaction{
			{ID: 1, UserID: "user-1", TransactionType: "expense", Category: "sewa", Amount: 2_000_000, Frequency: models.FrequencyMonthly, NextDueDate: due},
			{ID: 2, UserID: "user-1", TransactionType: "expense", Category: "langganan", Amount: 150_000, Frequency: models.FrequencyMonthly, NextDueDate: due},
			{ID: 3, UserID: "user-2", TransactionType: "income", Category: "gaji", Amount: 12_000_000, Frequency: models.FrequencyMonthly, NextDueDate: due},
		},
	}
	budgetRepo := &fakeBudgetTxRepo{failCategory: "langganan"}

	service := services.NewRecurringService(recurringRepo, budgetRepo)
	created, err := service.MaterializeDue(context.Background(), due)
	require.NoError(t, err)

	assert.Equal(t, 2, created)
	require.Len(t, budgetRepo.created, 2)
	assert.Equal(t, "sewa", budgetRepo.created[0].Category)
	assert.Equal(t, "gaji", budgetRepo.created[1].Category)

	// One transaction per entry; the failed one rolled back, the rest committed.
	require.Len(t, recurringRepo.txs, 3)
	assert.True(t, recurringRepo.txs[0].committed)
	assert.True(t, recurringRepo.txs[1].rolledBack)
	assert.False(t, recurringRepo.txs[1].committed)
	assert.True(t, recurringRepo.txs[2].committed)

	// The failed entry's schedule is not advanced.
	assert.Equal(t, due.AddDate(0, 1, 0), recurringRepo.advanced[1])
	assert.Equal(t, due.AddDate(0, 1, 0), recurringRepo.advanced[3])
	_, advanced := recurringRepo.advanced[2]
	assert.False(t, advanced)
}

func TestMaterializeDueNothingDue(t *testing.T) {
	service := services.NewRecurringService(&fakeRecurringTxRepo{}, &fakeBudgetTxRepo{})
	created, err := service.MaterializeDue(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, created)
}
