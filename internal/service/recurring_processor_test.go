package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/calebmoore/pennywise/internal/model"
	"github.com/calebmoore/pennywise/internal/store"
)

func recurringTx(owner, id string, amount float64, category model.Category, note string, date time.Time) *model.Transaction {
	return &model.Transaction{
		ID:        id,
		OwnerID:   owner,
		Amount:    amount,
		Type:      model.TypeExpense,
		Category:  category,
		Date:      model.Day(date),
		Note:      note,
		Recurring: true,
	}
}

func TestDueRecurringGeneratesOnePerSeries(t *testing.T) {
	now := time.Date(2024, 2, 10, 15, 0, 0, 0, time.UTC)
	txs := []*model.Transaction{
		recurringTx("user-1", "a", 1500, model.CategoryRent, "Rent", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		recurringTx("user-1", "b", 9.99, model.CategorySubscriptions, "Netflix", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		{
			ID: "c", OwnerID: "user-1", Amount: 4.5, Type: model.TypeExpense,
			Category: model.CategoryFood, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			Note: "Coffee",
		},
	}

	due := DueRecurring(txs, now)
	require.Len(t, due, 2)

	for _, tx := range due {
		assert.True(t, tx.Recurring)
		assert.Equal(t, "user-1", tx.OwnerID)
		assert.Equal(t, "2024-02", model.MonthKey(tx.Date))
		assert.NotEmpty(t, tx.ID)
		assert.NotContains(t, []string{"a", "b", "c"}, tx.ID)
	}
}

func TestDueRecurringUsesLatestOccurrence(t *testing.T) {
	now := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	txs := []*model.Transaction{
		recurringTx("user-1", "jan", 1500, model.CategoryRent, "Rent", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)),
		recurringTx("user-1", "feb", 1500, model.CategoryRent, "Rent", time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)),
	}

	due := DueRecurring(txs, now)
	require.Len(t, due, 1)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), due[0].Date)
}

func TestDueRecurringClampsDayToMonthLength(t *testing.T) {
	// Latest fired on Jan 31; February 2023 has 28 days.
	now := time.Date(2023, 2, 28, 12, 0, 0, 0, time.UTC)
	txs := []*model.Transaction{
		recurringTx("user-1", "a", 50, model.CategorySubscriptions, "Gym", time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)),
	}

	due := DueRecurring(txs, now)
	require.Len(t, due, 1)
	assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), due[0].Date)
	assert.Equal(t, "2023-02", model.MonthKey(due[0].Date))
}

func TestDueRecurringSkipsFutureCandidates(t *testing.T) {
	// Series fires on the 25th but today is only the 10th.
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	txs := []*model.Transaction{
		recurringTx("user-1", "a", 9.99, model.CategorySubscriptions, "Netflix", time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)),
	}

	assert.Empty(t, DueRecurring(txs, now))
}

func TestDueRecurringFiresOnTheDayItself(t *testing.T) {
	now := time.Date(2024, 2, 25, 9, 30, 0, 0, time.UTC)
	txs := []*model.Transaction{
		recurringTx("user-1", "a", 9.99, model.CategorySubscriptions, "Netflix", time.Date(2024, 1, 25, 0, 0, 0, 0, time.UTC)),
	}

	require.Len(t, DueRecurring(txs, now), 1)
}

func TestDueRecurringIdempotentWithinMonth(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	txs := []*model.Transaction{
		recurringTx("user-1", "a", 1500, model.CategoryRent, "Rent", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	first := DueRecurring(txs, now)
	require.Len(t, first, 1)

	// A second run over the union must produce nothing new.
	assert.Empty(t, DueRecurring(append(txs, first...), now))
}

func TestDueRecurringDistinguishesSeriesByAmount(t *testing.T) {
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	date := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	txs := []*model.Transaction{
		recurringTx("user-1", "a", 9.99, model.CategorySubscriptions, "Streaming", date),
		recurringTx("user-1", "b", 14.99, model.CategorySubscriptions, "Streaming", date),
	}

	assert.Len(t, DueRecurring(txs, now), 2)
}

func TestProcessRecurring(t *testing.T) {
	owner := "user-1"
	now := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	existing := []*model.Transaction{
		recurringTx(owner, "a", 1500, model.CategoryRent, "Rent", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	t.Run("materializes due occurrences in one batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := store.NewMockStore(ctrl)
		svc := NewFinanceService(mockStore)

		mockStore.EXPECT().
			ListTransactions(gomock.Any(), owner).
			Return(existing, nil)
		mockStore.EXPECT().
			BatchCreateTransactions(gomock.Any(), gomock.Len(1)).
			Return(1, nil)

		created, err := svc.ProcessRecurring(context.Background(), owner, now)
		require.NoError(t, err)
		assert.Equal(t, 1, created)
	})

	t.Run("nothing due means no write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := store.NewMockStore(ctrl)
		svc := NewFinanceService(mockStore)

		mockStore.EXPECT().
			ListTransactions(gomock.Any(), owner).
			Return(nil, nil)

		created, err := svc.ProcessRecurring(context.Background(), owner, now)
		require.NoError(t, err)
		assert.Zero(t, created)
	})

	t.Run("failed batch creates nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := store.NewMockStore(ctrl)
		svc := NewFinanceService(mockStore)

		mockStore.EXPECT().
			ListTransactions(gomock.Any(), owner).
			Return(existing, nil)
		mockStore.EXPECT().
			BatchCreateTransactions(gomock.Any(), gomock.Any()).
			Return(0, errors.New("backend unavailable"))

		created, err := svc.ProcessRecurring(context.Background(), owner, now)
		require.Error(t, err)
		assert.Zero(t, created)
	})
}
