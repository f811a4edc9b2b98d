package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/calebmoore/pennywise/internal/model"
	"github.com/calebmoore/pennywise/internal/store"
)

func TestCreateDebt(t *testing.T) {
	owner := "user-123"
	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("records an unsettled debt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := store.NewMockStore(ctrl)
		svc := NewFinanceService(mockStore)

		mockStore.EXPECT().
			CreateDebt(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *model.Debt) error {
				assert.Equal(t, "Alice", d.Person)
				assert.False(t, d.Settled)
				return nil
			})

		debt, err := svc.CreateDebt(context.Background(), owner, DebtInput{
			Person:    "  Alice  ",
			Amount:    25,
			Direction: model.DirectionOwedToMe,
			Date:      date,
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice", debt.Person)
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewFinanceService(store.NewMockStore(ctrl))

		cases := []DebtInput{
			{Person: "", Amount: 10, Direction: model.DirectionIOwe, Date: date},
			{Person: "Bob", Amount: 0, Direction: model.DirectionIOwe, Date: date},
			{Person: "Bob", Amount: 10, Direction: "sideways", Date: date},
		}
		for _, in := range cases {
			_, err := svc.CreateDebt(context.Background(), owner, in)
			assert.Error(t, err)
		}
	})
}

func TestToggleDebtSettled(t *testing.T) {
	owner := "user-123"
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	svc := NewFinanceService(mockStore)

	stored := &model.Debt{ID: "d1", OwnerID: owner, Person: "Alice", Amount: 25, Direction: model.DirectionOwedToMe}

	mockStore.EXPECT().GetDebt(gomock.Any(), owner, "d1").Return(stored, nil)
	mockStore.EXPECT().
		UpdateDebt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *model.Debt) error {
			assert.True(t, d.Settled)
			return nil
		})

	debt, err := svc.ToggleDebtSettled(context.Background(), owner, "d1")
	require.NoError(t, err)
	assert.True(t, debt.Settled)
}

func TestToggleDebtSettledNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	svc := NewFinanceService(mockStore)

	mockStore.EXPECT().GetDebt(gomock.Any(), "user-123", "missing").Return(nil, store.ErrNotFound)

	_, err := svc.ToggleDebtSettled(context.Background(), "user-123", "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
