package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/calebmoore/pennywise/internal/model"
	"github.com/calebmoore/pennywise/internal/store"
)

func TestSetBudget(t *testing.T) {
	owner := "user-123"

	t.Run("creates a new budget", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := store.NewMockStore(ctrl)
		svc := NewFinanceService(mockStore)

		mockStore.EXPECT().ListBudgets(gomock.Any(), owner).Return(nil, nil)
		mockStore.EXPECT().
			CreateBudget(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, b *model.Budget) error {
				assert.Equal(t, model.CategoryFood, b.Category)
				assert.Equal(t, 400.0, b.Limit)
				assert.Equal(t, model.PeriodMonthly, b.Period)
				return nil
			})

		budget, err := svc.SetBudget(context.Background(), owner, model.CategoryFood, 400)
		require.NoError(t, err)
		assert.NotEmpty(t, budget.ID)
	})

	t.Run("replaces an existing budget for the category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := store.NewMockStore(ctrl)
		svc := NewFinanceService(mockStore)

		mockStore.EXPECT().ListBudgets(gomock.Any(), owner).Return([]*model.Budget{
			{ID: "old", OwnerID: owner, Category: model.CategoryFood, Limit: 300},
		}, nil)
		mockStore.EXPECT().DeleteBudget(gomock.Any(), owner, "old").Return(nil)
		mockStore.EXPECT().CreateBudget(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.SetBudget(context.Background(), owner, model.CategoryFood, 500)
		require.NoError(t, err)
	})

	t.Run("rejects non-budgetable categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewFinanceService(store.NewMockStore(ctrl))

		_, err := svc.SetBudget(context.Background(), owner, model.CategoryIncome, 100)
		assert.Error(t, err)

		_, err = svc.SetBudget(context.Background(), owner, model.CategoryTransfer, 100)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive limits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewFinanceService(store.NewMockStore(ctrl))

		_, err := svc.SetBudget(context.Background(), owner, model.CategoryFood, 0)
		assert.Error(t, err)
	})
}
