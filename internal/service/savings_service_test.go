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

func TestCreatePot(t *testing.T) {
	owner := "user-123"

	t.Run("creates an empty pot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := store.NewMockStore(ctrl)
		svc := NewFinanceService(mockStore)

		mockStore.EXPECT().
			CreatePot(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *model.SavingsPot) error {
				assert.Equal(t, "Holiday", p.Name)
				assert.Empty(t, p.Contributions)
				return nil
			})

		pot, err := svc.CreatePot(context.Background(), owner, PotInput{
			Name: "Holiday", Icon: "✈️", Color: "#4f9cf9", Target: 2000, MonthlyAmount: 150,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, pot.ID)
	})

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewFinanceService(store.NewMockStore(ctrl))

		cases := []PotInput{
			{Name: "   "},
			{Name: "Car", Target: -1},
			{Name: "Car", MonthlyAmount: -5},
		}
		for _, in := range cases {
			_, err := svc.CreatePot(context.Background(), owner, in)
			assert.Error(t, err)
		}
	})
}

func TestListPotsAttachesContributions(t *testing.T) {
	owner := "user-123"
	ctrl := gomock.NewController(t)
	mockStore := store.NewMockStore(ctrl)
	svc := NewFinanceService(mockStore)

	mockStore.EXPECT().ListPots(gomock.Any(), owner).Return([]*model.SavingsPot{
		{ID: "p1", OwnerID: owner, Name: "Holiday"},
		{ID: "p2", OwnerID: owner, Name: "Emergency"},
	}, nil)
	mockStore.EXPECT().ListContributions(gomock.Any(), owner).Return([]*model.Contribution{
		{ID: "c1", PotID: "p1", Amount: 100},
		{ID: "c2", PotID: "p1", Amount: 50},
		{ID: "c3", PotID: "p2", Amount: 500},
	}, nil)

	pots, err := svc.ListPots(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, pots, 2)
	assert.Len(t, pots[0].Contributions, 2)
	assert.Equal(t, 150.0, pots[0].Saved())
	assert.Equal(t, 500.0, pots[1].Saved())
}

func TestAddContribution(t *testing.T) {
	owner := "user-123"
	date := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	t.Run("records a contribution", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockStore := store.NewMockStore(ctrl)
		svc := NewFinanceService(mockStore)

		mockStore.EXPECT().
			CreateContribution(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *model.Contribution) error {
				assert.Equal(t, "p1", c.PotID)
				assert.Equal(t, owner, c.OwnerID)
				return nil
			})

		contrib, err := svc.AddContribution(context.Background(), owner, "p1", 75, date, "payday")
		require.NoError(t, err)
		assert.Equal(t, 75.0, contrib.Amount)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewFinanceService(store.NewMockStore(ctrl))

		_, err := svc.AddContribution(context.Background(), owner, "p1", 0, date, "")
		assert.Error(t, err)
	})
}
