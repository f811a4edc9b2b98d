package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmoore/pennywise/internal/model"
)

func contribution(potID string, amount float64, date time.Time) *model.Contribution {
	return &model.Contribution{PotID: potID, Amount: amount, Date: model.Day(date)}
}

func TestPotReport(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("progress and months to goal", func(t *testing.T) {
		pot := &model.SavingsPot{
			ID: "p1", Name: "Holiday", Target: 1000, MonthlyAmount: 150,
			Contributions: []*model.Contribution{
				contribution("p1", 200, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
				contribution("p1", 200, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)),
			},
		}

		report := PotReport([]*model.SavingsPot{pot}, now)
		require.Len(t, report, 1)
		p := report[0]

		assert.Equal(t, 400.0, p.Saved)
		assert.Equal(t, 40.0, p.Pct)
		assert.Equal(t, 600.0, p.Remaining)
		require.NotNil(t, p.MonthsToGoal)
		assert.Equal(t, 4, *p.MonthsToGoal)
		assert.Equal(t, 200.0, p.ThisMonth)
		assert.True(t, p.CommitmentMet)
	})

	t.Run("goal met leaves months nil", func(t *testing.T) {
		pot := &model.SavingsPot{
			ID: "p1", Target: 100, MonthlyAmount: 50,
			Contributions: []*model.Contribution{
				contribution("p1", 150, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
		}

		p := PotReport([]*model.SavingsPot{pot}, now)[0]
		assert.Equal(t, 100.0, p.Pct)
		assert.Nil(t, p.MonthsToGoal)
		assert.False(t, p.CommitmentMet)
	})

	t.Run("no target means zero pct", func(t *testing.T) {
		pot := &model.SavingsPot{
			ID: "p1",
			Contributions: []*model.Contribution{
				contribution("p1", 50, now),
			},
		}

		p := PotReport([]*model.SavingsPot{pot}, now)[0]
		assert.Zero(t, p.Pct)
	})
}

func TestSummarizeSavings(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	pots := []*model.SavingsPot{
		{
			ID: "p1", Target: 1000, MonthlyAmount: 100,
			Contributions: []*model.Contribution{
				contribution("p1", 300, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
		{
			ID: "p2", Target: 500, MonthlyAmount: 50,
			Contributions: []*model.Contribution{
				contribution("p2", 450, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
	}

	o := SummarizeSavings(pots, now)
	assert.Equal(t, 750.0, o.TotalSaved)
	assert.Equal(t, 1500.0, o.TotalTargets)
	assert.Equal(t, 150.0, o.TotalMonthly)
	assert.Equal(t, 300.0, o.ThisMonth)
	assert.Equal(t, 50.0, o.ProgressPct)
}

func TestProjectGrowth(t *testing.T) {
	pots := []*model.SavingsPot{
		{
			ID: "p1", MonthlyAmount: 100,
			Contributions: []*model.Contribution{
				contribution("p1", 500, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
		{ID: "p2", MonthlyAmount: 50},
	}

	points := ProjectGrowth(pots, GrowthHorizons)
	require.Len(t, points, 4)
	assert.Equal(t, ProjectionPoint{Months: 3, Projected: 950}, points[0])
	assert.Equal(t, ProjectionPoint{Months: 24, Projected: 4100}, points[3])

	// Horizon 0 is the current total.
	zero := ProjectGrowth(pots, []int{0})
	assert.Equal(t, 500.0, zero[0].Projected)
}

func TestContributionTrend(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	pots := []*model.SavingsPot{
		{
			ID: "p1",
			Contributions: []*model.Contribution{
				contribution("p1", 100, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)),
				contribution("p1", 75, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			},
		},
	}

	trend := ContributionTrend(pots, now, 3)
	require.Len(t, trend, 3)
	assert.Equal(t, "2024-01", trend[0].MonthKey)
	assert.Equal(t, 100.0, trend[0].Total)
	assert.Zero(t, trend[1].Total)
	assert.Equal(t, 75.0, trend[2].Total)
	assert.True(t, trend[2].Current)
}
