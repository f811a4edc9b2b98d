package report

import (
	"math"
	"time"

	"github.com/calebmoore/pennywise/internal/model"
)

// GrowthHorizons are the fixed projection horizons, in months.
var GrowthHorizons = []int{3, 6, 12, 24}

// PotProgress reports one savings pot against its target. Pct stays at
// 0 when the pot has no target (the view renders a dash). MonthsToGoal
// is nil when the goal is already met or no monthly pace is set.
type PotProgress struct {
	Pot           *model.SavingsPot `json:"pot"`
	Saved         float64           `json:"saved"`
	Pct           float64           `json:"pct"`
	Remaining     float64           `json:"remaining"`
	MonthsToGoal  *int              `json:"months_to_goal"`
	ThisMonth     float64           `json:"this_month"`
	CommitmentMet bool              `json:"commitment_met"`
}

// SavingsOverview aggregates all pots for the savings page header.
type SavingsOverview struct {
	TotalSaved   float64 `json:"total_saved"`
	TotalTargets float64 `json:"total_targets"`
	TotalMonthly float64 `json:"total_monthly"`
	ThisMonth    float64 `json:"this_month"`
	ProgressPct  float64 `json:"progress_pct"`
}

// PotReport computes progress for each pot. ThisMonth sums the pot's
// contributions in now's month; CommitmentMet flags pots whose monthly
// commitment has already been covered this month.
func PotReport(pots []*model.SavingsPot, now time.Time) []PotProgress {
	thisMonth := model.MonthKey(now)

	result := make([]PotProgress, 0, len(pots))
	for _, pot := range pots {
		saved := pot.Saved()

		p := PotProgress{
			Pot:       pot,
			Saved:     saved,
			Remaining: pot.Target - saved,
		}
		if pot.Target > 0 {
			p.Pct = math.Min(saved/pot.Target*100, 100)
		}
		if pot.MonthlyAmount > 0 && p.Remaining > 0 {
			months := int(math.Ceil(p.Remaining / pot.MonthlyAmount))
			p.MonthsToGoal = &months
		}
		for _, c := range pot.Contributions {
			if model.MonthKey(c.Date) == thisMonth {
				p.ThisMonth += c.Amount
			}
		}
		p.CommitmentMet = pot.MonthlyAmount > 0 && p.ThisMonth >= pot.MonthlyAmount

		result = append(result, p)
	}
	return result
}

// SummarizeSavings totals every pot for the overview cards.
func SummarizeSavings(pots []*model.SavingsPot, now time.Time) SavingsOverview {
	thisMonth := model.MonthKey(now)

	var o SavingsOverview
	for _, pot := range pots {
		o.TotalSaved += pot.Saved()
		o.TotalTargets += pot.Target
		o.TotalMonthly += pot.MonthlyAmount
		for _, c := range pot.Contributions {
			if model.MonthKey(c.Date) == thisMonth {
				o.ThisMonth += c.Amount
			}
		}
	}
	if o.TotalTargets > 0 {
		o.ProgressPct = o.TotalSaved / o.TotalTargets * 100
	}
	return o
}

// ContributionTrend sums contributions across all pots per month for
// the `months` months ending at now's month, oldest first.
func ContributionTrend(pots []*model.SavingsPot, now time.Time, months int) []TrendPoint {
	byMonth := make(map[string]float64)
	for _, pot := range pots {
		for _, c := range pot.Contributions {
			byMonth[model.MonthKey(c.Date)] += c.Amount
		}
	}

	result := make([]TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := model.MonthKey(m)
		result = append(result, TrendPoint{
			MonthKey: key,
			Label:    m.Format("Jan"),
			Total:    byMonth[key],
			Current:  i == 0,
		})
	}
	return result
}

// ProjectionPoint is the linear savings projection at one horizon.
type ProjectionPoint struct {
	Months    int     `json:"months"`
	Projected float64 `json:"projected"`
}

// ProjectGrowth extrapolates total savings linearly: current total
// plus the combined monthly commitment for each horizon. No
// compounding, no variance. Horizon 0 equals the current total saved.
func ProjectGrowth(pots []*model.SavingsPot, horizons []int) []ProjectionPoint {
	var totalSaved, totalMonthly float64
	for _, pot := range pots {
		totalSaved += pot.Saved()
		totalMonthly += pot.MonthlyAmount
	}

	result := make([]ProjectionPoint, 0, len(horizons))
	for _, h := range horizons {
		result = append(result, ProjectionPoint{
			Months:    h,
			Projected: totalSaved + totalMonthly*float64(h),
		})
	}
	return result
}
