package report

import (
	"math"
	"sort"
	"time"

	"github.com/calebmoore/pennywise/internal/model"
)

// BudgetStatus bands utilization for display.
type BudgetStatus string

const (
	BudgetNormal   BudgetStatus = "normal"
	BudgetWarning  BudgetStatus = "warning"
	BudgetCritical BudgetStatus = "critical"
)

// BudgetUtilization reports how far one budget has been spent this
// month. Pct never exceeds 100 even when over budget; Remaining goes
// negative in that case and Overage carries its absolute value.
type BudgetUtilization struct {
	Budget    *model.Budget `json:"budget"`
	Spent     float64       `json:"spent"`
	Pct       float64       `json:"pct"`
	Remaining float64       `json:"remaining"`
	Overage   float64       `json:"overage"`
	Status    BudgetStatus  `json:"status"`
}

// BudgetReport computes utilization for every budget against the
// current month's expenses, sorted highest utilization first. Budgets
// are a monthly concept, so the month of `now` applies regardless of
// any dashboard range filter.
func BudgetReport(budgets []*model.Budget, txs []*model.Transaction, now time.Time) []BudgetUtilization {
	currentMonth := model.MonthKey(now)

	spentByCat := make(map[model.Category]float64)
	for _, tx := range txs {
		if tx.Type != model.TypeExpense || model.MonthKey(tx.Date) != currentMonth {
			continue
		}
		spentByCat[tx.Category] += tx.Amount
	}

	result := make([]BudgetUtilization, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCat[b.Category]
		var pct float64
		if b.Limit > 0 {
			pct = math.Min(spent/b.Limit*100, 100)
		}
		remaining := b.Limit - spent

		u := BudgetUtilization{
			Budget:    b,
			Spent:     spent,
			Pct:       pct,
			Remaining: remaining,
			Status:    BudgetNormal,
		}
		if remaining < 0 {
			u.Overage = math.Abs(remaining)
		}
		switch {
		case pct > 90:
			u.Status = BudgetCritical
		case pct > 70:
			u.Status = BudgetWarning
		}
		result = append(result, u)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Pct != result[j].Pct {
			return result[i].Pct > result[j].Pct
		}
		return result[i].Budget.Category < result[j].Budget.Category
	})
	return result
}
