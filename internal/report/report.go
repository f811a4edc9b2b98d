// Package report computes the aggregated figures every view displays.
// All functions are pure: they never mutate their inputs, perform no
// I/O, and are recomputed fresh on each call.
package report

import (
	"sort"
	"time"

	"github.com/calebmoore/pennywise/internal/model"
)

// DateRange selects the window of transactions a view looks at.
type DateRange string

const (
	RangeThisMonth  DateRange = "this_month"
	RangeLastMonth  DateRange = "last_month"
	RangeLast30Days DateRange = "last_30"
	RangeYearToDate DateRange = "ytd"
	RangeAllTime    DateRange = "all_time"
)

// RangeBounds returns the inclusive [start, end] window for a range
// relative to now. AllTime has an open start.
func RangeBounds(r DateRange, now time.Time) (start, end time.Time) {
	day := model.Day(now)
	end = day

	switch r {
	case RangeThisMonth:
		start = time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	case RangeLastMonth:
		firstOfThis := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		start = firstOfThis.AddDate(0, -1, 0)
		end = firstOfThis.AddDate(0, 0, -1)
	case RangeLast30Days:
		start = day.AddDate(0, 0, -30)
	case RangeYearToDate:
		start = time.Date(day.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default: // RangeAllTime
		start = time.Time{}
	}
	return start, end
}

// FilterByRange returns the transactions whose date falls inside the
// range. The input slice is never modified.
func FilterByRange(txs []*model.Transaction, r DateRange, now time.Time) []*model.Transaction {
	start, end := RangeBounds(r, now)
	result := make([]*model.Transaction, 0, len(txs))
	for _, tx := range txs {
		d := model.Day(tx.Date)
		if !start.IsZero() && d.Before(start) {
			continue
		}
		if d.After(end) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// Summary holds the headline income/expense figures for a period.
type Summary struct {
	Income      float64 `json:"income"`
	Expense     float64 `json:"expense"`
	Savings     float64 `json:"savings"`
	SavingsRate float64 `json:"savings_rate"`
}

// Summarize totals the given transactions. SavingsRate is a percentage
// of income and is exactly 0 when there is no income, regardless of
// expenses.
func Summarize(txs []*model.Transaction) Summary {
	var s Summary
	for _, tx := range txs {
		switch tx.Type {
		case model.TypeIncome:
			s.Income += tx.Amount
		case model.TypeExpense:
			s.Expense += tx.Amount
		}
	}
	s.Savings = s.Income - s.Expense
	if s.Income > 0 {
		s.SavingsRate = s.Savings / s.Income * 100
	}
	return s
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category model.Category `json:"category"`
	Name     string         `json:"name"`
	Total    float64        `json:"total"`
}

// CategoryBreakdown groups the period's expenses by category, sorted
// by total descending. The slice totals always sum to the period's
// total expense.
func CategoryBreakdown(txs []*model.Transaction) []CategoryTotal {
	byCat := make(map[model.Category]float64)
	for _, tx := range txs {
		if tx.Type != model.TypeExpense {
			continue
		}
		byCat[tx.Category] += tx.Amount
	}

	result := make([]CategoryTotal, 0, len(byCat))
	for cat, total := range byCat {
		result = append(result, CategoryTotal{Category: cat, Name: cat.Name(), Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// PaymentAppTotal is one slice of the payment-channel breakdown.
type PaymentAppTotal struct {
	PaymentApp string  `json:"app"`
	Total      float64 `json:"total"`
	Pct        float64 `json:"pct"`
}

// PaymentAppBreakdown groups the period's expenses by payment channel.
// Pct is each channel's share of total expense, 0 when there are no
// expenses at all.
func PaymentAppBreakdown(txs []*model.Transaction) []PaymentAppTotal {
	byApp := make(map[string]float64)
	var totalExpense float64
	for _, tx := range txs {
		if tx.Type != model.TypeExpense {
			continue
		}
		byApp[tx.PaymentApp] += tx.Amount
		totalExpense += tx.Amount
	}

	result := make([]PaymentAppTotal, 0, len(byApp))
	for app, total := range byApp {
		entry := PaymentAppTotal{PaymentApp: app, Total: total}
		if totalExpense > 0 {
			entry.Pct = total / totalExpense * 100
		}
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].PaymentApp < result[j].PaymentApp
	})
	return result
}

// TrendPoint is one month in a spending or contribution trend.
type TrendPoint struct {
	MonthKey string  `json:"month"`
	Label    string  `json:"label"`
	Total    float64 `json:"total"`
	Current  bool    `json:"current"`
}

// ExpenseTrend sums expenses per month for the `months` months ending
// at now's month, oldest first. The final point is flagged as current
// for display emphasis.
func ExpenseTrend(txs []*model.Transaction, now time.Time, months int) []TrendPoint {
	byMonth := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type != model.TypeExpense {
			continue
		}
		byMonth[model.MonthKey(tx.Date)] += tx.Amount
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
