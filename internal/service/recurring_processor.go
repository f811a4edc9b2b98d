package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/calebmoore/pennywise/internal/model"
)

// seriesKey identifies a recurring series. Two transactions belong to
// the same series when category, note and amount all match; there is
// no explicit series record.
func seriesKey(tx *model.Transaction) string {
	return string(tx.Category) + "|" + tx.Note + "|" + strconv.FormatFloat(tx.Amount, 'f', -1, 64)
}

// DueRecurring inspects an owner's full transaction set and returns
// the occurrences that should be materialized for the month containing
// now. For each recurring series whose latest occurrence falls in an
// earlier month, the candidate date is the latest occurrence's
// day-of-month clamped to the current month's length; candidates later
// than today are left for a future run. Returned transactions carry
// fresh IDs and are ordered deterministically by series key.
func DueRecurring(txs []*model.Transaction, now time.Time) []*model.Transaction {
	today := model.Day(now)

	latest := make(map[string]*model.Transaction)
	for _, tx := range txs {
		if !tx.Recurring {
			continue
		}
		key := seriesKey(tx)
		prev, ok := latest[key]
		if !ok || tx.Date.After(prev.Date) {
			latest[key] = tx
		}
	}

	keys := make([]string, 0, len(latest))
	for key := range latest {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var due []*model.Transaction
	for _, key := range keys {
		last := latest[key]

		// Fire at most once per series per calendar month.
		lastYM := last.Date.Year()*12 + int(last.Date.Month())
		nowYM := today.Year()*12 + int(today.Month())
		if lastYM >= nowYM {
			continue
		}

		day := last.Date.Day()
		if max := model.LastDayOfMonth(today.Year(), today.Month()).Day(); day > max {
			day = max
		}
		candidate := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, time.UTC)
		if candidate.After(today) {
			continue
		}

		due = append(due, &model.Transaction{
			ID:         uuid.New().String(),
			OwnerID:    last.OwnerID,
			Amount:     last.Amount,
			Type:       last.Type,
			Category:   last.Category,
			Date:       candidate,
			PaymentApp: last.PaymentApp,
			Note:       last.Note,
			Recurring:  true,
		})
	}
	return due
}

// ProcessRecurring materializes every due recurring occurrence for an
// owner in a single batch write. It returns the number of transactions
// created; a failed batch creates nothing.
func (s *FinanceService) ProcessRecurring(ctx context.Context, ownerID string, now time.Time) (int, error) {
	txs, err := s.store.ListTransactions(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("list transactions: %w", err)
	}

	due := DueRecurring(txs, now)
	if len(due) == 0 {
		return 0, nil
	}

	created, err := s.store.BatchCreateTransactions(ctx, due)
	if err != nil {
		return 0, fmt.Errorf("batch create recurring: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"owner":   ownerID,
		"created": created,
	}).Info("recurring occurrences materialized")
	return created, nil
}
