package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/calebmoore/pennywise/internal/model"
)

// importPaymentApp labels transactions that arrived through a CSV
// import rather than manual entry.
const importPaymentApp = "CSV Import"

var isoDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// ParseStatementCSV extracts expense drafts from free-form bank
// statement text. No column layout is assumed: the first line is
// treated as a header and dropped, the first field of each row that
// parses as a finite number supplies the amount (sign discarded), the
// first field containing an ISO date supplies the date, and the first
// field becomes the note. Rows with fewer than two fields or a zero
// amount are skipped. Returned drafts carry no ID or owner.
func ParseStatementCSV(text string, now time.Time) []*model.Transaction {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil
	}

	var drafts []*model.Transaction
	for _, line := range lines[1:] {
		cols := strings.Split(line, ",")
		for i, c := range cols {
			c = strings.TrimSpace(c)
			c = strings.TrimPrefix(c, `"`)
			c = strings.TrimSuffix(c, `"`)
			cols[i] = c
		}
		if len(cols) < 2 {
			continue
		}

		var amount float64
		for _, c := range cols {
			v, err := strconv.ParseFloat(c, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			amount = math.Abs(v)
			break
		}
		if amount == 0 {
			continue
		}

		date := model.Day(now)
		for _, c := range cols {
			m := isoDatePattern.FindString(c)
			if m == "" {
				continue
			}
			if parsed, err := time.Parse("2006-01-02", m); err == nil {
				date = parsed
			}
			break
		}

		drafts = append(drafts, &model.Transaction{
			Amount:     amount,
			Type:       model.TypeExpense,
			Category:   model.CategoryOther,
			Date:       date,
			PaymentApp: importPaymentApp,
			Note:       cols[0],
		})
	}
	return drafts
}

// ImportCSV parses statement text and persists the extracted expenses
// for the owner in one batch. It returns the number imported; when
// nothing in the text is usable the import succeeds with zero rows.
func (s *FinanceService) ImportCSV(ctx context.Context, ownerID, text string) (int, error) {
	drafts := ParseStatementCSV(text, time.Now())
	if len(drafts) == 0 {
		return 0, nil
	}

	for _, d := range drafts {
		d.ID = uuid.New().String()
		d.OwnerID = ownerID
	}

	created, err := s.store.BatchCreateTransactions(ctx, drafts)
	if err != nil {
		return 0, fmt.Errorf("batch create imported: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"owner":    ownerID,
		"imported": created,
	}).Info("csv import complete")
	return created, nil
}
