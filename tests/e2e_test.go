package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmoore/pennywise/internal/auth"
	"github.com/calebmoore/pennywise/internal/model"
	"github.com/calebmoore/pennywise/internal/server"
	"github.com/calebmoore/pennywise/internal/service"
	"github.com/calebmoore/pennywise/internal/session"
	"github.com/calebmoore/pennywise/internal/store"
)

// TestFullWorkflow drives the complete API surface against the
// in-memory store the way the web client does: record a month of
// activity, import a statement, then read back every report.
func TestFullWorkflow(t *testing.T) {
	st := store.NewMemoryStore()
	svc := service.NewFinanceService(st)
	srv := server.New(svc, session.NewLoader(st, svc))
	ts := httptest.NewServer(auth.LocalDevMiddleware()(srv.Handler()))
	defer ts.Close()

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonth := monthStart.AddDate(0, -1, 0)

	call := func(method, path string, body, out any) int {
		t.Helper()
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req, err := http.NewRequest(method, ts.URL+path, &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		if out != nil {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
		}
		return resp.StatusCode
	}

	t.Run("record a month of activity", func(t *testing.T) {
		entries := []service.TransactionInput{
			{Amount: 3200, Type: model.TypeIncome, Category: model.CategoryIncome, Date: monthStart, Note: "Salary", PaymentApp: "Bank"},
			{Amount: 1400, Type: model.TypeExpense, Category: model.CategoryRent, Date: lastMonth, Note: "Rent", PaymentApp: "Bank", Recurring: true},
			{Amount: 82.30, Type: model.TypeExpense, Category: model.CategoryGroceries, Date: monthStart, Note: "Weekly shop", PaymentApp: "Revolut"},
		}
		for _, in := range entries {
			require.Equal(t, http.StatusCreated, call(http.MethodPost, "/v1/transactions", in, nil))
		}

		require.Equal(t, http.StatusOK, call(http.MethodPut, "/v1/budgets", map[string]any{
			"category": "groceries", "limit": 400.0,
		}, nil))

		require.Equal(t, http.StatusCreated, call(http.MethodPost, "/v1/debts", service.DebtInput{
			Person: "Alice", Amount: 45, Direction: model.DirectionOwedToMe, Date: now,
		}, nil))

		var pot model.SavingsPot
		require.Equal(t, http.StatusCreated, call(http.MethodPost, "/v1/pots", service.PotInput{
			Name: "Holiday", Target: 2000, MonthlyAmount: 150,
		}, &pot))
		require.Equal(t, http.StatusCreated, call(http.MethodPost,
			fmt.Sprintf("/v1/pots/%s/contributions", pot.ID),
			map[string]any{"amount": 150.0, "date": monthStart}, nil))
	})

	t.Run("statement import", func(t *testing.T) {
		csv := "Description,Date,Amount\nCoffee Shop,2024-01-15,-4.50\nnot,usable\n"
		var result map[string]int
		require.Equal(t, http.StatusOK, call(http.MethodPost, "/v1/transactions/import",
			map[string]string{"csv": csv}, &result))
		assert.Equal(t, 1, result["imported"])
	})

	t.Run("session load catches up recurring rent", func(t *testing.T) {
		var sess session.Session
		require.Equal(t, http.StatusOK, call(http.MethodGet, "/v1/session", nil, &sess))

		assert.Equal(t, 1, sess.Generated)
		assert.Len(t, sess.Budgets, 1)
		assert.Len(t, sess.Debts, 1)
		require.Len(t, sess.Pots, 1)
		assert.Equal(t, 150.0, sess.Pots[0].Saved())
		// salary + old rent + import + generated rent
		assert.Len(t, sess.Transactions, 5)
	})

	t.Run("reports reflect the data", func(t *testing.T) {
		var summary struct {
			Income  float64 `json:"income"`
			Expense float64 `json:"expense"`
		}
		require.Equal(t, http.StatusOK, call(http.MethodGet, "/v1/reports/summary?range=this_month", nil, &summary))
		assert.Equal(t, 3200.0, summary.Income)
		// this month's rent was generated by the catch-up
		assert.InDelta(t, 1400+82.30, summary.Expense, 0.001)

		var debts struct {
			TotalOwedToMe float64 `json:"total_owed_to_me"`
		}
		require.Equal(t, http.StatusOK, call(http.MethodGet, "/v1/reports/debts", nil, &debts))
		assert.Equal(t, 45.0, debts.TotalOwedToMe)

		var categories []struct {
			Category string  `json:"category"`
			Total    float64 `json:"total"`
		}
		require.Equal(t, http.StatusOK, call(http.MethodGet, "/v1/reports/categories?range=all_time", nil, &categories))
		require.NotEmpty(t, categories)
		assert.Equal(t, "rent", categories[0].Category)
	})

	t.Run("reset wipes everything", func(t *testing.T) {
		require.Equal(t, http.StatusNoContent, call(http.MethodDelete, "/v1/data", nil, nil))

		var sess session.Session
		require.Equal(t, http.StatusOK, call(http.MethodGet, "/v1/session", nil, &sess))
		assert.Empty(t, sess.Transactions)
		assert.Empty(t, sess.Pots)
	})
}
