// Package server exposes the finance service over JSON HTTP.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/calebmoore/pennywise/internal/auth"
	"github.com/calebmoore/pennywise/internal/service"
	"github.com/calebmoore/pennywise/internal/session"
	"github.com/calebmoore/pennywise/internal/store"
)

// Server routes authenticated HTTP requests to the finance service.
type Server struct {
	svc    *service.FinanceService
	loader *session.Loader
	log    *logrus.Entry
}

// New creates a server around the given service and session loader.
func New(svc *service.FinanceService, loader *session.Loader) *Server {
	return &Server{
		svc:    svc,
		loader: loader,
		log:    logrus.WithField("component", "server"),
	}
}

// Handler builds the full route table. Authentication middleware is
// applied by the caller so local development can swap it out.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /v1/session", s.handleLoadSession)

	mux.HandleFunc("POST /v1/transactions", s.handleCreateTransaction)
	mux.HandleFunc("GET /v1/transactions", s.handleListTransactions)
	mux.HandleFunc("PUT /v1/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /v1/transactions/{id}", s.handleDeleteTransaction)
	mux.HandleFunc("POST /v1/transactions/import", s.handleImportCSV)
	mux.HandleFunc("POST /v1/transactions/recurring", s.handleProcessRecurring)

	mux.HandleFunc("PUT /v1/budgets", s.handleSetBudget)
	mux.HandleFunc("GET /v1/budgets", s.handleListBudgets)
	mux.HandleFunc("DELETE /v1/budgets/{id}", s.handleDeleteBudget)

	mux.HandleFunc("POST /v1/debts", s.handleCreateDebt)
	mux.HandleFunc("GET /v1/debts", s.handleListDebts)
	mux.HandleFunc("POST /v1/debts/{id}/toggle", s.handleToggleDebt)
	mux.HandleFunc("DELETE /v1/debts/{id}", s.handleDeleteDebt)

	mux.HandleFunc("POST /v1/pots", s.handleCreatePot)
	mux.HandleFunc("GET /v1/pots", s.handleListPots)
	mux.HandleFunc("PUT /v1/pots/{id}", s.handleUpdatePot)
	mux.HandleFunc("DELETE /v1/pots/{id}", s.handleDeletePot)
	mux.HandleFunc("POST /v1/pots/{id}/contributions", s.handleAddContribution)
	mux.HandleFunc("DELETE /v1/contributions/{id}", s.handleDeleteContribution)

	mux.HandleFunc("GET /v1/reports/summary", s.handleSummaryReport)
	mux.HandleFunc("GET /v1/reports/categories", s.handleCategoryReport)
	mux.HandleFunc("GET /v1/reports/apps", s.handlePaymentAppReport)
	mux.HandleFunc("GET /v1/reports/trend", s.handleTrendReport)
	mux.HandleFunc("GET /v1/reports/budgets", s.handleBudgetReport)
	mux.HandleFunc("GET /v1/reports/debts", s.handleDebtReport)
	mux.HandleFunc("GET /v1/reports/savings", s.handleSavingsReport)

	mux.HandleFunc("GET /v1/stats", s.handleGetStats)
	mux.HandleFunc("DELETE /v1/data", s.handleResetData)

	return mux
}

// ownerID pulls the authenticated user out of the request context.
func ownerID(r *http.Request) (string, bool) {
	return auth.GetUserID(r.Context())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Error("encode response")
	}
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// serviceError maps service failures onto HTTP status codes.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, service.ErrInvalid):
		s.writeError(w, http.StatusBadRequest, err)
	default:
		s.log.WithError(err).Error("request failed")
		s.writeError(w, http.StatusInternalServerError, err)
	}
}

func (s *Server) unauthenticated(w http.ResponseWriter) {
	s.writeError(w, http.StatusUnauthorized, errors.New("user not authenticated"))
}
