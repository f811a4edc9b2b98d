package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/calebmoore/pennywise/internal/report"
	"github.com/calebmoore/pennywise/internal/service"
)

// trendMonths is the default window for monthly trend charts.
const trendMonths = 6

func requestedRange(r *http.Request) report.DateRange {
	if v := r.URL.Query().Get("range"); v != "" {
		return report.DateRange(v)
	}
	return report.RangeThisMonth
}

func requestedMonths(r *http.Request) int {
	if v := r.URL.Query().Get("months"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return trendMonths
}

func (s *Server) handleSummaryReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	txs, err := s.svc.ListTransactions(r.Context(), owner, service.TransactionFilter{})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	windowed := report.FilterByRange(txs, requestedRange(r), time.Now())
	s.writeJSON(w, http.StatusOK, report.Summarize(windowed))
}

func (s *Server) handleCategoryReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	txs, err := s.svc.ListTransactions(r.Context(), owner, service.TransactionFilter{})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	windowed := report.FilterByRange(txs, requestedRange(r), time.Now())
	s.writeJSON(w, http.StatusOK, report.CategoryBreakdown(windowed))
}

func (s *Server) handlePaymentAppReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	txs, err := s.svc.ListTransactions(r.Context(), owner, service.TransactionFilter{})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	windowed := report.FilterByRange(txs, requestedRange(r), time.Now())
	s.writeJSON(w, http.StatusOK, report.PaymentAppBreakdown(windowed))
}

func (s *Server) handleTrendReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	txs, err := s.svc.ListTransactions(r.Context(), owner, service.TransactionFilter{})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, report.ExpenseTrend(txs, time.Now(), requestedMonths(r)))
}

func (s *Server) handleBudgetReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	budgets, err := s.svc.ListBudgets(r.Context(), owner)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	txs, err := s.svc.ListTransactions(r.Context(), owner, service.TransactionFilter{})
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, report.BudgetReport(budgets, txs, time.Now()))
}

func (s *Server) handleDebtReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	debts, err := s.svc.ListDebts(r.Context(), owner)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, report.SummarizeDebts(debts))
}

// savingsReportResponse bundles everything the savings page renders.
type savingsReportResponse struct {
	Overview    report.SavingsOverview   `json:"overview"`
	Pots        []report.PotProgress     `json:"pots"`
	Trend       []report.TrendPoint      `json:"trend"`
	Projections []report.ProjectionPoint `json:"projections"`
}

func (s *Server) handleSavingsReport(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	pots, err := s.svc.ListPots(r.Context(), owner)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	now := time.Now()
	s.writeJSON(w, http.StatusOK, savingsReportResponse{
		Overview:    report.SummarizeSavings(pots, now),
		Pots:        report.PotReport(pots, now),
		Trend:       report.ContributionTrend(pots, now, requestedMonths(r)),
		Projections: report.ProjectGrowth(pots, report.GrowthHorizons),
	})
}
