package server

import (
	"net/http"
	"time"

	"github.com/calebmoore/pennywise/internal/model"
	"github.com/calebmoore/pennywise/internal/service"
)

func (s *Server) handleLoadSession(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	sess, err := s.loader.Load(r.Context(), owner, time.Now())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	var in service.TransactionInput
	if !s.readJSON(w, r, &in) {
		return
	}

	tx, err := s.svc.CreateTransaction(r.Context(), owner, in)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	var in service.TransactionInput
	if !s.readJSON(w, r, &in) {
		return
	}

	tx, err := s.svc.UpdateTransaction(r.Context(), owner, r.PathValue("id"), in)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	if err := s.svc.DeleteTransaction(r.Context(), owner, r.PathValue("id")); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	q := r.URL.Query()
	filter := service.TransactionFilter{
		Type:       model.TransactionType(q.Get("type")),
		Category:   model.Category(q.Get("category")),
		PaymentApp: q.Get("app"),
		Search:     q.Get("q"),
	}

	txs, err := s.svc.ListTransactions(r.Context(), owner, filter)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, txs)
}

func (s *Server) handleImportCSV(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	var in struct {
		CSV string `json:"csv"`
	}
	if !s.readJSON(w, r, &in) {
		return
	}

	imported, err := s.svc.ImportCSV(r.Context(), owner, in.CSV)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"imported": imported})
}

func (s *Server) handleProcessRecurring(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	created, err := s.svc.ProcessRecurring(r.Context(), owner, time.Now())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"created": created})
}

func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	var in struct {
		Category model.Category `json:"category"`
		Limit    float64        `json:"limit"`
	}
	if !s.readJSON(w, r, &in) {
		return
	}

	budget, err := s.svc.SetBudget(r.Context(), owner, in.Category, in.Limit)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, budget)
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
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
	s.writeJSON(w, http.StatusOK, budgets)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	if err := s.svc.DeleteBudget(r.Context(), owner, r.PathValue("id")); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateDebt(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	var in service.DebtInput
	if !s.readJSON(w, r, &in) {
		return
	}

	debt, err := s.svc.CreateDebt(r.Context(), owner, in)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, debt)
}

func (s *Server) handleListDebts(w http.ResponseWriter, r *http.Request) {
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
	s.writeJSON(w, http.StatusOK, debts)
}

func (s *Server) handleToggleDebt(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	debt, err := s.svc.ToggleDebtSettled(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, debt)
}

func (s *Server) handleDeleteDebt(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	if err := s.svc.DeleteDebt(r.Context(), owner, r.PathValue("id")); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreatePot(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	var in service.PotInput
	if !s.readJSON(w, r, &in) {
		return
	}

	pot, err := s.svc.CreatePot(r.Context(), owner, in)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, pot)
}

func (s *Server) handleListPots(w http.ResponseWriter, r *http.Request) {
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
	s.writeJSON(w, http.StatusOK, pots)
}

func (s *Server) handleUpdatePot(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	var in service.PotInput
	if !s.readJSON(w, r, &in) {
		return
	}

	pot, err := s.svc.UpdatePot(r.Context(), owner, r.PathValue("id"), in)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, pot)
}

func (s *Server) handleDeletePot(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	if err := s.svc.DeletePot(r.Context(), owner, r.PathValue("id")); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddContribution(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	var in struct {
		Amount float64   `json:"amount"`
		Date   time.Time `json:"date"`
		Note   string    `json:"note"`
	}
	if !s.readJSON(w, r, &in) {
		return
	}

	contrib, err := s.svc.AddContribution(r.Context(), owner, r.PathValue("id"), in.Amount, in.Date, in.Note)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, contrib)
}

func (s *Server) handleDeleteContribution(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	if err := s.svc.DeleteContribution(r.Context(), owner, r.PathValue("id")); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetStats(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	stats, err := s.svc.GetStats(r.Context(), owner)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleResetData(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(r)
	if !ok {
		s.unauthenticated(w)
		return
	}

	if err := s.svc.ResetData(r.Context(), owner); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
