package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/calebmoore/pennywise/internal/model"
)

// MemoryStore implements Store with in-memory maps. It is used for
// local development and tests.
type MemoryStore struct {
	mu sync.RWMutex

	transactions  map[string]*model.Transaction
	budgets       map[string]*model.Budget
	debts         map[string]*model.Debt
	pots          map[string]*model.SavingsPot
	contributions map[string]*model.Contribution
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions:  make(map[string]*model.Transaction),
		budgets:       make(map[string]*model.Budget),
		debts:         make(map[string]*model.Debt),
		pots:          make(map[string]*model.SavingsPot),
		contributions: make(map[string]*model.Contribution),
	}
}

// Transaction operations

func (m *MemoryStore) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	cp := *tx
	m.transactions[tx.ID] = &cp
	return nil
}

func (m *MemoryStore) BatchCreateTransactions(ctx context.Context, txs []*model.Transaction) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, tx := range txs {
		if tx.ID == "" {
			tx.ID = uuid.New().String()
		}
		cp := *tx
		m.transactions[tx.ID] = &cp
	}
	return len(txs), nil
}

func (m *MemoryStore) UpdateTransaction(ctx context.Context, tx *model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.transactions[tx.ID]
	if !ok || existing.OwnerID != tx.OwnerID {
		return ErrNotFound
	}
	cp := *tx
	m.transactions[tx.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteTransaction(ctx context.Context, ownerID, txID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.transactions[txID]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.transactions, txID)
	return nil
}

func (m *MemoryStore) ListTransactions(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Transaction, 0)
	for _, tx := range m.transactions {
		if tx.OwnerID != ownerID {
			continue
		}
		cp := *tx
		result = append(result, &cp)
	}
	// Newest first, ID as tie-breaker so ordering is stable.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Budget operations

func (m *MemoryStore) CreateBudget(ctx context.Context, budget *model.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	cp := *budget
	m.budgets[budget.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.budgets[budgetID]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.budgets, budgetID)
	return nil
}

func (m *MemoryStore) ListBudgets(ctx context.Context, ownerID string) ([]*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Budget, 0)
	for _, b := range m.budgets {
		if b.OwnerID != ownerID {
			continue
		}
		cp := *b
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Debt operations

func (m *MemoryStore) CreateDebt(ctx context.Context, debt *model.Debt) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	cp := *debt
	m.debts[debt.ID] = &cp
	return nil
}

func (m *MemoryStore) GetDebt(ctx context.Context, ownerID, debtID string) (*model.Debt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	debt, ok := m.debts[debtID]
	if !ok || debt.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	cp := *debt
	return &cp, nil
}

func (m *MemoryStore) UpdateDebt(ctx context.Context, debt *model.Debt) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.debts[debt.ID]
	if !ok || existing.OwnerID != debt.OwnerID {
		return ErrNotFound
	}
	cp := *debt
	m.debts[debt.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteDebt(ctx context.Context, ownerID, debtID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.debts[debtID]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.debts, debtID)
	return nil
}

func (m *MemoryStore) ListDebts(ctx context.Context, ownerID string) ([]*model.Debt, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Debt, 0)
	for _, d := range m.debts {
		if d.OwnerID != ownerID {
			continue
		}
		cp := *d
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Savings pot operations

func (m *MemoryStore) CreatePot(ctx context.Context, pot *model.SavingsPot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if pot.ID == "" {
		pot.ID = uuid.New().String()
	}
	cp := *pot
	cp.Contributions = nil
	m.pots[pot.ID] = &cp
	return nil
}

func (m *MemoryStore) UpdatePot(ctx context.Context, pot *model.SavingsPot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.pots[pot.ID]
	if !ok || existing.OwnerID != pot.OwnerID {
		return ErrNotFound
	}
	cp := *pot
	cp.Contributions = nil
	m.pots[pot.ID] = &cp
	return nil
}

func (m *MemoryStore) DeletePot(ctx context.Context, ownerID, potID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.pots[potID]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.pots, potID)
	// Cascade to the pot's contributions.
	for id, c := range m.contributions {
		if c.PotID == potID {
			delete(m.contributions, id)
		}
	}
	return nil
}

func (m *MemoryStore) ListPots(ctx context.Context, ownerID string) ([]*model.SavingsPot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.SavingsPot, 0)
	for _, p := range m.pots {
		if p.OwnerID != ownerID {
			continue
		}
		cp := *p
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Contribution operations

func (m *MemoryStore) CreateContribution(ctx context.Context, contribution *model.Contribution) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if contribution.ID == "" {
		contribution.ID = uuid.New().String()
	}
	cp := *contribution
	m.contributions[contribution.ID] = &cp
	return nil
}

func (m *MemoryStore) DeleteContribution(ctx context.Context, ownerID, contributionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.contributions[contributionID]
	if !ok || existing.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(m.contributions, contributionID)
	return nil
}

func (m *MemoryStore) ListContributions(ctx context.Context, ownerID string) ([]*model.Contribution, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Contribution, 0)
	for _, c := range m.contributions {
		if c.OwnerID != ownerID {
			continue
		}
		cp := *c
		result = append(result, &cp)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// DeleteOwnerData removes every record belonging to the owner.
func (m *MemoryStore) DeleteOwnerData(ctx context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, tx := range m.transactions {
		if tx.OwnerID == ownerID {
			delete(m.transactions, id)
		}
	}
	for id, b := range m.budgets {
		if b.OwnerID == ownerID {
			delete(m.budgets, id)
		}
	}
	for id, d := range m.debts {
		if d.OwnerID == ownerID {
			delete(m.debts, id)
		}
	}
	for id, p := range m.pots {
		if p.OwnerID == ownerID {
			delete(m.pots, id)
		}
	}
	for id, c := range m.contributions {
		if c.OwnerID == ownerID {
			delete(m.contributions, id)
		}
	}
	return nil
}
