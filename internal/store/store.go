package store

import (
	"context"
	"errors"

	"github.com/calebmoore/pennywise/internal/model"
)

//go:generate mockgen -source=store.go -destination=store_mock.go -package=store

// ErrNotFound is returned when a record does not exist or belongs to a
// different owner.
var ErrNotFound = errors.New("record not found")

// Store defines the persistence operations used by the service. Two
// implementations exist: FirestoreStore for production and MemoryStore
// for local development and tests. Callers never branch on the
// concrete type; the variant is chosen once at startup.
//
// Every read and write is scoped to an owner. A write that returns nil
// is durably visible to subsequent reads by the same owner.
type Store interface {
	// Transaction operations
	CreateTransaction(ctx context.Context, tx *model.Transaction) error
	BatchCreateTransactions(ctx context.Context, txs []*model.Transaction) (int, error)
	UpdateTransaction(ctx context.Context, tx *model.Transaction) error
	DeleteTransaction(ctx context.Context, ownerID, txID string) error
	ListTransactions(ctx context.Context, ownerID string) ([]*model.Transaction, error)

	// Budget operations
	CreateBudget(ctx context.Context, budget *model.Budget) error
	DeleteBudget(ctx context.Context, ownerID, budgetID string) error
	ListBudgets(ctx context.Context, ownerID string) ([]*model.Budget, error)

	// Debt operations
	CreateDebt(ctx context.Context, debt *model.Debt) error
	GetDebt(ctx context.Context, ownerID, debtID string) (*model.Debt, error)
	UpdateDebt(ctx context.Context, debt *model.Debt) error
	DeleteDebt(ctx context.Context, ownerID, debtID string) error
	ListDebts(ctx context.Context, ownerID string) ([]*model.Debt, error)

	// Savings pot operations. Pots returned by ListPots do not carry
	// contributions; ListContributions supplies those separately.
	CreatePot(ctx context.Context, pot *model.SavingsPot) error
	UpdatePot(ctx context.Context, pot *model.SavingsPot) error
	DeletePot(ctx context.Context, ownerID, potID string) error
	ListPots(ctx context.Context, ownerID string) ([]*model.SavingsPot, error)

	// Contribution operations
	CreateContribution(ctx context.Context, contribution *model.Contribution) error
	DeleteContribution(ctx context.Context, ownerID, contributionID string) error
	ListContributions(ctx context.Context, ownerID string) ([]*model.Contribution, error)

	// DeleteOwnerData removes every record the owner has across all
	// collections.
	DeleteOwnerData(ctx context.Context, ownerID string) error
}
