package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/calebmoore/pennywise/internal/model"
	"github.com/calebmoore/pennywise/internal/store"
)

// FinanceService implements every owner-scoped operation the API
// exposes. It holds the storage collaborator and nothing else; all
// aggregation lives in the report package.
type FinanceService struct {
	store store.Store
	log   *logrus.Entry
}

// NewFinanceService creates a service backed by the given store.
func NewFinanceService(st store.Store) *FinanceService {
	return &FinanceService{
		store: st,
		log:   logrus.WithField("component", "service"),
	}
}

// TransactionInput carries the fields a caller supplies when creating
// or updating a transaction.
type TransactionInput struct {
	Amount     float64               `json:"amount"`
	Type       model.TransactionType `json:"type"`
	Category   model.Category        `json:"category"`
	Date       time.Time             `json:"date"`
	PaymentApp string                `json:"app"`
	Note       string                `json:"note"`
	Recurring  bool                  `json:"recurring"`
}

// ErrInvalid marks input validation failures so transport layers can
// distinguish them from storage faults.
var ErrInvalid = errors.New("invalid input")

func (in *TransactionInput) validate() error {
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %v", ErrInvalid, in.Amount)
	}
	if in.Type != model.TypeIncome && in.Type != model.TypeExpense {
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalid, in.Type)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalid, in.Category)
	}
	return nil
}

// CreateTransaction validates and persists a new transaction.
func (s *FinanceService) CreateTransaction(ctx context.Context, ownerID string, in TransactionInput) (*model.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tx := &model.Transaction{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Amount:     in.Amount,
		Type:       in.Type,
		Category:   in.Category,
		Date:       model.Day(in.Date),
		PaymentApp: in.PaymentApp,
		Note:       in.Note,
		Recurring:  in.Recurring,
	}
	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return tx, nil
}

// UpdateTransaction replaces an existing transaction's fields.
func (s *FinanceService) UpdateTransaction(ctx context.Context, ownerID, txID string, in TransactionInput) (*model.Transaction, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	tx := &model.Transaction{
		ID:         txID,
		OwnerID:    ownerID,
		Amount:     in.Amount,
		Type:       in.Type,
		Category:   in.Category,
		Date:       model.Day(in.Date),
		PaymentApp: in.PaymentApp,
		Note:       in.Note,
		Recurring:  in.Recurring,
	}
	if err := s.store.UpdateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return tx, nil
}

// DeleteTransaction removes one transaction.
func (s *FinanceService) DeleteTransaction(ctx context.Context, ownerID, txID string) error {
	if err := s.store.DeleteTransaction(ctx, ownerID, txID); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// TransactionFilter narrows a transaction listing. Zero values mean
// "no filter". Search matches the note and the category display name,
// case-insensitively.
type TransactionFilter struct {
	Type       model.TransactionType
	Category   model.Category
	PaymentApp string
	Search     string
}

func (f TransactionFilter) matches(tx *model.Transaction) bool {
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.PaymentApp != "" && tx.PaymentApp != f.PaymentApp {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.Note), needle) &&
			!strings.Contains(strings.ToLower(tx.Category.Name()), needle) {
			return false
		}
	}
	return true
}

// ListTransactions returns the owner's transactions newest first,
// optionally filtered.
func (s *FinanceService) ListTransactions(ctx context.Context, ownerID string, filter TransactionFilter) ([]*model.Transaction, error) {
	txs, err := s.store.ListTransactions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	result := make([]*model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if filter.matches(tx) {
			result = append(result, tx)
		}
	}
	return result, nil
}

// Stats summarizes an owner's lifetime data for the settings overview.
type Stats struct {
	TransactionCount int     `json:"transaction_count"`
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	TotalSaved       float64 `json:"total_saved"`
}

// GetStats computes lifetime totals across all collections.
func (s *FinanceService) GetStats(ctx context.Context, ownerID string) (*Stats, error) {
	txs, err := s.store.ListTransactions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	contribs, err := s.store.ListContributions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	stats := &Stats{TransactionCount: len(txs)}
	for _, tx := range txs {
		switch tx.Type {
		case model.TypeIncome:
			stats.TotalIncome += tx.Amount
		case model.TypeExpense:
			stats.TotalExpense += tx.Amount
		}
	}
	for _, c := range contribs {
		stats.TotalSaved += c.Amount
	}
	return stats, nil
}

// ResetData wipes every record the owner has.
func (s *FinanceService) ResetData(ctx context.Context, ownerID string) error {
	if err := s.store.DeleteOwnerData(ctx, ownerID); err != nil {
		return fmt.Errorf("reset data: %w", err)
	}
	s.log.WithField("owner", ownerID).Info("owner data reset")
	return nil
}
