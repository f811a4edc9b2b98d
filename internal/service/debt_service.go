package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calebmoore/pennywise/internal/model"
)

// DebtInput carries the fields a caller supplies when recording a debt.
type DebtInput struct {
	Person    string              `json:"person"`
	Amount    float64             `json:"amount"`
	Direction model.DebtDirection `json:"direction"`
	Date      time.Time           `json:"date"`
	Note      string              `json:"note"`
}

func (in *DebtInput) validate() error {
	if strings.TrimSpace(in.Person) == "" {
		return fmt.Errorf("%w: debt requires a person", ErrInvalid)
	}
	if in.Amount <= 0 {
		return fmt.Errorf("%w: debt amount must be positive, got %v", ErrInvalid, in.Amount)
	}
	if in.Direction != model.DirectionOwedToMe && in.Direction != model.DirectionIOwe {
		return fmt.Errorf("%w: unknown debt direction %q", ErrInvalid, in.Direction)
	}
	return nil
}

// CreateDebt records a new unsettled debt.
func (s *FinanceService) CreateDebt(ctx context.Context, ownerID string, in DebtInput) (*model.Debt, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	debt := &model.Debt{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Person:    strings.TrimSpace(in.Person),
		Amount:    in.Amount,
		Direction: in.Direction,
		Date:      model.Day(in.Date),
		Note:      in.Note,
	}
	if err := s.store.CreateDebt(ctx, debt); err != nil {
		return nil, fmt.Errorf("create debt: %w", err)
	}
	return debt, nil
}

// ToggleDebtSettled flips a debt between settled and open.
func (s *FinanceService) ToggleDebtSettled(ctx context.Context, ownerID, debtID string) (*model.Debt, error) {
	debt, err := s.store.GetDebt(ctx, ownerID, debtID)
	if err != nil {
		return nil, fmt.Errorf("get debt: %w", err)
	}
	debt.Settled = !debt.Settled
	if err := s.store.UpdateDebt(ctx, debt); err != nil {
		return nil, fmt.Errorf("update debt: %w", err)
	}
	return debt, nil
}

// DeleteDebt removes one debt.
func (s *FinanceService) DeleteDebt(ctx context.Context, ownerID, debtID string) error {
	if err := s.store.DeleteDebt(ctx, ownerID, debtID); err != nil {
		return fmt.Errorf("delete debt: %w", err)
	}
	return nil
}

// ListDebts returns every debt the owner has, settled included.
func (s *FinanceService) ListDebts(ctx context.Context, ownerID string) ([]*model.Debt, error) {
	debts, err := s.store.ListDebts(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}
	return debts, nil
}
