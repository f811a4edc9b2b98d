package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/calebmoore/pennywise/internal/model"
)

// PotInput carries the fields a caller supplies when creating or
// updating a savings pot.
type PotInput struct {
	Name          string  `json:"name"`
	Icon          string  `json:"icon"`
	Color         string  `json:"color"`
	Target        float64 `json:"target"`
	MonthlyAmount float64 `json:"monthly_amount"`
}

func (in *PotInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("%w: pot requires a name", ErrInvalid)
	}
	if in.Target < 0 {
		return fmt.Errorf("%w: pot target cannot be negative, got %v", ErrInvalid, in.Target)
	}
	if in.MonthlyAmount < 0 {
		return fmt.Errorf("%w: pot monthly amount cannot be negative, got %v", ErrInvalid, in.MonthlyAmount)
	}
	return nil
}

// CreatePot creates an empty savings pot.
func (s *FinanceService) CreatePot(ctx context.Context, ownerID string, in PotInput) (*model.SavingsPot, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	pot := &model.SavingsPot{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(in.Name),
		Icon:          in.Icon,
		Color:         in.Color,
		Target:        in.Target,
		MonthlyAmount: in.MonthlyAmount,
	}
	if err := s.store.CreatePot(ctx, pot); err != nil {
		return nil, fmt.Errorf("create pot: %w", err)
	}
	return pot, nil
}

// UpdatePot replaces a pot's configurable fields. Contributions are
// untouched.
func (s *FinanceService) UpdatePot(ctx context.Context, ownerID, potID string, in PotInput) (*model.SavingsPot, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	pot := &model.SavingsPot{
		ID:            potID,
		OwnerID:       ownerID,
		Name:          strings.TrimSpace(in.Name),
		Icon:          in.Icon,
		Color:         in.Color,
		Target:        in.Target,
		MonthlyAmount: in.MonthlyAmount,
	}
	if err := s.store.UpdatePot(ctx, pot); err != nil {
		return nil, fmt.Errorf("update pot: %w", err)
	}
	return pot, nil
}

// DeletePot removes a pot and every contribution inside it.
func (s *FinanceService) DeletePot(ctx context.Context, ownerID, potID string) error {
	if err := s.store.DeletePot(ctx, ownerID, potID); err != nil {
		return fmt.Errorf("delete pot: %w", err)
	}
	return nil
}

// ListPots returns the owner's pots with contributions attached,
// oldest contribution first.
func (s *FinanceService) ListPots(ctx context.Context, ownerID string) ([]*model.SavingsPot, error) {
	pots, err := s.store.ListPots(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list pots: %w", err)
	}
	contribs, err := s.store.ListContributions(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	byPot := make(map[string][]*model.Contribution, len(pots))
	for _, c := range contribs {
		byPot[c.PotID] = append(byPot[c.PotID], c)
	}
	for _, pot := range pots {
		pot.Contributions = byPot[pot.ID]
	}
	return pots, nil
}

// AddContribution records money moved into a pot.
func (s *FinanceService) AddContribution(ctx context.Context, ownerID, potID string, amount float64, date time.Time, note string) (*model.Contribution, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: contribution amount must be positive, got %v", ErrInvalid, amount)
	}

	contrib := &model.Contribution{
		ID:      uuid.New().String(),
		PotID:   potID,
		OwnerID: ownerID,
		Amount:  amount,
		Date:    model.Day(date),
		Note:    note,
	}
	if err := s.store.CreateContribution(ctx, contrib); err != nil {
		return nil, fmt.Errorf("create contribution: %w", err)
	}
	return contrib, nil
}

// DeleteContribution removes one contribution from a pot.
func (s *FinanceService) DeleteContribution(ctx context.Context, ownerID, contribID string) error {
	if err := s.store.DeleteContribution(ctx, ownerID, contribID); err != nil {
		return fmt.Errorf("delete contribution: %w", err)
	}
	return nil
}
