package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/calebmoore/pennywise/internal/model"
)

// SetBudget creates a monthly budget for a category, or replaces the
// existing one. A category carries at most one budget per owner.
func (s *FinanceService) SetBudget(ctx context.Context, ownerID string, category model.Category, limit float64) (*model.Budget, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: budget limit must be positive, got %v", ErrInvalid, limit)
	}
	if !category.Budgetable() {
		return nil, fmt.Errorf("%w: category %q cannot carry a budget", ErrInvalid, category)
	}

	existing, err := s.store.ListBudgets(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	for _, b := range existing {
		if b.Category == category {
			if err := s.store.DeleteBudget(ctx, ownerID, b.ID); err != nil {
				return nil, fmt.Errorf("replace budget: %w", err)
			}
		}
	}

	budget := &model.Budget{
		ID:       uuid.New().String(),
		OwnerID:  ownerID,
		Category: category,
		Limit:    limit,
		Period:   model.PeriodMonthly,
	}
	if err := s.store.CreateBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}
	return budget, nil
}

// DeleteBudget removes one budget.
func (s *FinanceService) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	if err := s.store.DeleteBudget(ctx, ownerID, budgetID); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}

// ListBudgets returns every budget the owner has configured.
func (s *FinanceService) ListBudgets(ctx context.Context, ownerID string) ([]*model.Budget, error) {
	budgets, err := s.store.ListBudgets(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}
	return budgets, nil
}
