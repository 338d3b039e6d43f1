package budget

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for budget listing.
type ListBudgetsInput struct {
	Month valueobject.Month
}

// ListBudgetsOutput represents the output of budget listing.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles budget listing logic.
type ListBudgetsUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(ledgerRepo adapter.LedgerRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{ledgerRepo: ledgerRepo}
}

// Execute returns the month's budgets in insertion order.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.ledgerRepo.LoadBudgets(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	return &ListBudgetsOutput{Budgets: budgets}, nil
}
