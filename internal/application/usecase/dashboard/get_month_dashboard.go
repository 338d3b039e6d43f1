// Package dashboard contains the month aggregation use case.
package dashboard

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// GetMonthDashboardInput represents the input for the dashboard snapshot.
type GetMonthDashboardInput struct {
	Month valueobject.Month
}

// GetMonthDashboardOutput is the month snapshot: the raw collections plus
// the figures derived from them.
type GetMonthDashboardOutput struct {
	Budgets  []*entity.Budget
	Expenses []*entity.Expense
	Notes    []*entity.Note
	Limits   entity.CategoryLimits
	Summary  valueobject.MonthSummary
}

// GetMonthDashboardUseCase handles the month dashboard aggregation.
type GetMonthDashboardUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetMonthDashboardUseCase creates a new GetMonthDashboardUseCase instance.
func NewGetMonthDashboardUseCase(ledgerRepo adapter.LedgerRepository) *GetMonthDashboardUseCase {
	return &GetMonthDashboardUseCase{ledgerRepo: ledgerRepo}
}

// Execute loads the month's collections and recomputes the summary. The
// summary is always derived fresh, never read from a cache.
func (uc *GetMonthDashboardUseCase) Execute(ctx context.Context, input GetMonthDashboardInput) (*GetMonthDashboardOutput, error) {
	budgets, err := uc.ledgerRepo.LoadBudgets(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	notes, err := uc.ledgerRepo.LoadNotes(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	limits, err := uc.ledgerRepo.LoadLimits(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load limits: %w", err)
	}

	return &GetMonthDashboardOutput{
		Budgets:  budgets,
		Expenses: expenses,
		Notes:    notes,
		Limits:   limits,
		Summary:  valueobject.Summarize(budgets, expenses, limits),
	}, nil
}
