package expense

import (
	"context"
	"fmt"
	"sort"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// ListExpensesInput represents the input for expense listing.
type ListExpensesInput struct {
	Month valueobject.Month
}

// ListExpensesOutput represents the output of expense listing. Unpaid
// expenses come soonest-first, paid expenses most-recent-first.
type ListExpensesOutput struct {
	Upcoming []*entity.Expense
	Paid     []*entity.Expense
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(ledgerRepo adapter.LedgerRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{ledgerRepo: ledgerRepo}
}

// Execute returns the month's expenses split by paid state.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	output := &ListExpensesOutput{
		Upcoming: make([]*entity.Expense, 0, len(expenses)),
		Paid:     make([]*entity.Expense, 0, len(expenses)),
	}
	for _, e := range expenses {
		if e.Paid {
			output.Paid = append(output.Paid, e)
		} else {
			output.Upcoming = append(output.Upcoming, e)
		}
	}

	// Dates are YYYY-MM-DD so string order is chronological.
	sort.SliceStable(output.Upcoming, func(i, j int) bool {
		return output.Upcoming[i].Date < output.Upcoming[j].Date
	})
	sort.SliceStable(output.Paid, func(i, j int) bool {
		return output.Paid[i].Date > output.Paid[j].Date
	})

	return output, nil
}
