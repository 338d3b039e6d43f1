package expense

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// ToggleExpensePaidInput represents the input for flipping an expense's
// paid state.
type ToggleExpensePaidInput struct {
	Month     valueobject.Month
	ExpenseID string
}

// ToggleExpensePaidOutput represents the output of the paid toggle.
type ToggleExpensePaidOutput struct {
	Expense *entity.Expense
}

// ToggleExpensePaidUseCase handles the paid/unpaid toggle.
type ToggleExpensePaidUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewToggleExpensePaidUseCase creates a new ToggleExpensePaidUseCase instance.
func NewToggleExpensePaidUseCase(ledgerRepo adapter.LedgerRepository) *ToggleExpensePaidUseCase {
	return &ToggleExpensePaidUseCase{ledgerRepo: ledgerRepo}
}

// Execute flips the expense's paid flag and persists the collection.
func (uc *ToggleExpensePaidUseCase) Execute(ctx context.Context, input ToggleExpensePaidInput) (*ToggleExpensePaidOutput, error) {
	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expense := entity.FindExpenseByID(expenses, input.ExpenseID)
	if expense == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	expense.Paid = !expense.Paid

	if err := uc.ledgerRepo.SaveExpenses(ctx, input.Month, expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}

	return &ToggleExpensePaidOutput{Expense: expense}, nil
}
