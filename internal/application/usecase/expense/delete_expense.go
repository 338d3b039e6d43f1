package expense

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	Month     valueobject.Month
	ExpenseID string
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	// RemovedBudgetID is the ID of the debt or loan budget removed by the
	// cascade, empty when the expense was not linked.
	RemovedBudgetID string
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(ledgerRepo adapter.LedgerRepository) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{ledgerRepo: ledgerRepo}
}

// Execute removes the expense and cascades to its linked budget. The budget
// collection is saved first and the expense collection last, so an error
// between the two saves leaves the expense in place and the delete retryable;
// an expense whose linked budget is already gone cascades nothing.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
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

	output := &DeleteExpenseOutput{}

	if expense.BudgetID != "" {
		budgets, err := uc.ledgerRepo.LoadBudgets(ctx, input.Month)
		if err != nil {
			return nil, fmt.Errorf("failed to load budgets: %w", err)
		}
		if entity.FindBudgetByID(budgets, expense.BudgetID) != nil {
			budgets = entity.RemoveBudgetByID(budgets, expense.BudgetID)
			if err := uc.ledgerRepo.SaveBudgets(ctx, input.Month, budgets); err != nil {
				return nil, fmt.Errorf("failed to save budgets: %w", err)
			}
			output.RemovedBudgetID = expense.BudgetID
		}
	}

	expenses = entity.RemoveExpenseByID(expenses, input.ExpenseID)
	if err := uc.ledgerRepo.SaveExpenses(ctx, input.Month, expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}

	return output, nil
}
