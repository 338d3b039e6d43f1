package budget

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	Month    valueobject.Month
	BudgetID string
}

// DeleteBudgetOutput represents the output of budget deletion.
type DeleteBudgetOutput struct {
	// RemovedExpenseID is the ID of the linked unpaid expense removed by the
	// cascade, empty when the budget had none.
	RemovedExpenseID string
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(ledgerRepo adapter.LedgerRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{ledgerRepo: ledgerRepo}
}

// Execute removes the budget and cascades to its linked unpaid expense.
// The expense collection is saved first and the budget collection last, so
// an error between the two saves leaves the budget in place and the delete
// retryable; a budget whose linked expense is already gone cascades nothing.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	budgets, err := uc.ledgerRepo.LoadBudgets(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	if entity.FindBudgetByID(budgets, input.BudgetID) == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	output := &DeleteBudgetOutput{}

	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	if linked := entity.FindLinkedUnpaidExpense(expenses, input.BudgetID); linked != nil {
		expenses = entity.RemoveExpenseByID(expenses, linked.ID)
		if err := uc.ledgerRepo.SaveExpenses(ctx, input.Month, expenses); err != nil {
			return nil, fmt.Errorf("failed to save expenses: %w", err)
		}
		output.RemovedExpenseID = linked.ID
	}

	budgets = entity.RemoveBudgetByID(budgets, input.BudgetID)
	if err := uc.ledgerRepo.SaveBudgets(ctx, input.Month, budgets); err != nil {
		return nil, fmt.Errorf("failed to save budgets: %w", err)
	}

	return output, nil
}
