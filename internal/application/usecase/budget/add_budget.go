// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// AddBudgetInput represents the input for budget creation.
type AddBudgetInput struct {
	Month  valueobject.Month
	Name   string
	Amount float64
	Type   entity.BudgetType
}

// AddBudgetOutput represents the output of budget creation.
type AddBudgetOutput struct {
	Budget *entity.Budget

	// LinkedExpense is the unpaid expense created alongside debt and loan
	// budgets, nil for other types.
	LinkedExpense *entity.Expense
}

// AddBudgetUseCase handles budget creation logic.
type AddBudgetUseCase struct {
	ledgerRepo adapter.LedgerRepository
	clock      adapter.Clock
}

// NewAddBudgetUseCase creates a new AddBudgetUseCase instance.
func NewAddBudgetUseCase(ledgerRepo adapter.LedgerRepository, clock adapter.Clock) *AddBudgetUseCase {
	return &AddBudgetUseCase{
		ledgerRepo: ledgerRepo,
		clock:      clock,
	}
}

// Execute performs the budget creation. Debt and loan budgets also get a
// linked unpaid expense so the pending payment shows up in the month's
// expense list.
func (uc *AddBudgetUseCase) Execute(ctx context.Context, input AddBudgetInput) (*AddBudgetOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingName,
			"budget name must not be empty",
			domainerror.ErrMissingName,
		)
	}
	if input.Amount < 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	if !entity.IsValidBudgetType(input.Type) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetType,
			"budget type must be 'income', 'savings', 'debt', 'loan' or 'other'",
			domainerror.ErrInvalidBudgetType,
		)
	}

	budgets, err := uc.ledgerRepo.LoadBudgets(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	budget := entity.NewBudget(input.Name, input.Amount, input.Type)
	budgets = append(budgets, budget)

	if err := uc.ledgerRepo.SaveBudgets(ctx, input.Month, budgets); err != nil {
		return nil, fmt.Errorf("failed to save budgets: %w", err)
	}

	output := &AddBudgetOutput{Budget: budget}

	if input.Type.Linkable() {
		linked, err := uc.createLinkedExpense(ctx, input.Month, budget)
		if err != nil {
			return nil, err
		}
		output.LinkedExpense = linked
	}

	return output, nil
}

// createLinkedExpense appends the unpaid expense paired with a debt or loan
// budget. It is dated today when today falls inside the month, otherwise the
// first of the month.
func (uc *AddBudgetUseCase) createLinkedExpense(ctx context.Context, month valueobject.Month, budget *entity.Budget) (*entity.Expense, error) {
	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	now := uc.clock.Now()
	date := month.Date(1)
	if month.Contains(now) {
		date = now.Format("2006-01-02")
	}

	expense := entity.NewExpense(budget.Name, budget.Amount, entity.CategoryOther, date, "12", "00", entity.MeridiemPM)
	expense.BudgetID = budget.ID
	expenses = append(expenses, expense)

	if err := uc.ledgerRepo.SaveExpenses(ctx, month, expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}
	return expense, nil
}
