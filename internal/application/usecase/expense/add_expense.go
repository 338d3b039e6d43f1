// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// AddExpenseInput represents the input for expense creation.
type AddExpenseInput struct {
	Month    valueobject.Month
	Name     string
	Amount   float64
	Category string
	Date     string
	Hour     string
	Minute   string
	AmPm     string
	Paid     bool
}

// AddExpenseOutput represents the output of expense creation.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// AddExpenseUseCase handles expense creation logic.
type AddExpenseUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(ledgerRepo adapter.LedgerRepository) *AddExpenseUseCase {
	return &AddExpenseUseCase{ledgerRepo: ledgerRepo}
}

// Execute performs the expense creation. The category label is normalized
// onto the fixed set; unrecognized labels land in Other.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingName,
			"expense name must not be empty",
			domainerror.ErrMissingName,
		)
	}
	if input.Amount < 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must not be negative",
			domainerror.ErrInvalidAmount,
		)
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDate,
			"expense date must be a valid YYYY-MM-DD date",
			domainerror.ErrInvalidDate,
		)
	}
	hour, minute, err := validateTime(input.Hour, input.Minute, input.AmPm)
	if err != nil {
		return nil, err
	}

	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expense := entity.NewExpense(
		input.Name,
		input.Amount,
		entity.NormalizeCategory(input.Category),
		input.Date,
		fmt.Sprintf("%02d", hour),
		fmt.Sprintf("%02d", minute),
		input.AmPm,
	)
	expense.Paid = input.Paid
	expenses = append(expenses, expense)

	if err := uc.ledgerRepo.SaveExpenses(ctx, input.Month, expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}

	return &AddExpenseOutput{Expense: expense}, nil
}

// validateTime checks the 12-hour time fields: hour 1..12, minute in 5-minute
// steps, meridiem AM or PM. It returns the parsed numeric values.
func validateTime(hourStr, minuteStr, ampm string) (int, int, error) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTime,
			"expense hour must be between 1 and 12",
			domainerror.ErrInvalidTime,
		)
	}
	minute, err := strconv.Atoi(minuteStr)
	if err != nil || minute < 0 || minute > 55 || minute%5 != 0 {
		return 0, 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTime,
			"expense minute must be a multiple of 5 between 0 and 55",
			domainerror.ErrInvalidTime,
		)
	}
	if ampm != entity.MeridiemAM && ampm != entity.MeridiemPM {
		return 0, 0, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidTime,
			"expense meridiem must be 'AM' or 'PM'",
			domainerror.ErrInvalidTime,
		)
	}
	return hour, minute, nil
}
