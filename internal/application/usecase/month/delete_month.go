package month

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// DeleteMonthInput represents the input for month deletion.
type DeleteMonthInput struct {
	Month valueobject.Month
}

// DeleteMonthOutput represents the output of month deletion.
type DeleteMonthOutput struct{}

// DeleteMonthUseCase handles month deletion logic.
type DeleteMonthUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteMonthUseCase creates a new DeleteMonthUseCase instance.
func NewDeleteMonthUseCase(ledgerRepo adapter.LedgerRepository) *DeleteMonthUseCase {
	return &DeleteMonthUseCase{ledgerRepo: ledgerRepo}
}

// Execute removes the month's budgets, expenses, notes and limits. Global
// templates and the applied latch survive the deletion.
func (uc *DeleteMonthUseCase) Execute(ctx context.Context, input DeleteMonthInput) (*DeleteMonthOutput, error) {
	if err := uc.ledgerRepo.DeleteMonth(ctx, input.Month); err != nil {
		return nil, fmt.Errorf("failed to delete month: %w", err)
	}

	slog.Info("Month deleted", "month", input.Month.String())

	return &DeleteMonthOutput{}, nil
}
