// Package month contains month lifecycle use cases.
package month

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/application/usecase/template"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// OpenMonthInput represents the input for opening a month.
type OpenMonthInput struct {
	Month valueobject.Month
}

// OpenMonthOutput represents the output of opening a month.
type OpenMonthOutput struct {
	// Reconciled is true when this call ran bulk template reconciliation,
	// false when the month was already latched.
	Reconciled bool

	// Added is the number of expenses materialized by this call.
	Added int
}

// OpenMonthUseCase lazily creates a month partition and runs the one-shot
// bulk template reconciliation.
type OpenMonthUseCase struct {
	ledgerRepo   adapter.LedgerRepository
	templateRepo adapter.TemplateRepository
}

// NewOpenMonthUseCase creates a new OpenMonthUseCase instance.
func NewOpenMonthUseCase(ledgerRepo adapter.LedgerRepository, templateRepo adapter.TemplateRepository) *OpenMonthUseCase {
	return &OpenMonthUseCase{
		ledgerRepo:   ledgerRepo,
		templateRepo: templateRepo,
	}
}

// Execute ensures the month's collections exist, then materializes every
// active template once. The latch is set even when nothing was added, and it
// stays set if the month is later deleted, so reopening a deleted month does
// not resurrect its recurring expenses.
func (uc *OpenMonthUseCase) Execute(ctx context.Context, input OpenMonthInput) (*OpenMonthOutput, error) {
	if err := uc.ledgerRepo.EnsureMonth(ctx, input.Month); err != nil {
		return nil, fmt.Errorf("failed to ensure month: %w", err)
	}

	applied, err := uc.templateRepo.IsApplied(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to read applied latch: %w", err)
	}
	if applied {
		return &OpenMonthOutput{}, nil
	}

	templates, err := uc.templateRepo.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	expenses, added := template.Reconcile(input.Month, templates, expenses)
	if added > 0 {
		if err := uc.ledgerRepo.SaveExpenses(ctx, input.Month, expenses); err != nil {
			return nil, fmt.Errorf("failed to save expenses: %w", err)
		}
	}

	if err := uc.templateRepo.MarkApplied(ctx, input.Month); err != nil {
		return nil, fmt.Errorf("failed to set applied latch: %w", err)
	}

	slog.Info("Month opened",
		"month", input.Month.String(),
		"recurring_expenses_added", added,
	)

	return &OpenMonthOutput{Reconciled: true, Added: added}, nil
}
