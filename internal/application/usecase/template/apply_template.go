package template

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// ApplyTemplateInput represents the input for applying a single template to
// a month.
type ApplyTemplateInput struct {
	Month      valueobject.Month
	TemplateID string
}

// ApplyTemplateOutput represents the output of a single-template apply.
type ApplyTemplateOutput struct {
	// Added is false when the month already holds an instance of the
	// template on the resolved date. That outcome is informational, not an
	// error.
	Added   bool
	Expense *entity.Expense
}

// ApplyTemplateUseCase handles applying one template to one month on demand.
// It ignores both the month's applied latch and the template's paused flag.
type ApplyTemplateUseCase struct {
	templateRepo adapter.TemplateRepository
	ledgerRepo   adapter.LedgerRepository
}

// NewApplyTemplateUseCase creates a new ApplyTemplateUseCase instance.
func NewApplyTemplateUseCase(templateRepo adapter.TemplateRepository, ledgerRepo adapter.LedgerRepository) *ApplyTemplateUseCase {
	return &ApplyTemplateUseCase{
		templateRepo: templateRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Execute materializes the template into the month, skipping the insert when
// an instance on the resolved date already exists.
func (uc *ApplyTemplateUseCase) Execute(ctx context.Context, input ApplyTemplateInput) (*ApplyTemplateOutput, error) {
	templates, err := uc.templateRepo.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	tmpl := entity.FindTemplateByID(templates, input.TemplateID)
	if tmpl == nil {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeTemplateNotFound,
			"recurring expense template not found",
			domainerror.ErrTemplateNotFound,
		)
	}

	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	date := input.Month.Date(clampDay(tmpl.Day, input.Month.DaysInMonth()))
	if entity.HasTemplateInstance(expenses, tmpl.ID, date) {
		return &ApplyTemplateOutput{Added: false}, nil
	}

	expense := tmpl.Materialize(date)
	expenses = append(expenses, expense)

	if err := uc.ledgerRepo.SaveExpenses(ctx, input.Month, expenses); err != nil {
		return nil, fmt.Errorf("failed to save expenses: %w", err)
	}

	return &ApplyTemplateOutput{Added: true, Expense: expense}, nil
}
