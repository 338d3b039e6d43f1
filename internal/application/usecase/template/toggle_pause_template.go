package template

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
)

// TogglePauseTemplateInput represents the input for flipping a template's
// paused state.
type TogglePauseTemplateInput struct {
	TemplateID string
}

// TogglePauseTemplateOutput represents the output of the pause toggle.
type TogglePauseTemplateOutput struct {
	Template *entity.RecurringExpense
}

// TogglePauseTemplateUseCase handles the pause/resume toggle.
type TogglePauseTemplateUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewTogglePauseTemplateUseCase creates a new TogglePauseTemplateUseCase instance.
func NewTogglePauseTemplateUseCase(templateRepo adapter.TemplateRepository) *TogglePauseTemplateUseCase {
	return &TogglePauseTemplateUseCase{templateRepo: templateRepo}
}

// Execute flips the template's paused flag. Paused templates are skipped by
// bulk reconciliation but can still be applied explicitly.
func (uc *TogglePauseTemplateUseCase) Execute(ctx context.Context, input TogglePauseTemplateInput) (*TogglePauseTemplateOutput, error) {
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

	tmpl.IsPaused = !tmpl.IsPaused

	if err := uc.templateRepo.SaveTemplates(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save templates: %w", err)
	}

	return &TogglePauseTemplateOutput{Template: tmpl}, nil
}
