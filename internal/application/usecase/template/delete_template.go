package template

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
)

// DeleteTemplateInput represents the input for template deletion.
type DeleteTemplateInput struct {
	TemplateID string
}

// DeleteTemplateOutput represents the output of template deletion.
type DeleteTemplateOutput struct{}

// DeleteTemplateUseCase handles recurring template deletion logic.
type DeleteTemplateUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewDeleteTemplateUseCase creates a new DeleteTemplateUseCase instance.
func NewDeleteTemplateUseCase(templateRepo adapter.TemplateRepository) *DeleteTemplateUseCase {
	return &DeleteTemplateUseCase{templateRepo: templateRepo}
}

// Execute removes the template. Expenses already materialized from it keep
// their back-reference and are untouched.
func (uc *DeleteTemplateUseCase) Execute(ctx context.Context, input DeleteTemplateInput) (*DeleteTemplateOutput, error) {
	templates, err := uc.templateRepo.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	if entity.FindTemplateByID(templates, input.TemplateID) == nil {
		return nil, domainerror.NewTemplateError(
			domainerror.ErrCodeTemplateNotFound,
			"recurring expense template not found",
			domainerror.ErrTemplateNotFound,
		)
	}

	templates = entity.RemoveTemplateByID(templates, input.TemplateID)
	if err := uc.templateRepo.SaveTemplates(ctx, templates); err != nil {
		return nil, fmt.Errorf("failed to save templates: %w", err)
	}

	return &DeleteTemplateOutput{}, nil
}
