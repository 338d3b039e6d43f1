package template

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
)

// ListTemplatesInput represents the input for template listing.
type ListTemplatesInput struct{}

// ListTemplatesOutput represents the output of template listing.
type ListTemplatesOutput struct {
	Templates []*entity.RecurringExpense
}

// ListTemplatesUseCase handles recurring template listing.
type ListTemplatesUseCase struct {
	templateRepo adapter.TemplateRepository
}

// NewListTemplatesUseCase creates a new ListTemplatesUseCase instance.
func NewListTemplatesUseCase(templateRepo adapter.TemplateRepository) *ListTemplatesUseCase {
	return &ListTemplatesUseCase{templateRepo: templateRepo}
}

// Execute returns the global templates in insertion order.
func (uc *ListTemplatesUseCase) Execute(ctx context.Context, _ ListTemplatesInput) (*ListTemplatesOutput, error) {
	templates, err := uc.templateRepo.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return &ListTemplatesOutput{Templates: templates}, nil
}
