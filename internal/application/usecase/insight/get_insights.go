// Package insight contains the AI insight use case.
package insight

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// GetInsightsInput represents the input for insight generation.
type GetInsightsInput struct {
	Month valueobject.Month
}

// GetInsightsOutput represents the output of insight generation.
type GetInsightsOutput struct {
	// HTML is the insight summary markup returned by the collaborator,
	// passed through untouched.
	HTML string
}

// GetInsightsUseCase assembles the month snapshot and hands it to the
// insight collaborator.
type GetInsightsUseCase struct {
	ledgerRepo     adapter.LedgerRepository
	templateRepo   adapter.TemplateRepository
	insightService adapter.InsightService
}

// NewGetInsightsUseCase creates a new GetInsightsUseCase instance.
func NewGetInsightsUseCase(
	ledgerRepo adapter.LedgerRepository,
	templateRepo adapter.TemplateRepository,
	insightService adapter.InsightService,
) *GetInsightsUseCase {
	return &GetInsightsUseCase{
		ledgerRepo:     ledgerRepo,
		templateRepo:   templateRepo,
		insightService: insightService,
	}
}

// Execute generates the insight summary for the month. Failures surface to
// the caller untouched; nothing is retried and no local state changes.
func (uc *GetInsightsUseCase) Execute(ctx context.Context, input GetInsightsInput) (*GetInsightsOutput, error) {
	if !uc.insightService.IsAvailable() {
		return nil, domainerror.NewAIError(
			domainerror.ErrCodeAIServiceUnavailable,
			"insight service is not configured",
			domainerror.ErrAIServiceUnavailable,
		)
	}

	snapshot, err := uc.buildSnapshot(ctx, input.Month)
	if err != nil {
		return nil, err
	}

	html, err := uc.insightService.GenerateInsights(ctx, snapshot)
	if err != nil {
		return nil, domainerror.NewAIError(
			domainerror.ErrCodeInsightGeneration,
			"failed to get insights",
			err,
		)
	}

	return &GetInsightsOutput{HTML: html}, nil
}

func (uc *GetInsightsUseCase) buildSnapshot(ctx context.Context, month valueobject.Month) (*adapter.InsightSnapshot, error) {
	budgets, err := uc.ledgerRepo.LoadBudgets(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	expenses, err := uc.ledgerRepo.LoadExpenses(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	limits, err := uc.ledgerRepo.LoadLimits(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load limits: %w", err)
	}
	notes, err := uc.ledgerRepo.LoadNotes(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	templates, err := uc.templateRepo.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return &adapter.InsightSnapshot{
		Month:     month,
		Budgets:   budgets,
		Expenses:  expenses,
		Limits:    limits,
		Notes:     notes,
		Templates: templates,
	}, nil
}
