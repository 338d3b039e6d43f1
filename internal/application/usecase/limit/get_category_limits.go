package limit

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// GetCategoryLimitsInput represents the input for limits retrieval.
type GetCategoryLimitsInput struct {
	Month valueobject.Month
}

// GetCategoryLimitsOutput represents the output of limits retrieval.
type GetCategoryLimitsOutput struct {
	Limits entity.CategoryLimits
}

// GetCategoryLimitsUseCase handles category-limit retrieval.
type GetCategoryLimitsUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewGetCategoryLimitsUseCase creates a new GetCategoryLimitsUseCase instance.
func NewGetCategoryLimitsUseCase(ledgerRepo adapter.LedgerRepository) *GetCategoryLimitsUseCase {
	return &GetCategoryLimitsUseCase{ledgerRepo: ledgerRepo}
}

// Execute returns the month's category limits.
func (uc *GetCategoryLimitsUseCase) Execute(ctx context.Context, input GetCategoryLimitsInput) (*GetCategoryLimitsOutput, error) {
	limits, err := uc.ledgerRepo.LoadLimits(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load limits: %w", err)
	}
	return &GetCategoryLimitsOutput{Limits: limits}, nil
}
