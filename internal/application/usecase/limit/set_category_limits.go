// Package limit contains category-limit use cases.
package limit

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// SetCategoryLimitsInput represents the input for replacing a month's limits.
type SetCategoryLimitsInput struct {
	Month valueobject.Month

	// Limits maps category labels to thresholds. The map replaces the
	// month's limits wholesale; an absent category has no limit.
	Limits map[string]float64
}

// SetCategoryLimitsOutput represents the output of the limits replacement.
type SetCategoryLimitsOutput struct {
	Limits entity.CategoryLimits
}

// SetCategoryLimitsUseCase handles category-limit replacement logic.
type SetCategoryLimitsUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewSetCategoryLimitsUseCase creates a new SetCategoryLimitsUseCase instance.
func NewSetCategoryLimitsUseCase(ledgerRepo adapter.LedgerRepository) *SetCategoryLimitsUseCase {
	return &SetCategoryLimitsUseCase{ledgerRepo: ledgerRepo}
}

// Execute validates and persists the month's category limits. Every key must
// be a known category and every threshold strictly positive.
func (uc *SetCategoryLimitsUseCase) Execute(ctx context.Context, input SetCategoryLimitsInput) (*SetCategoryLimitsOutput, error) {
	limits := make(entity.CategoryLimits, len(input.Limits))
	for label, threshold := range input.Limits {
		if !entity.IsValidCategory(label) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidCategory,
				fmt.Sprintf("unknown category %q", label),
				domainerror.ErrInvalidCategory,
			)
		}
		if threshold <= 0 {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeInvalidLimit,
				fmt.Sprintf("limit for category %q must be greater than zero", label),
				domainerror.ErrInvalidLimit,
			)
		}
		limits[entity.Category(label)] = threshold
	}

	if err := uc.ledgerRepo.SaveLimits(ctx, input.Month, limits); err != nil {
		return nil, fmt.Errorf("failed to save limits: %w", err)
	}

	return &SetCategoryLimitsOutput{Limits: limits}, nil
}
