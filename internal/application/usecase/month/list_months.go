package month

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// ListMonthsInput represents the input for month listing.
type ListMonthsInput struct{}

// ListMonthsOutput represents the output of month listing.
type ListMonthsOutput struct {
	// Months holds every month with stored data, most recent first.
	Months []valueobject.Month
}

// ListMonthsUseCase handles month listing logic.
type ListMonthsUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListMonthsUseCase creates a new ListMonthsUseCase instance.
func NewListMonthsUseCase(ledgerRepo adapter.LedgerRepository) *ListMonthsUseCase {
	return &ListMonthsUseCase{ledgerRepo: ledgerRepo}
}

// Execute returns the known months, most recent first.
func (uc *ListMonthsUseCase) Execute(ctx context.Context, _ ListMonthsInput) (*ListMonthsOutput, error) {
	months, err := uc.ledgerRepo.ListMonths(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list months: %w", err)
	}
	return &ListMonthsOutput{Months: months}, nil
}
