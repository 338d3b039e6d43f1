package note

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// ListNotesInput represents the input for note listing.
type ListNotesInput struct {
	Month valueobject.Month
}

// ListNotesOutput represents the output of note listing.
type ListNotesOutput struct {
	Notes []*entity.Note
}

// ListNotesUseCase handles note listing logic.
type ListNotesUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewListNotesUseCase creates a new ListNotesUseCase instance.
func NewListNotesUseCase(ledgerRepo adapter.LedgerRepository) *ListNotesUseCase {
	return &ListNotesUseCase{ledgerRepo: ledgerRepo}
}

// Execute returns the month's notes in insertion order.
func (uc *ListNotesUseCase) Execute(ctx context.Context, input ListNotesInput) (*ListNotesOutput, error) {
	notes, err := uc.ledgerRepo.LoadNotes(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	return &ListNotesOutput{Notes: notes}, nil
}
