// Package note contains note-related use cases.
package note

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// AddNoteInput represents the input for note creation.
type AddNoteInput struct {
	Month valueobject.Month
	Text  string
}

// AddNoteOutput represents the output of note creation.
type AddNoteOutput struct {
	Note *entity.Note
}

// AddNoteUseCase handles note creation logic.
type AddNoteUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewAddNoteUseCase creates a new AddNoteUseCase instance.
func NewAddNoteUseCase(ledgerRepo adapter.LedgerRepository) *AddNoteUseCase {
	return &AddNoteUseCase{ledgerRepo: ledgerRepo}
}

// Execute performs the note creation.
func (uc *AddNoteUseCase) Execute(ctx context.Context, input AddNoteInput) (*AddNoteOutput, error) {
	if input.Text == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingText,
			"note text must not be empty",
			domainerror.ErrMissingText,
		)
	}

	notes, err := uc.ledgerRepo.LoadNotes(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	note := entity.NewNote(input.Text)
	notes = append(notes, note)

	if err := uc.ledgerRepo.SaveNotes(ctx, input.Month, notes); err != nil {
		return nil, fmt.Errorf("failed to save notes: %w", err)
	}

	return &AddNoteOutput{Note: note}, nil
}
