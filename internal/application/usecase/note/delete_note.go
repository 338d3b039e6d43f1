package note

import (
	"context"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// DeleteNoteInput represents the input for note deletion.
type DeleteNoteInput struct {
	Month  valueobject.Month
	NoteID string
}

// DeleteNoteOutput represents the output of note deletion.
type DeleteNoteOutput struct{}

// DeleteNoteUseCase handles note deletion logic.
type DeleteNoteUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewDeleteNoteUseCase creates a new DeleteNoteUseCase instance.
func NewDeleteNoteUseCase(ledgerRepo adapter.LedgerRepository) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{ledgerRepo: ledgerRepo}
}

// Execute removes the note from the month's collection.
func (uc *DeleteNoteUseCase) Execute(ctx context.Context, input DeleteNoteInput) (*DeleteNoteOutput, error) {
	notes, err := uc.ledgerRepo.LoadNotes(ctx, input.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}

	if entity.FindNoteByID(notes, input.NoteID) == nil {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNoteNotFound,
			"note not found",
			domainerror.ErrNoteNotFound,
		)
	}

	notes = entity.RemoveNoteByID(notes, input.NoteID)
	if err := uc.ledgerRepo.SaveNotes(ctx, input.Month, notes); err != nil {
		return nil, fmt.Errorf("failed to save notes: %w", err)
	}

	return &DeleteNoteOutput{}, nil
}
