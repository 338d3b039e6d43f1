package entity

import "github.com/google/uuid"

// Note is a free-text note inside one month partition.
type Note struct {
	ID   string
	Text string
}

// NewNote creates a new Note entity with a fresh ID.
func NewNote(text string) *Note {
	return &Note{
		ID:   uuid.NewString(),
		Text: text,
	}
}

// RemoveNoteByID returns the slice without the note carrying the given ID.
func RemoveNoteByID(notes []*Note, id string) []*Note {
	out := make([]*Note, 0, len(notes))
	for _, n := range notes {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// FindNoteByID returns the note with the given ID, or nil.
func FindNoteByID(notes []*Note, id string) *Note {
	for _, n := range notes {
		if n.ID == id {
			return n
		}
	}
	return nil
}
