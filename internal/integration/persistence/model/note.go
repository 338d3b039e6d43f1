package model

import "github.com/spendcount/backend/internal/domain/entity"

// NoteModel is the persisted shape of one note.
type NoteModel struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ToEntity converts a NoteModel to a domain Note entity.
func (m *NoteModel) ToEntity() *entity.Note {
	return &entity.Note{
		ID:   m.ID,
		Text: m.Text,
	}
}

// NoteFromEntity creates a NoteModel from a domain Note entity.
func NoteFromEntity(n *entity.Note) *NoteModel {
	return &NoteModel{
		ID:   n.ID,
		Text: n.Text,
	}
}

// NotesToEntities converts a persisted note collection to entities.
func NotesToEntities(models []NoteModel) []*entity.Note {
	notes := make([]*entity.Note, len(models))
	for i := range models {
		notes[i] = models[i].ToEntity()
	}
	return notes
}

// NotesFromEntities converts a note collection to its persisted shape.
func NotesFromEntities(notes []*entity.Note) []NoteModel {
	models := make([]NoteModel, len(notes))
	for i, n := range notes {
		models[i] = *NoteFromEntity(n)
	}
	return models
}
