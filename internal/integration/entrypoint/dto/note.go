package dto

import "github.com/spendcount/backend/internal/domain/entity"

// AddNoteRequest represents the request body for note creation.
type AddNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

// NoteResponse represents a single note in API responses.
type NoteResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// NoteListResponse represents the response for listing notes.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// ToNoteResponse converts a domain Note entity to a NoteResponse DTO.
func ToNoteResponse(n *entity.Note) NoteResponse {
	return NoteResponse{
		ID:   n.ID,
		Text: n.Text,
	}
}

// ToNoteListResponse converts note entities to a NoteListResponse.
func ToNoteListResponse(notes []*entity.Note) NoteListResponse {
	out := make([]NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = ToNoteResponse(n)
	}
	return NoteListResponse{Notes: out}
}
