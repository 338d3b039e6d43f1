package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/note"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// NoteController handles note endpoints.
type NoteController struct {
	addUseCase    *note.AddNoteUseCase
	deleteUseCase *note.DeleteNoteUseCase
	listUseCase   *note.ListNotesUseCase
}

// NewNoteController creates a new note controller instance.
func NewNoteController(
	addUseCase *note.AddNoteUseCase,
	deleteUseCase *note.DeleteNoteUseCase,
	listUseCase *note.ListNotesUseCase,
) *NoteController {
	return &NoteController{
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /months/:month/notes requests.
func (c *NoteController) List(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), note.ListNotesInput{Month: m})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNoteListResponse(output.Notes))
}

// Add handles POST /months/:month/notes requests.
func (c *NoteController) Add(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	var req dto.AddNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), note.AddNoteInput{
		Month: m,
		Text:  req.Text,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToNoteResponse(output.Note))
}

// Delete handles DELETE /months/:month/notes/:id requests.
func (c *NoteController) Delete(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), note.DeleteNoteInput{
		Month:  m,
		NoteID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
