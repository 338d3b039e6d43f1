package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/template"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// TemplateController handles recurring-expense template endpoints.
type TemplateController struct {
	addUseCase         *template.AddTemplateUseCase
	deleteUseCase      *template.DeleteTemplateUseCase
	togglePauseUseCase *template.TogglePauseTemplateUseCase
	listUseCase        *template.ListTemplatesUseCase
	applyUseCase       *template.ApplyTemplateUseCase
}

// NewTemplateController creates a new template controller instance.
func NewTemplateController(
	addUseCase *template.AddTemplateUseCase,
	deleteUseCase *template.DeleteTemplateUseCase,
	togglePauseUseCase *template.TogglePauseTemplateUseCase,
	listUseCase *template.ListTemplatesUseCase,
	applyUseCase *template.ApplyTemplateUseCase,
) *TemplateController {
	return &TemplateController{
		addUseCase:         addUseCase,
		deleteUseCase:      deleteUseCase,
		togglePauseUseCase: togglePauseUseCase,
		listUseCase:        listUseCase,
		applyUseCase:       applyUseCase,
	}
}

// List handles GET /templates requests.
func (c *TemplateController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), template.ListTemplatesInput{})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTemplateListResponse(output.Templates))
}

// Add handles POST /templates requests.
func (c *TemplateController) Add(ctx *gin.Context) {
	var req dto.AddTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), template.AddTemplateInput{
		Name:     req.Name,
		Amount:   req.Amount,
		Category: req.Category,
		Day:      req.Day,
		Hour:     req.Hour,
		Minute:   req.Minute,
		AmPm:     req.AmPm,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTemplateResponse(output.Template))
}

// Delete handles DELETE /templates/:id requests.
func (c *TemplateController) Delete(ctx *gin.Context) {
	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), template.DeleteTemplateInput{
		TemplateID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// TogglePause handles PATCH /templates/:id/pause requests.
func (c *TemplateController) TogglePause(ctx *gin.Context) {
	output, err := c.togglePauseUseCase.Execute(ctx.Request.Context(), template.TogglePauseTemplateInput{
		TemplateID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTemplateResponse(output.Template))
}

// Apply handles POST /templates/:id/apply requests. A duplicate instance on
// the resolved date is an informational outcome, not an error.
func (c *TemplateController) Apply(ctx *gin.Context) {
	var req dto.ApplyTemplateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	m, ok := parseMonthBody(ctx, req.Month)
	if !ok {
		return
	}

	output, err := c.applyUseCase.Execute(ctx.Request.Context(), template.ApplyTemplateInput{
		Month:      m,
		TemplateID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	response := dto.ApplyTemplateResponse{Added: output.Added}
	if output.Expense != nil {
		expense := dto.ToExpenseResponse(output.Expense)
		response.Expense = &expense
	}
	ctx.JSON(http.StatusOK, response)
}
