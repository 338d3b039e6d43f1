package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/budget"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	addUseCase    *budget.AddBudgetUseCase
	deleteUseCase *budget.DeleteBudgetUseCase
	listUseCase   *budget.ListBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	addUseCase *budget.AddBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /months/:month/budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{Month: m})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Add handles POST /months/:month/budgets requests.
func (c *BudgetController) Add(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	var req dto.AddBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), budget.AddBudgetInput{
		Month:  m,
		Name:   req.Name,
		Amount: req.Amount,
		Type:   entity.BudgetType(req.Type),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	response := dto.AddBudgetResponse{Budget: dto.ToBudgetResponse(output.Budget)}
	if output.LinkedExpense != nil {
		linked := dto.ToExpenseResponse(output.LinkedExpense)
		response.LinkedExpense = &linked
	}
	ctx.JSON(http.StatusCreated, response)
}

// Delete handles DELETE /months/:month/budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		Month:    m,
		BudgetID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
