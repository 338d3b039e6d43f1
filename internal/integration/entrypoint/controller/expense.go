package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/expense"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addUseCase        *expense.AddExpenseUseCase
	deleteUseCase     *expense.DeleteExpenseUseCase
	togglePaidUseCase *expense.ToggleExpensePaidUseCase
	listUseCase       *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addUseCase *expense.AddExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	togglePaidUseCase *expense.ToggleExpensePaidUseCase,
	listUseCase *expense.ListExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		addUseCase:        addUseCase,
		deleteUseCase:     deleteUseCase,
		togglePaidUseCase: togglePaidUseCase,
		listUseCase:       listUseCase,
	}
}

// List handles GET /months/:month/expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{Month: m})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Upcoming: dto.ToExpenseResponses(output.Upcoming),
		Paid:     dto.ToExpenseResponses(output.Paid),
	})
}

// Add handles POST /months/:month/expenses requests.
func (c *ExpenseController) Add(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), expense.AddExpenseInput{
		Month:    m,
		Name:     req.Name,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Hour:     req.Hour,
		Minute:   req.Minute,
		AmPm:     req.AmPm,
		Paid:     req.Paid,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /months/:month/expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		Month:     m,
		ExpenseID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// TogglePaid handles PATCH /months/:month/expenses/:id/paid requests.
func (c *ExpenseController) TogglePaid(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.togglePaidUseCase.Execute(ctx.Request.Context(), expense.ToggleExpensePaidInput{
		Month:     m,
		ExpenseID: ctx.Param("id"),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}
