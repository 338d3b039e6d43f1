package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/limit"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// LimitController handles category-limit endpoints.
type LimitController struct {
	setUseCase *limit.SetCategoryLimitsUseCase
	getUseCase *limit.GetCategoryLimitsUseCase
}

// NewLimitController creates a new limit controller instance.
func NewLimitController(
	setUseCase *limit.SetCategoryLimitsUseCase,
	getUseCase *limit.GetCategoryLimitsUseCase,
) *LimitController {
	return &LimitController{
		setUseCase: setUseCase,
		getUseCase: getUseCase,
	}
}

// Get handles GET /months/:month/limits requests.
func (c *LimitController) Get(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), limit.GetCategoryLimitsInput{Month: m})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitsResponse(output.Limits))
}

// Set handles PUT /months/:month/limits requests. The body replaces the
// month's limits wholesale.
func (c *LimitController) Set(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	var req dto.SetLimitsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), limit.SetCategoryLimitsInput{
		Month:  m,
		Limits: req.Limits,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitsResponse(output.Limits))
}
