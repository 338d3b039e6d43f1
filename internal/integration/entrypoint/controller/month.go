package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/dashboard"
	"github.com/spendcount/backend/internal/application/usecase/month"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// MonthController handles month lifecycle endpoints.
type MonthController struct {
	openUseCase      *month.OpenMonthUseCase
	listUseCase      *month.ListMonthsUseCase
	deleteUseCase    *month.DeleteMonthUseCase
	dashboardUseCase *dashboard.GetMonthDashboardUseCase
}

// NewMonthController creates a new month controller instance.
func NewMonthController(
	openUseCase *month.OpenMonthUseCase,
	listUseCase *month.ListMonthsUseCase,
	deleteUseCase *month.DeleteMonthUseCase,
	dashboardUseCase *dashboard.GetMonthDashboardUseCase,
) *MonthController {
	return &MonthController{
		openUseCase:      openUseCase,
		listUseCase:      listUseCase,
		deleteUseCase:    deleteUseCase,
		dashboardUseCase: dashboardUseCase,
	}
}

// List handles GET /months requests.
func (c *MonthController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), month.ListMonthsInput{})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMonthListResponse(output.Months))
}

// Open handles POST /months/:month/open requests. Opening a month lazily
// creates its collections, runs the one-shot template reconciliation and
// returns the month snapshot.
func (c *MonthController) Open(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	if _, err := c.openUseCase.Execute(ctx.Request.Context(), month.OpenMonthInput{Month: m}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthDashboardInput{Month: m})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(m, output))
}

// Delete handles DELETE /months/:month requests.
func (c *MonthController) Delete(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), month.DeleteMonthInput{Month: m}); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
