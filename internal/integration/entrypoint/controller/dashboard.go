package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/dashboard"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the month dashboard endpoint.
type DashboardController struct {
	getUseCase *dashboard.GetMonthDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getUseCase *dashboard.GetMonthDashboardUseCase) *DashboardController {
	return &DashboardController{getUseCase: getUseCase}
}

// Get handles GET /months/:month/dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	m, ok := parseMonthParam(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetMonthDashboardInput{Month: m})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(m, output))
}
