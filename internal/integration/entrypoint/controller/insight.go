package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/insight"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// InsightController handles the AI insight endpoint.
type InsightController struct {
	getUseCase *insight.GetInsightsUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(getUseCase *insight.GetInsightsUseCase) *InsightController {
	return &InsightController{getUseCase: getUseCase}
}

// Generate handles POST /insights requests.
func (c *InsightController) Generate(ctx *gin.Context) {
	var req dto.InsightRequest
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

	output, err := c.getUseCase.Execute(ctx.Request.Context(), insight.GetInsightsInput{Month: m})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightResponse{Insights: output.HTML})
}
