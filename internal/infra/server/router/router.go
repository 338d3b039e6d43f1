// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/integration/entrypoint/controller"
	"github.com/spendcount/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	monthController     *controller.MonthController
	budgetController    *controller.BudgetController
	expenseController   *controller.ExpenseController
	noteController      *controller.NoteController
	limitController     *controller.LimitController
	templateController  *controller.TemplateController
	dashboardController *controller.DashboardController
	insightController   *controller.InsightController
	receiptController   *controller.ReceiptController
	aiRateLimiter       *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	monthController *controller.MonthController,
	budgetController *controller.BudgetController,
	expenseController *controller.ExpenseController,
	noteController *controller.NoteController,
	limitController *controller.LimitController,
	templateController *controller.TemplateController,
	dashboardController *controller.DashboardController,
	insightController *controller.InsightController,
	receiptController *controller.ReceiptController,
	aiRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:    healthController,
		monthController:     monthController,
		budgetController:    budgetController,
		expenseController:   expenseController,
		noteController:      noteController,
		limitController:     limitController,
		templateController:  templateController,
		dashboardController: dashboardController,
		insightController:   insightController,
		receiptController:   receiptController,
		aiRateLimiter:       aiRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Month lifecycle routes
		v1.GET("/months", r.monthController.List)
		v1.POST("/months/:month/open", r.monthController.Open)
		v1.DELETE("/months/:month", r.monthController.Delete)

		// Month-scoped collection routes
		months := v1.Group("/months/:month")
		{
			months.GET("/budgets", r.budgetController.List)
			months.POST("/budgets", r.budgetController.Add)
			months.DELETE("/budgets/:id", r.budgetController.Delete)

			months.GET("/expenses", r.expenseController.List)
			months.POST("/expenses", r.expenseController.Add)
			months.DELETE("/expenses/:id", r.expenseController.Delete)
			months.PATCH("/expenses/:id/paid", r.expenseController.TogglePaid)

			months.GET("/notes", r.noteController.List)
			months.POST("/notes", r.noteController.Add)
			months.DELETE("/notes/:id", r.noteController.Delete)

			months.GET("/limits", r.limitController.Get)
			months.PUT("/limits", r.limitController.Set)

			months.GET("/dashboard", r.dashboardController.Get)
		}

		// Global recurring template routes
		templates := v1.Group("/templates")
		{
			templates.GET("", r.templateController.List)
			templates.POST("", r.templateController.Add)
			templates.DELETE("/:id", r.templateController.Delete)
			templates.PATCH("/:id/pause", r.templateController.TogglePause)
			templates.POST("/:id/apply", r.templateController.Apply)
		}

		// AI collaborator routes (rate limited; they call a metered service)
		if r.aiRateLimiter != nil {
			v1.POST("/insights", r.aiRateLimiter.Middleware(), r.insightController.Generate)
			v1.POST("/receipts/scan", r.aiRateLimiter.Middleware(), r.receiptController.Scan)
		} else {
			v1.POST("/insights", r.insightController.Generate)
			v1.POST("/receipts/scan", r.receiptController.Scan)
		}
	}
}
