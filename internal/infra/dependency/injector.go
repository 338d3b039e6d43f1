// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/spendcount/backend/config"
	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/application/usecase/budget"
	"github.com/spendcount/backend/internal/application/usecase/dashboard"
	"github.com/spendcount/backend/internal/application/usecase/expense"
	"github.com/spendcount/backend/internal/application/usecase/insight"
	"github.com/spendcount/backend/internal/application/usecase/limit"
	"github.com/spendcount/backend/internal/application/usecase/month"
	"github.com/spendcount/backend/internal/application/usecase/note"
	"github.com/spendcount/backend/internal/application/usecase/receipt"
	"github.com/spendcount/backend/internal/application/usecase/template"
	"github.com/spendcount/backend/internal/infra/db"
	"github.com/spendcount/backend/internal/infra/server/router"
	"github.com/spendcount/backend/internal/integration/adapters"
	"github.com/spendcount/backend/internal/integration/entrypoint/controller"
	"github.com/spendcount/backend/internal/integration/entrypoint/middleware"
	"github.com/spendcount/backend/internal/integration/persistence"
	"github.com/spendcount/backend/internal/integration/persistence/model"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Router *router.Router

	// HealthCheck reports whether the storage backend is reachable.
	HealthCheck func() bool

	// Close releases storage resources. Safe to call when nothing was
	// allocated.
	Close func() error
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The storage backend is selected by the configured driver.
func NewInjector(cfg *config.Config) (*Injector, error) {
	store, healthCheck, closeFn, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}

	// Repositories
	ledgerRepo := persistence.NewLedgerRepository(store, cfg.Storage.KeyPrefix)
	templateRepo := persistence.NewTemplateRepository(store, cfg.Storage.KeyPrefix)

	// Adapters/services
	clock := adapters.NewSystemClock()
	insightService := adapters.NewGeminiInsightService(cfg.Gemini.APIKey, cfg.Gemini.InsightModel)
	receiptScanner := adapters.NewGeminiReceiptService(cfg.Gemini.APIKey, cfg.Gemini.ScanModel)

	// Budget use cases
	addBudgetUseCase := budget.NewAddBudgetUseCase(ledgerRepo, clock)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(ledgerRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(ledgerRepo)

	// Expense use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(ledgerRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(ledgerRepo)
	togglePaidUseCase := expense.NewToggleExpensePaidUseCase(ledgerRepo)
	listExpensesUseCase := expense.NewListExpensesUseCase(ledgerRepo)

	// Note use cases
	addNoteUseCase := note.NewAddNoteUseCase(ledgerRepo)
	deleteNoteUseCase := note.NewDeleteNoteUseCase(ledgerRepo)
	listNotesUseCase := note.NewListNotesUseCase(ledgerRepo)

	// Limit use cases
	setLimitsUseCase := limit.NewSetCategoryLimitsUseCase(ledgerRepo)
	getLimitsUseCase := limit.NewGetCategoryLimitsUseCase(ledgerRepo)

	// Template use cases
	addTemplateUseCase := template.NewAddTemplateUseCase(templateRepo)
	deleteTemplateUseCase := template.NewDeleteTemplateUseCase(templateRepo)
	togglePauseUseCase := template.NewTogglePauseTemplateUseCase(templateRepo)
	listTemplatesUseCase := template.NewListTemplatesUseCase(templateRepo)
	applyTemplateUseCase := template.NewApplyTemplateUseCase(templateRepo, ledgerRepo)

	// Month use cases
	openMonthUseCase := month.NewOpenMonthUseCase(ledgerRepo, templateRepo)
	listMonthsUseCase := month.NewListMonthsUseCase(ledgerRepo)
	deleteMonthUseCase := month.NewDeleteMonthUseCase(ledgerRepo)

	// Dashboard and AI use cases
	dashboardUseCase := dashboard.NewGetMonthDashboardUseCase(ledgerRepo)
	getInsightsUseCase := insight.NewGetInsightsUseCase(ledgerRepo, templateRepo, insightService)
	scanReceiptUseCase := receipt.NewScanReceiptUseCase(receiptScanner, addExpenseUseCase, clock)

	// Controllers
	healthController := controller.NewHealthController(healthCheck)
	monthController := controller.NewMonthController(openMonthUseCase, listMonthsUseCase, deleteMonthUseCase, dashboardUseCase)
	budgetController := controller.NewBudgetController(addBudgetUseCase, deleteBudgetUseCase, listBudgetsUseCase)
	expenseController := controller.NewExpenseController(addExpenseUseCase, deleteExpenseUseCase, togglePaidUseCase, listExpensesUseCase)
	noteController := controller.NewNoteController(addNoteUseCase, deleteNoteUseCase, listNotesUseCase)
	limitController := controller.NewLimitController(setLimitsUseCase, getLimitsUseCase)
	templateController := controller.NewTemplateController(addTemplateUseCase, deleteTemplateUseCase, togglePauseUseCase, listTemplatesUseCase, applyTemplateUseCase)
	dashboardController := controller.NewDashboardController(dashboardUseCase)
	insightController := controller.NewInsightController(getInsightsUseCase)
	receiptController := controller.NewReceiptController(scanReceiptUseCase)

	// Middleware
	aiRateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)

	r := router.NewRouter(
		healthController,
		monthController,
		budgetController,
		expenseController,
		noteController,
		limitController,
		templateController,
		dashboardController,
		insightController,
		receiptController,
		aiRateLimiter,
	)

	return &Injector{
		Config:      cfg,
		Router:      r,
		HealthCheck: healthCheck,
		Close:       closeFn,
	}, nil
}

// buildStore creates the key-value store for the configured driver.
func buildStore(cfg *config.Config) (adapter.KeyValueStore, func() bool, func() error, error) {
	switch cfg.Storage.Driver {
	case "memory":
		return persistence.NewMemoryStore(),
			func() bool { return true },
			func() error { return nil },
			nil

	case "sqlite":
		database, err := db.NewSQLiteConnection(cfg.Database.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(&model.LedgerRecordModel{}); err != nil {
			return nil, nil, nil, err
		}
		return persistence.NewGormStore(database.DB()), database.HealthCheck, database.Close, nil

	case "postgres":
		database, err := db.NewPostgresConnection(&cfg.Database)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(&model.LedgerRecordModel{}); err != nil {
			return nil, nil, nil, err
		}
		return persistence.NewGormStore(database.DB()), database.HealthCheck, database.Close, nil

	case "redis":
		client, err := db.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, nil, nil, err
		}
		healthCheck := func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return client.Ping(ctx).Err() == nil
		}
		return persistence.NewRedisStore(client), healthCheck, client.Close, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
