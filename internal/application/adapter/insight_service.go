package adapter

import (
	"context"

	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// InsightSnapshot carries the full financial snapshot of one month, passed
// by value to the external insight collaborator. The core never blocks on
// the exchange's result beyond the synchronous call.
type InsightSnapshot struct {
	Month     valueobject.Month
	Budgets   []*entity.Budget
	Expenses  []*entity.Expense
	Limits    entity.CategoryLimits
	Notes     []*entity.Note
	Templates []*entity.RecurringExpense
}

// InsightService generates a financial insight summary from a snapshot.
type InsightService interface {
	// IsAvailable checks if the service is configured.
	IsAvailable() bool

	// GenerateInsights returns an HTML bullet summary (<ul>/<li>/<b> markup
	// only). The core does not interpret the HTML.
	GenerateInsights(ctx context.Context, snapshot *InsightSnapshot) (string, error)
}
