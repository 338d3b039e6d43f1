package adapter

import (
	"context"

	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// LedgerRepository defines persistence for the four month-scoped collections.
//
// Loads of absent or malformed persisted content yield the collection's zero
// value rather than an error; persistence corruption must never crash the
// engine. Saves replace the whole collection for the month.
type LedgerRepository interface {
	// LoadBudgets returns the month's budgets, empty if none are stored.
	LoadBudgets(ctx context.Context, month valueobject.Month) ([]*entity.Budget, error)

	// SaveBudgets replaces the month's budget collection.
	SaveBudgets(ctx context.Context, month valueobject.Month, budgets []*entity.Budget) error

	// LoadExpenses returns the month's expenses, empty if none are stored.
	LoadExpenses(ctx context.Context, month valueobject.Month) ([]*entity.Expense, error)

	// SaveExpenses replaces the month's expense collection.
	SaveExpenses(ctx context.Context, month valueobject.Month, expenses []*entity.Expense) error

	// LoadNotes returns the month's notes, empty if none are stored.
	LoadNotes(ctx context.Context, month valueobject.Month) ([]*entity.Note, error)

	// SaveNotes replaces the month's note collection.
	SaveNotes(ctx context.Context, month valueobject.Month, notes []*entity.Note) error

	// LoadLimits returns the month's category limits, empty if none are stored.
	LoadLimits(ctx context.Context, month valueobject.Month) (entity.CategoryLimits, error)

	// SaveLimits replaces the month's category limits wholesale.
	SaveLimits(ctx context.Context, month valueobject.Month, limits entity.CategoryLimits) error

	// EnsureMonth lazily creates the month partition: if none of the four
	// month-scoped collections exist yet, an empty expense collection is
	// persisted so the month shows up in ListMonths.
	EnsureMonth(ctx context.Context, month valueobject.Month) error

	// ListMonths returns every month with at least one stored collection,
	// most recent first.
	ListMonths(ctx context.Context) ([]valueobject.Month, error)

	// DeleteMonth removes all four month-scoped collections. Global
	// collections, including the template application ledger, are untouched.
	DeleteMonth(ctx context.Context, month valueobject.Month) error
}
