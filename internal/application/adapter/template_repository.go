package adapter

import (
	"context"

	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// TemplateRepository defines persistence for the global recurring-expense
// templates and the per-month application ledger (the one-shot latch that
// records whether bulk materialization already ran for a month).
type TemplateRepository interface {
	// LoadTemplates returns all recurring templates, empty if none are stored.
	LoadTemplates(ctx context.Context) ([]*entity.RecurringExpense, error)

	// SaveTemplates replaces the global template collection.
	SaveTemplates(ctx context.Context, templates []*entity.RecurringExpense) error

	// IsApplied reports whether bulk materialization already ran for the month.
	IsApplied(ctx context.Context, month valueobject.Month) (bool, error)

	// MarkApplied latches the month as materialized. The latch survives
	// month deletion.
	MarkApplied(ctx context.Context, month valueobject.Month) error
}
