package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
	"github.com/spendcount/backend/internal/integration/persistence/model"
)

// templateRepository implements adapter.TemplateRepository over a KeyValueStore.
type templateRepository struct {
	store adapter.KeyValueStore
	keys  keyCodec
}

// NewTemplateRepository creates a new recurring template repository.
func NewTemplateRepository(store adapter.KeyValueStore, prefix string) adapter.TemplateRepository {
	return &templateRepository{
		store: store,
		keys:  newKeyCodec(prefix),
	}
}

// LoadTemplates returns all recurring templates, empty if none are stored.
func (r *templateRepository) LoadTemplates(ctx context.Context) ([]*entity.RecurringExpense, error) {
	models, err := loadCollection[[]model.RecurringExpenseModel](ctx, r.store, r.keys.global(kindRepeatedExpenses))
	if err != nil {
		return nil, err
	}
	return model.RecurringExpensesToEntities(models), nil
}

// SaveTemplates replaces the global template collection.
func (r *templateRepository) SaveTemplates(ctx context.Context, templates []*entity.RecurringExpense) error {
	key := r.keys.global(kindRepeatedExpenses)
	raw, err := json.Marshal(model.RecurringExpensesFromEntities(templates))
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// IsApplied reports whether bulk materialization already ran for the month.
func (r *templateRepository) IsApplied(ctx context.Context, month valueobject.Month) (bool, error) {
	applied, err := r.loadApplied(ctx)
	if err != nil {
		return false, err
	}
	return applied[month.String()], nil
}

// MarkApplied latches the month as materialized.
func (r *templateRepository) MarkApplied(ctx context.Context, month valueobject.Month) error {
	applied, err := r.loadApplied(ctx)
	if err != nil {
		return err
	}
	applied[month.String()] = true

	key := r.keys.global(kindRepeatedExpensesApplied)
	raw, err := json.Marshal(applied)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (r *templateRepository) loadApplied(ctx context.Context) (map[string]bool, error) {
	applied, err := loadCollection[map[string]bool](ctx, r.store, r.keys.global(kindRepeatedExpensesApplied))
	if err != nil {
		return nil, err
	}
	if applied == nil {
		applied = make(map[string]bool)
	}
	return applied, nil
}
