package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
	"github.com/spendcount/backend/internal/integration/persistence/model"
)

// ledgerRepository implements adapter.LedgerRepository over a KeyValueStore.
type ledgerRepository struct {
	store adapter.KeyValueStore
	keys  keyCodec
}

// NewLedgerRepository creates a new ledger repository over the given store.
func NewLedgerRepository(store adapter.KeyValueStore, prefix string) adapter.LedgerRepository {
	return &ledgerRepository{
		store: store,
		keys:  newKeyCodec(prefix),
	}
}

// loadCollection reads the JSON collection under key. Absent keys and
// malformed stored content both yield the zero value: persistence corruption
// is recovered locally, never propagated. A decode error discards the whole
// collection, including any elements decoded before the error.
func loadCollection[T any](ctx context.Context, store adapter.KeyValueStore, key string) (T, error) {
	var out T
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return out, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		slog.Warn("Discarding malformed persisted collection", "key", key, "error", err)
		var zero T
		return zero, nil
	}
	return out, nil
}

func (r *ledgerRepository) saveJSON(ctx context.Context, key string, in any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// LoadBudgets returns the month's budgets, empty if none are stored.
func (r *ledgerRepository) LoadBudgets(ctx context.Context, month valueobject.Month) ([]*entity.Budget, error) {
	models, err := loadCollection[[]model.BudgetModel](ctx, r.store, r.keys.collection(kindBudgets, month))
	if err != nil {
		return nil, err
	}
	return model.BudgetsToEntities(models), nil
}

// SaveBudgets replaces the month's budget collection.
func (r *ledgerRepository) SaveBudgets(ctx context.Context, month valueobject.Month, budgets []*entity.Budget) error {
	return r.saveJSON(ctx, r.keys.collection(kindBudgets, month), model.BudgetsFromEntities(budgets))
}

// LoadExpenses returns the month's expenses, empty if none are stored.
func (r *ledgerRepository) LoadExpenses(ctx context.Context, month valueobject.Month) ([]*entity.Expense, error) {
	models, err := loadCollection[[]model.ExpenseModel](ctx, r.store, r.keys.collection(kindExpenses, month))
	if err != nil {
		return nil, err
	}
	return model.ExpensesToEntities(models), nil
}

// SaveExpenses replaces the month's expense collection.
func (r *ledgerRepository) SaveExpenses(ctx context.Context, month valueobject.Month, expenses []*entity.Expense) error {
	return r.saveJSON(ctx, r.keys.collection(kindExpenses, month), model.ExpensesFromEntities(expenses))
}

// LoadNotes returns the month's notes, empty if none are stored.
func (r *ledgerRepository) LoadNotes(ctx context.Context, month valueobject.Month) ([]*entity.Note, error) {
	models, err := loadCollection[[]model.NoteModel](ctx, r.store, r.keys.collection(kindNotes, month))
	if err != nil {
		return nil, err
	}
	return model.NotesToEntities(models), nil
}

// SaveNotes replaces the month's note collection.
func (r *ledgerRepository) SaveNotes(ctx context.Context, month valueobject.Month, notes []*entity.Note) error {
	return r.saveJSON(ctx, r.keys.collection(kindNotes, month), model.NotesFromEntities(notes))
}

// LoadLimits returns the month's category limits, empty if none are stored.
func (r *ledgerRepository) LoadLimits(ctx context.Context, month valueobject.Month) (entity.CategoryLimits, error) {
	limits, err := loadCollection[map[string]float64](ctx, r.store, r.keys.collection(kindLimits, month))
	if err != nil {
		return nil, err
	}
	out := make(entity.CategoryLimits, len(limits))
	for category, limit := range limits {
		out[entity.Category(category)] = limit
	}
	return out, nil
}

// SaveLimits replaces the month's category limits wholesale.
func (r *ledgerRepository) SaveLimits(ctx context.Context, month valueobject.Month, limits entity.CategoryLimits) error {
	models := make(map[string]float64, len(limits))
	for category, limit := range limits {
		models[string(category)] = limit
	}
	return r.saveJSON(ctx, r.keys.collection(kindLimits, month), models)
}

// EnsureMonth persists an empty expense collection when the month has no
// stored collections yet, so the month shows up in ListMonths.
func (r *ledgerRepository) EnsureMonth(ctx context.Context, month valueobject.Month) error {
	for _, kind := range monthKinds {
		key := r.keys.collection(kind, month)
		_, ok, err := r.store.Get(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if ok {
			return nil
		}
	}
	return r.SaveExpenses(ctx, month, []*entity.Expense{})
}

// ListMonths scans all persisted keys, extracts distinct month suffixes
// across the four month-scoped kinds and returns them most recent first.
func (r *ledgerRepository) ListMonths(ctx context.Context) ([]valueobject.Month, error) {
	keys, err := r.store.Keys(ctx, r.keys.prefix+"-")
	if err != nil {
		return nil, fmt.Errorf("failed to scan keys: %w", err)
	}

	seen := make(map[string]valueobject.Month)
	for _, key := range keys {
		for _, kind := range monthKinds {
			suffix, ok := r.keys.monthSuffix(key, kind)
			if !ok {
				continue
			}
			month, err := valueobject.ParseMonth(suffix)
			if err != nil {
				slog.Warn("Skipping key with malformed month suffix", "key", key)
				continue
			}
			seen[month.String()] = month
		}
	}

	months := make([]valueobject.Month, 0, len(seen))
	for _, month := range seen {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[j].Before(months[i])
	})
	return months, nil
}

// DeleteMonth removes all four month-scoped collections. The template
// application ledger is a global collection and is left untouched.
func (r *ledgerRepository) DeleteMonth(ctx context.Context, month valueobject.Month) error {
	keys := make([]string, len(monthKinds))
	for i, kind := range monthKinds {
		keys[i] = r.keys.collection(kind, month)
	}
	if err := r.store.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to delete month %s: %w", month, err)
	}
	return nil
}
