package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

func TestLedgerRepositoryRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewLedgerRepository(store, "test")
	month := valueobject.NewMonth(2026, time.August)

	budget := entity.NewBudget("Salary", 50000, entity.BudgetTypeIncome)
	require.NoError(t, repo.SaveBudgets(ctx, month, []*entity.Budget{budget}))

	budgets, err := repo.LoadBudgets(ctx, month)
	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, budget.ID, budgets[0].ID)
	assert.Equal(t, "Salary", budgets[0].Name)

	limits := entity.CategoryLimits{entity.CategoryBills: 3000}
	require.NoError(t, repo.SaveLimits(ctx, month, limits))
	loaded, err := repo.LoadLimits(ctx, month)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, loaded[entity.CategoryBills])
}

func TestLedgerRepositoryMonthIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewLedgerRepository(store, "test")
	aug := valueobject.NewMonth(2026, time.August)
	sep := valueobject.NewMonth(2026, time.September)

	rent := entity.NewExpense("Rent", 15000, entity.CategoryRent, "2026-08-01", "09", "00", entity.MeridiemAM)
	require.NoError(t, repo.SaveExpenses(ctx, aug, []*entity.Expense{rent}))
	require.NoError(t, repo.SaveExpenses(ctx, sep, []*entity.Expense{}))
	require.NoError(t, repo.DeleteMonth(ctx, sep))

	expenses, err := repo.LoadExpenses(ctx, aug)
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestLedgerRepositoryRecoversFromCorruption(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)

	t.Run("unparseable content loads as empty", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewLedgerRepository(store, "test")

		require.NoError(t, store.Set(ctx, "test-expenses-2026-08", "{not json"))

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("mistyped field discards the whole collection", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewLedgerRepository(store, "test")

		// The first element decodes cleanly before the second fails; none
		// of it may survive the load.
		require.NoError(t, store.Set(ctx, "test-expenses-2026-08",
			`[{"id":"a","name":"Rent","amount":15000},{"id":"b","name":"bad","amount":"oops"}]`))

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("mistyped limit discards the limits", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewLedgerRepository(store, "test")

		require.NoError(t, store.Set(ctx, "test-limits-2026-08", `{"Bills":"plenty"}`))

		limits, err := repo.LoadLimits(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, limits)
	})
}

func TestLedgerRepositoryListMonths(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewLedgerRepository(store, "test")

	jan := valueobject.NewMonth(2026, time.January)
	mar := valueobject.NewMonth(2026, time.March)

	// The same month appearing under several kinds is reported once.
	require.NoError(t, repo.SaveExpenses(ctx, jan, []*entity.Expense{}))
	require.NoError(t, repo.SaveNotes(ctx, jan, []*entity.Note{}))
	require.NoError(t, repo.SaveBudgets(ctx, mar, []*entity.Budget{}))

	// Global collections must not surface as months.
	templates := NewTemplateRepository(store, "test")
	require.NoError(t, templates.SaveTemplates(ctx, []*entity.RecurringExpense{}))

	months, err := repo.ListMonths(ctx)
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, "2026-03", months[0].String())
	assert.Equal(t, "2026-01", months[1].String())
}

func TestLedgerRepositoryEnsureMonth(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)

	t.Run("creates an empty expense collection", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewLedgerRepository(store, "test")

		require.NoError(t, repo.EnsureMonth(ctx, month))

		_, ok, err := store.Get(ctx, "test-expenses-2026-08")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("leaves existing collections alone", func(t *testing.T) {
		store := NewMemoryStore()
		repo := NewLedgerRepository(store, "test")

		note := entity.NewNote("call landlord")
		require.NoError(t, repo.SaveNotes(ctx, month, []*entity.Note{note}))
		require.NoError(t, repo.EnsureMonth(ctx, month))

		_, ok, err := store.Get(ctx, "test-expenses-2026-08")
		require.NoError(t, err)
		assert.False(t, ok, "a month with stored data must not grow an empty expense collection")
	})
}

func TestLedgerRepositoryDeleteMonth(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewLedgerRepository(store, "test")
	templates := NewTemplateRepository(store, "test")
	month := valueobject.NewMonth(2026, time.August)

	require.NoError(t, repo.SaveBudgets(ctx, month, []*entity.Budget{entity.NewBudget("Salary", 50000, entity.BudgetTypeIncome)}))
	require.NoError(t, repo.SaveNotes(ctx, month, []*entity.Note{entity.NewNote("note")}))
	rent := entity.NewRecurringExpense("Rent", 15000, entity.CategoryRent, 1, "09", "00", entity.MeridiemAM)
	require.NoError(t, templates.SaveTemplates(ctx, []*entity.RecurringExpense{rent}))
	require.NoError(t, templates.MarkApplied(ctx, month))

	require.NoError(t, repo.DeleteMonth(ctx, month))

	months, err := repo.ListMonths(ctx)
	require.NoError(t, err)
	assert.Empty(t, months)

	kept, err := templates.LoadTemplates(ctx)
	require.NoError(t, err)
	assert.Len(t, kept, 1, "templates are global and survive month deletion")

	applied, err := templates.IsApplied(ctx, month)
	require.NoError(t, err)
	assert.True(t, applied, "the applied latch survives month deletion")
}

func TestTemplateRepositoryAppliedLatch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewTemplateRepository(store, "test")
	aug := valueobject.NewMonth(2026, time.August)
	sep := valueobject.NewMonth(2026, time.September)

	applied, err := repo.IsApplied(ctx, aug)
	require.NoError(t, err)
	assert.False(t, applied)

	require.NoError(t, repo.MarkApplied(ctx, aug))

	applied, err = repo.IsApplied(ctx, aug)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.IsApplied(ctx, sep)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestTemplateRepositoryRecoversFromCorruption(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewTemplateRepository(store, "test")

	require.NoError(t, store.Set(ctx, "test-global-repeatedExpenses", "[{broken"))
	require.NoError(t, store.Set(ctx, "test-global-repeatedExpensesApplied", "{broken"))

	templates, err := repo.LoadTemplates(ctx)
	require.NoError(t, err)
	assert.Empty(t, templates)

	applied, err := repo.IsApplied(ctx, valueobject.NewMonth(2026, time.August))
	require.NoError(t, err)
	assert.False(t, applied)
}
