package month

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
	"github.com/spendcount/backend/internal/integration/persistence"
)

func newMonthFixture(t *testing.T) (*OpenMonthUseCase, *DeleteMonthUseCase, *ListMonthsUseCase, adapter.LedgerRepository, adapter.TemplateRepository) {
	t.Helper()
	store := persistence.NewMemoryStore()
	ledgerRepo := persistence.NewLedgerRepository(store, "test")
	templateRepo := persistence.NewTemplateRepository(store, "test")
	return NewOpenMonthUseCase(ledgerRepo, templateRepo),
		NewDeleteMonthUseCase(ledgerRepo),
		NewListMonthsUseCase(ledgerRepo),
		ledgerRepo,
		templateRepo
}

func TestOpenMonthUseCase(t *testing.T) {
	ctx := context.Background()
	feb := valueobject.NewMonth(2026, time.February)

	t.Run("materializes templates exactly once", func(t *testing.T) {
		open, _, _, ledgerRepo, templateRepo := newMonthFixture(t)

		rent := entity.NewRecurringExpense("Rent", 15000, entity.CategoryRent, 31, "09", "00", entity.MeridiemAM)
		require.NoError(t, templateRepo.SaveTemplates(ctx, []*entity.RecurringExpense{rent}))

		output, err := open.Execute(ctx, OpenMonthInput{Month: feb})
		require.NoError(t, err)
		assert.True(t, output.Reconciled)
		assert.Equal(t, 1, output.Added)

		expenses, err := ledgerRepo.LoadExpenses(ctx, feb)
		require.NoError(t, err)
		require.Len(t, expenses, 1)
		assert.Equal(t, "2026-02-28", expenses[0].Date)

		// Reopening is latched.
		output, err = open.Execute(ctx, OpenMonthInput{Month: feb})
		require.NoError(t, err)
		assert.False(t, output.Reconciled)
		assert.Equal(t, 0, output.Added)
	})

	t.Run("latch survives month deletion", func(t *testing.T) {
		open, del, _, ledgerRepo, templateRepo := newMonthFixture(t)

		rent := entity.NewRecurringExpense("Rent", 15000, entity.CategoryRent, 1, "09", "00", entity.MeridiemAM)
		require.NoError(t, templateRepo.SaveTemplates(ctx, []*entity.RecurringExpense{rent}))

		_, err := open.Execute(ctx, OpenMonthInput{Month: feb})
		require.NoError(t, err)

		_, err = del.Execute(ctx, DeleteMonthInput{Month: feb})
		require.NoError(t, err)

		output, err := open.Execute(ctx, OpenMonthInput{Month: feb})
		require.NoError(t, err)
		assert.False(t, output.Reconciled, "reopening a deleted month must not resurrect recurring expenses")

		expenses, err := ledgerRepo.LoadExpenses(ctx, feb)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("latches even when no template produced an expense", func(t *testing.T) {
		open, _, _, _, templateRepo := newMonthFixture(t)

		paused := entity.NewRecurringExpense("Gym", 800, entity.CategorySportsFitness, 5, "06", "30", entity.MeridiemAM)
		paused.IsPaused = true
		require.NoError(t, templateRepo.SaveTemplates(ctx, []*entity.RecurringExpense{paused}))

		output, err := open.Execute(ctx, OpenMonthInput{Month: feb})
		require.NoError(t, err)
		assert.True(t, output.Reconciled)
		assert.Equal(t, 0, output.Added)

		applied, err := templateRepo.IsApplied(ctx, feb)
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("opening makes the month listable", func(t *testing.T) {
		open, _, list, _, _ := newMonthFixture(t)

		_, err := open.Execute(ctx, OpenMonthInput{Month: feb})
		require.NoError(t, err)

		output, err := list.Execute(ctx, ListMonthsInput{})
		require.NoError(t, err)
		require.Len(t, output.Months, 1)
		assert.Equal(t, "2026-02", output.Months[0].String())
	})
}

func TestListMonthsOrdering(t *testing.T) {
	ctx := context.Background()
	open, _, list, _, _ := newMonthFixture(t)

	for _, m := range []valueobject.Month{
		valueobject.NewMonth(2026, time.January),
		valueobject.NewMonth(2026, time.March),
		valueobject.NewMonth(2025, time.December),
	} {
		_, err := open.Execute(ctx, OpenMonthInput{Month: m})
		require.NoError(t, err)
	}

	output, err := list.Execute(ctx, ListMonthsInput{})
	require.NoError(t, err)
	require.Len(t, output.Months, 3)
	assert.Equal(t, "2026-03", output.Months[0].String())
	assert.Equal(t, "2026-01", output.Months[1].String())
	assert.Equal(t, "2025-12", output.Months[2].String())
}
