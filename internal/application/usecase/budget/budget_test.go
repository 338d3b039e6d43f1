package budget

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
	"github.com/spendcount/backend/internal/integration/persistence"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// failingStore rejects writes to keys containing deny, simulating a storage
// failure in the middle of a cascade.
type failingStore struct {
	*persistence.MemoryStore
	deny string
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if s.deny != "" && strings.Contains(key, s.deny) {
		return errors.New("store unavailable")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func newBudgetFixture(t *testing.T, clock adapter.Clock) (*AddBudgetUseCase, *DeleteBudgetUseCase, adapter.LedgerRepository) {
	t.Helper()
	store := persistence.NewMemoryStore()
	repo := persistence.NewLedgerRepository(store, "test")
	return NewAddBudgetUseCase(repo, clock), NewDeleteBudgetUseCase(repo), repo
}

func TestAddBudgetUseCase(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)
	clock := fixedClock{t: time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)}

	t.Run("income budgets have no linked expense", func(t *testing.T) {
		add, _, repo := newBudgetFixture(t, clock)

		output, err := add.Execute(ctx, AddBudgetInput{
			Month: month, Name: "Salary", Amount: 50000, Type: entity.BudgetTypeIncome,
		})
		require.NoError(t, err)
		assert.Nil(t, output.LinkedExpense)

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("debt budgets create a linked unpaid expense dated today", func(t *testing.T) {
		add, _, repo := newBudgetFixture(t, clock)

		output, err := add.Execute(ctx, AddBudgetInput{
			Month: month, Name: "Pay back Sam", Amount: 2000, Type: entity.BudgetTypeDebt,
		})
		require.NoError(t, err)
		require.NotNil(t, output.LinkedExpense)

		linked := output.LinkedExpense
		assert.Equal(t, output.Budget.ID, linked.BudgetID)
		assert.Equal(t, "Pay back Sam", linked.Name)
		assert.Equal(t, 2000.0, linked.Amount)
		assert.Equal(t, entity.CategoryOther, linked.Category)
		assert.Equal(t, "2026-08-15", linked.Date)
		assert.False(t, linked.Paid)

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Len(t, expenses, 1)
	})

	t.Run("linked expense falls back to the 1st for other months", func(t *testing.T) {
		add, _, _ := newBudgetFixture(t, clock)
		september := valueobject.NewMonth(2026, time.September)

		output, err := add.Execute(ctx, AddBudgetInput{
			Month: september, Name: "Loan from Kim", Amount: 500, Type: entity.BudgetTypeLoan,
		})
		require.NoError(t, err)
		require.NotNil(t, output.LinkedExpense)
		assert.Equal(t, "2026-09-01", output.LinkedExpense.Date)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		add, _, _ := newBudgetFixture(t, clock)

		_, err := add.Execute(ctx, AddBudgetInput{Month: month, Name: "", Amount: 10, Type: entity.BudgetTypeIncome})
		assert.True(t, errors.Is(err, domainerror.ErrMissingName))

		_, err = add.Execute(ctx, AddBudgetInput{Month: month, Name: "x", Amount: -1, Type: entity.BudgetTypeIncome})
		assert.True(t, errors.Is(err, domainerror.ErrInvalidAmount))

		_, err = add.Execute(ctx, AddBudgetInput{Month: month, Name: "x", Amount: 1, Type: "weekly"})
		assert.True(t, errors.Is(err, domainerror.ErrInvalidBudgetType))
	})
}

func TestDeleteBudgetUseCase(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)
	clock := fixedClock{t: time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)}

	t.Run("cascades to the linked unpaid expense", func(t *testing.T) {
		add, del, repo := newBudgetFixture(t, clock)

		created, err := add.Execute(ctx, AddBudgetInput{
			Month: month, Name: "Pay back Sam", Amount: 2000, Type: entity.BudgetTypeDebt,
		})
		require.NoError(t, err)

		output, err := del.Execute(ctx, DeleteBudgetInput{Month: month, BudgetID: created.Budget.ID})
		require.NoError(t, err)
		assert.Equal(t, created.LinkedExpense.ID, output.RemovedExpenseID)

		budgets, err := repo.LoadBudgets(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, budgets)

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})

	t.Run("does not cascade once the linked expense is paid", func(t *testing.T) {
		add, del, repo := newBudgetFixture(t, clock)

		created, err := add.Execute(ctx, AddBudgetInput{
			Month: month, Name: "Pay back Sam", Amount: 2000, Type: entity.BudgetTypeDebt,
		})
		require.NoError(t, err)

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		expenses[0].Paid = true
		require.NoError(t, repo.SaveExpenses(ctx, month, expenses))

		output, err := del.Execute(ctx, DeleteBudgetInput{Month: month, BudgetID: created.Budget.ID})
		require.NoError(t, err)
		assert.Empty(t, output.RemovedExpenseID)

		expenses, err = repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Len(t, expenses, 1, "paid expense stays as a spending record")
	})

	t.Run("interrupted cascade leaves the delete retryable", func(t *testing.T) {
		store := &failingStore{MemoryStore: persistence.NewMemoryStore()}
		repo := persistence.NewLedgerRepository(store, "test")
		add := NewAddBudgetUseCase(repo, clock)
		del := NewDeleteBudgetUseCase(repo)

		created, err := add.Execute(ctx, AddBudgetInput{
			Month: month, Name: "Pay back Sam", Amount: 2000, Type: entity.BudgetTypeDebt,
		})
		require.NoError(t, err)

		// The linked expense is removed first; the budget save then fails.
		store.deny = "budgets"
		_, err = del.Execute(ctx, DeleteBudgetInput{Month: month, BudgetID: created.Budget.ID})
		require.Error(t, err)

		budgets, err := repo.LoadBudgets(ctx, month)
		require.NoError(t, err)
		assert.Len(t, budgets, 1, "the budget survives a failed cascade")

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, expenses)

		store.deny = ""
		output, err := del.Execute(ctx, DeleteBudgetInput{Month: month, BudgetID: created.Budget.ID})
		require.NoError(t, err)
		assert.Empty(t, output.RemovedExpenseID)

		budgets, err = repo.LoadBudgets(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, budgets)
	})

	t.Run("unknown budget is a no-op error", func(t *testing.T) {
		add, del, repo := newBudgetFixture(t, clock)

		_, err := add.Execute(ctx, AddBudgetInput{
			Month: month, Name: "Salary", Amount: 50000, Type: entity.BudgetTypeIncome,
		})
		require.NoError(t, err)

		_, err = del.Execute(ctx, DeleteBudgetInput{Month: month, BudgetID: "missing"})
		assert.True(t, errors.Is(err, domainerror.ErrBudgetNotFound))

		budgets, err := repo.LoadBudgets(ctx, month)
		require.NoError(t, err)
		assert.Len(t, budgets, 1, "store is unchanged after a not-found mutation")
	})
}
