package expense

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

func newExpenseFixture(t *testing.T) (adapter.LedgerRepository, *AddExpenseUseCase) {
	t.Helper()
	store := persistence.NewMemoryStore()
	repo := persistence.NewLedgerRepository(store, "test")
	return repo, NewAddExpenseUseCase(repo)
}

func TestAddExpenseUseCase(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)

	t.Run("creates an expense with a normalized category", func(t *testing.T) {
		repo, add := newExpenseFixture(t)

		output, err := add.Execute(ctx, AddExpenseInput{
			Month: month, Name: "Coffee", Amount: 120, Category: "Cafe",
			Date: "2026-08-03", Hour: "8", Minute: "15", AmPm: "AM",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.CategoryOther, output.Expense.Category)
		assert.Equal(t, "08", output.Expense.Hour, "hour is zero padded")
		assert.Equal(t, "15", output.Expense.Minute)
		assert.False(t, output.Expense.Paid)

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Len(t, expenses, 1)
	})

	t.Run("accepts dates outside the owning month", func(t *testing.T) {
		_, add := newExpenseFixture(t)

		output, err := add.Execute(ctx, AddExpenseInput{
			Month: month, Name: "Deposit", Amount: 100, Category: "Other",
			Date: "2026-09-01", Hour: "12", Minute: "00", AmPm: "PM",
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-09-01", output.Expense.Date)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, add := newExpenseFixture(t)

		cases := []struct {
			name  string
			input AddExpenseInput
			want  error
		}{
			{"empty name", AddExpenseInput{Month: month, Amount: 1, Category: "Other", Date: "2026-08-01", Hour: "12", Minute: "00", AmPm: "PM"}, domainerror.ErrMissingName},
			{"negative amount", AddExpenseInput{Month: month, Name: "x", Amount: -5, Category: "Other", Date: "2026-08-01", Hour: "12", Minute: "00", AmPm: "PM"}, domainerror.ErrInvalidAmount},
			{"malformed date", AddExpenseInput{Month: month, Name: "x", Amount: 1, Category: "Other", Date: "03-08-2026", Hour: "12", Minute: "00", AmPm: "PM"}, domainerror.ErrInvalidDate},
			{"impossible date", AddExpenseInput{Month: month, Name: "x", Amount: 1, Category: "Other", Date: "2026-02-30", Hour: "12", Minute: "00", AmPm: "PM"}, domainerror.ErrInvalidDate},
			{"hour out of range", AddExpenseInput{Month: month, Name: "x", Amount: 1, Category: "Other", Date: "2026-08-01", Hour: "13", Minute: "00", AmPm: "PM"}, domainerror.ErrInvalidTime},
			{"hour zero", AddExpenseInput{Month: month, Name: "x", Amount: 1, Category: "Other", Date: "2026-08-01", Hour: "0", Minute: "00", AmPm: "PM"}, domainerror.ErrInvalidTime},
			{"minute off the grid", AddExpenseInput{Month: month, Name: "x", Amount: 1, Category: "Other", Date: "2026-08-01", Hour: "12", Minute: "07", AmPm: "PM"}, domainerror.ErrInvalidTime},
			{"bad meridiem", AddExpenseInput{Month: month, Name: "x", Amount: 1, Category: "Other", Date: "2026-08-01", Hour: "12", Minute: "00", AmPm: "pm"}, domainerror.ErrInvalidTime},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := add.Execute(ctx, tc.input)
				assert.True(t, errors.Is(err, tc.want))
			})
		}
	})
}

func TestToggleExpensePaidUseCase(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)
	repo, add := newExpenseFixture(t)
	toggle := NewToggleExpensePaidUseCase(repo)

	created, err := add.Execute(ctx, AddExpenseInput{
		Month: month, Name: "Rent", Amount: 15000, Category: "Rent",
		Date: "2026-08-28", Hour: "09", Minute: "00", AmPm: "AM",
	})
	require.NoError(t, err)

	output, err := toggle.Execute(ctx, ToggleExpensePaidInput{Month: month, ExpenseID: created.Expense.ID})
	require.NoError(t, err)
	assert.True(t, output.Expense.Paid)

	output, err = toggle.Execute(ctx, ToggleExpensePaidInput{Month: month, ExpenseID: created.Expense.ID})
	require.NoError(t, err)
	assert.False(t, output.Expense.Paid)

	_, err = toggle.Execute(ctx, ToggleExpensePaidInput{Month: month, ExpenseID: "missing"})
	assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))
}

func TestDeleteExpenseUseCase(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)

	t.Run("cascades to the linked budget", func(t *testing.T) {
		repo, _ := newExpenseFixture(t)
		del := NewDeleteExpenseUseCase(repo)

		budget := entity.NewBudget("Pay back Sam", 2000, entity.BudgetTypeDebt)
		require.NoError(t, repo.SaveBudgets(ctx, month, []*entity.Budget{budget}))

		linked := entity.NewExpense("Pay back Sam", 2000, entity.CategoryOther, "2026-08-15", "12", "00", entity.MeridiemPM)
		linked.BudgetID = budget.ID
		require.NoError(t, repo.SaveExpenses(ctx, month, []*entity.Expense{linked}))

		output, err := del.Execute(ctx, DeleteExpenseInput{Month: month, ExpenseID: linked.ID})
		require.NoError(t, err)
		assert.Equal(t, budget.ID, output.RemovedBudgetID)

		budgets, err := repo.LoadBudgets(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, budgets)
	})

	t.Run("plain expenses delete without side effects", func(t *testing.T) {
		repo, add := newExpenseFixture(t)
		del := NewDeleteExpenseUseCase(repo)

		created, err := add.Execute(ctx, AddExpenseInput{
			Month: month, Name: "Coffee", Amount: 120, Category: "Other",
			Date: "2026-08-03", Hour: "08", Minute: "15", AmPm: "AM",
		})
		require.NoError(t, err)

		output, err := del.Execute(ctx, DeleteExpenseInput{Month: month, ExpenseID: created.Expense.ID})
		require.NoError(t, err)
		assert.Empty(t, output.RemovedBudgetID)
	})

	t.Run("unknown expense is a no-op error", func(t *testing.T) {
		repo, _ := newExpenseFixture(t)
		del := NewDeleteExpenseUseCase(repo)

		_, err := del.Execute(ctx, DeleteExpenseInput{Month: month, ExpenseID: "missing"})
		assert.True(t, errors.Is(err, domainerror.ErrExpenseNotFound))
	})

	t.Run("interrupted cascade leaves the delete retryable", func(t *testing.T) {
		store := &failingStore{MemoryStore: persistence.NewMemoryStore()}
		repo := persistence.NewLedgerRepository(store, "test")
		del := NewDeleteExpenseUseCase(repo)

		budget := entity.NewBudget("Pay back Sam", 2000, entity.BudgetTypeDebt)
		require.NoError(t, repo.SaveBudgets(ctx, month, []*entity.Budget{budget}))

		linked := entity.NewExpense("Pay back Sam", 2000, entity.CategoryOther, "2026-08-15", "12", "00", entity.MeridiemPM)
		linked.BudgetID = budget.ID
		require.NoError(t, repo.SaveExpenses(ctx, month, []*entity.Expense{linked}))

		// The linked budget is removed first; the expense save then fails.
		store.deny = "expenses"
		_, err := del.Execute(ctx, DeleteExpenseInput{Month: month, ExpenseID: linked.ID})
		require.Error(t, err)

		expenses, err := repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Len(t, expenses, 1, "the expense survives a failed cascade")

		budgets, err := repo.LoadBudgets(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, budgets)

		store.deny = ""
		output, err := del.Execute(ctx, DeleteExpenseInput{Month: month, ExpenseID: linked.ID})
		require.NoError(t, err)
		assert.Empty(t, output.RemovedBudgetID)

		expenses, err = repo.LoadExpenses(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, expenses)
	})
}

func TestListExpensesUseCase(t *testing.T) {
	ctx := context.Background()
	month := valueobject.NewMonth(2026, time.August)
	repo, _ := newExpenseFixture(t)
	list := NewListExpensesUseCase(repo)

	paidEarly := entity.NewExpense("Groceries", 900, entity.CategoryFoodGroceries, "2026-08-02", "10", "00", entity.MeridiemAM)
	paidEarly.Paid = true
	paidLate := entity.NewExpense("Dinner", 600, entity.CategoryHangouts, "2026-08-20", "08", "00", entity.MeridiemPM)
	paidLate.Paid = true
	dueLate := entity.NewExpense("Rent", 15000, entity.CategoryRent, "2026-08-28", "09", "00", entity.MeridiemAM)
	dueSoon := entity.NewExpense("Internet", 700, entity.CategoryBills, "2026-08-05", "09", "00", entity.MeridiemAM)

	require.NoError(t, repo.SaveExpenses(ctx, month, []*entity.Expense{paidEarly, paidLate, dueLate, dueSoon}))

	output, err := list.Execute(ctx, ListExpensesInput{Month: month})
	require.NoError(t, err)

	require.Len(t, output.Upcoming, 2)
	assert.Equal(t, "Internet", output.Upcoming[0].Name, "unpaid sorts soonest first")
	assert.Equal(t, "Rent", output.Upcoming[1].Name)

	require.Len(t, output.Paid, 2)
	assert.Equal(t, "Dinner", output.Paid[0].Name, "paid sorts most recent first")
	assert.Equal(t, "Groceries", output.Paid[1].Name)
}
