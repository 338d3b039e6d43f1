package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
)

func TestInsightPromptTotals(t *testing.T) {
	svc := NewGeminiInsightService("key", "")

	paid := entity.NewExpense("Rent", 15000, entity.CategoryRent, "2026-08-01", "09", "00", entity.MeridiemAM)
	paid.Paid = true
	unpaid := entity.NewExpense("Internet", 500, entity.CategoryBills, "2026-08-05", "12", "00", entity.MeridiemPM)

	prompt, err := svc.buildPrompt(&adapter.InsightSnapshot{
		Budgets:  []*entity.Budget{entity.NewBudget("Salary", 50000, entity.BudgetTypeIncome)},
		Expenses: []*entity.Expense{paid, unpaid},
		Notes:    []*entity.Note{entity.NewNote("Saving for a trip")},
		Limits:   entity.CategoryLimits{entity.CategoryBills: 3000},
	})
	require.NoError(t, err)

	// Only paid expenses count toward the spent total.
	assert.Contains(t, prompt, "Total Budget (50000.00)")
	assert.Contains(t, prompt, "Total Spent (15000.00)")
	assert.Contains(t, prompt, "Saving for a trip")
	assert.Contains(t, prompt, "Internet")
}

func TestInsightServiceAvailability(t *testing.T) {
	assert.False(t, NewGeminiInsightService("", "").IsAvailable())
	assert.True(t, NewGeminiInsightService("key", "").IsAvailable())
}
