// Package template contains recurring-expense template use cases.
package template

import (
	"github.com/spendcount/backend/internal/domain/entity"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// Reconcile materializes every active template into the month's expense
// collection. Template days past the end of the month clamp to its last day.
// A template that already has an instance on the resolved date is skipped,
// so running the reconciliation twice adds nothing.
//
// It returns the (possibly grown) expense slice and how many expenses were
// appended. Callers persist the result once after the call.
func Reconcile(month valueobject.Month, templates []*entity.RecurringExpense, expenses []*entity.Expense) ([]*entity.Expense, int) {
	added := 0
	for _, t := range templates {
		if t.IsPaused {
			continue
		}
		date := month.Date(clampDay(t.Day, month.DaysInMonth()))
		if entity.HasTemplateInstance(expenses, t.ID, date) {
			continue
		}
		expenses = append(expenses, t.Materialize(date))
		added++
	}
	return expenses, added
}

func clampDay(day, daysInMonth int) int {
	if day > daysInMonth {
		return daysInMonth
	}
	return day
}
