package entity

import "github.com/google/uuid"

// RecurringExpense is a global template for an expense that recurs monthly
// (for example rent). It is not month-scoped; the reconciler materializes it
// into concrete Expense rows per month.
type RecurringExpense struct {
	ID       string
	Name     string
	Amount   float64
	Category Category
	// Day is the day of month the expense falls due, 1..31. Months shorter
	// than Day clamp to their last day during materialization.
	Day      int
	Hour     string
	Minute   string
	AmPm     string
	IsPaused bool
}

// NewRecurringExpense creates a new RecurringExpense template with a fresh ID.
func NewRecurringExpense(name string, amount float64, category Category, day int, hour, minute, ampm string) *RecurringExpense {
	return &RecurringExpense{
		ID:       uuid.NewString(),
		Name:     name,
		Amount:   amount,
		Category: category,
		Day:      day,
		Hour:     hour,
		Minute:   minute,
		AmPm:     ampm,
	}
}

// Materialize builds the unpaid Expense instance of this template for the
// given concrete date. The expense carries the template back-reference.
func (r *RecurringExpense) Materialize(date string) *Expense {
	return &Expense{
		ID:                uuid.NewString(),
		Name:              r.Name,
		Amount:            r.Amount,
		Category:          r.Category,
		Date:              date,
		Hour:              r.Hour,
		Minute:            r.Minute,
		AmPm:              r.AmPm,
		Paid:              false,
		RepeatedExpenseID: r.ID,
	}
}

// FindTemplateByID returns the template with the given ID, or nil.
func FindTemplateByID(templates []*RecurringExpense, id string) *RecurringExpense {
	for _, t := range templates {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// RemoveTemplateByID returns the slice without the template carrying the given ID.
func RemoveTemplateByID(templates []*RecurringExpense, id string) []*RecurringExpense {
	out := make([]*RecurringExpense, 0, len(templates))
	for _, t := range templates {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}
