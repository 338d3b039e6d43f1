package entity

import "github.com/google/uuid"

// Meridiem markers for the 12-hour expense time fields.
const (
	MeridiemAM = "AM"
	MeridiemPM = "PM"
)

// Expense represents a single expense row inside one month partition.
// Date is a calendar date (YYYY-MM-DD) that is informational only; it is
// not required to fall inside the owning month. Hour, Minute and AmPm keep
// the zero-padded 12-hour wall-clock representation of the persisted layout.
type Expense struct {
	ID       string
	Name     string
	Amount   float64
	Category Category
	Date     string
	Hour     string
	Minute   string
	AmPm     string
	Paid     bool

	// BudgetID links this expense to a debt/loan budget in the same month.
	// The linked pair is removed together when either side is deleted.
	BudgetID string

	// RepeatedExpenseID references the recurring template this expense was
	// materialized from. The template may have been deleted since.
	RepeatedExpenseID string
}

// NewExpense creates a new Expense entity with a fresh ID.
func NewExpense(name string, amount float64, category Category, date, hour, minute, ampm string) *Expense {
	return &Expense{
		ID:       uuid.NewString(),
		Name:     name,
		Amount:   amount,
		Category: category,
		Date:     date,
		Hour:     hour,
		Minute:   minute,
		AmPm:     ampm,
	}
}

// FindExpenseByID returns the expense with the given ID, or nil.
func FindExpenseByID(expenses []*Expense, id string) *Expense {
	for _, e := range expenses {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// RemoveExpenseByID returns the slice without the expense carrying the given ID.
func RemoveExpenseByID(expenses []*Expense, id string) []*Expense {
	out := make([]*Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// FindLinkedUnpaidExpense returns the unpaid expense linked to the given
// budget, or nil. At most one such expense exists per budget.
func FindLinkedUnpaidExpense(expenses []*Expense, budgetID string) *Expense {
	for _, e := range expenses {
		if e.BudgetID == budgetID && !e.Paid {
			return e
		}
	}
	return nil
}

// HasTemplateInstance reports whether an expense materialized from the given
// template on the given date already exists. This is the de-duplication
// guard for template reconciliation.
func HasTemplateInstance(expenses []*Expense, templateID, date string) bool {
	for _, e := range expenses {
		if e.RepeatedExpenseID == templateID && e.Date == date {
			return true
		}
	}
	return false
}
