package entity

import "github.com/google/uuid"

// BudgetType classifies where a budget source comes from.
type BudgetType string

const (
	BudgetTypeIncome  BudgetType = "income"
	BudgetTypeSavings BudgetType = "savings"
	BudgetTypeDebt    BudgetType = "debt"
	BudgetTypeLoan    BudgetType = "loan"
	BudgetTypeOther   BudgetType = "other"
)

// Budget represents a single budget source (income, savings, debt, ...)
// inside one month partition.
type Budget struct {
	ID     string
	Name   string
	Amount float64
	Type   BudgetType
}

// NewBudget creates a new Budget entity with a fresh ID.
func NewBudget(name string, amount float64, budgetType BudgetType) *Budget {
	return &Budget{
		ID:     uuid.NewString(),
		Name:   name,
		Amount: amount,
		Type:   budgetType,
	}
}

// IsValidBudgetType reports whether the value is a known budget type.
func IsValidBudgetType(t BudgetType) bool {
	switch t {
	case BudgetTypeIncome, BudgetTypeSavings, BudgetTypeDebt, BudgetTypeLoan, BudgetTypeOther:
		return true
	}
	return false
}

// Linkable reports whether budgets of this type carry a linked unpaid expense.
func (t BudgetType) Linkable() bool {
	return t == BudgetTypeDebt || t == BudgetTypeLoan
}

// FindBudgetByID returns the budget with the given ID, or nil.
func FindBudgetByID(budgets []*Budget, id string) *Budget {
	for _, b := range budgets {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// RemoveBudgetByID returns the slice without the budget carrying the given ID.
func RemoveBudgetByID(budgets []*Budget, id string) []*Budget {
	out := make([]*Budget, 0, len(budgets))
	for _, b := range budgets {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
