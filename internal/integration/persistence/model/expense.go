package model

import "github.com/spendcount/backend/internal/domain/entity"

// ExpenseModel is the persisted shape of one expense row. The optional
// back-references are omitted from the stored JSON when empty.
type ExpenseModel struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Amount            float64 `json:"amount"`
	Category          string  `json:"category"`
	Date              string  `json:"date"`
	Hour              string  `json:"hour"`
	Minute            string  `json:"minute"`
	AmPm              string  `json:"ampm"`
	Paid              bool    `json:"paid"`
	BudgetID          string  `json:"budgetId,omitempty"`
	RepeatedExpenseID string  `json:"repeatedExpenseId,omitempty"`
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:                m.ID,
		Name:              m.Name,
		Amount:            m.Amount,
		Category:          entity.Category(m.Category),
		Date:              m.Date,
		Hour:              m.Hour,
		Minute:            m.Minute,
		AmPm:              m.AmPm,
		Paid:              m.Paid,
		BudgetID:          m.BudgetID,
		RepeatedExpenseID: m.RepeatedExpenseID,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(e *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                e.ID,
		Name:              e.Name,
		Amount:            e.Amount,
		Category:          string(e.Category),
		Date:              e.Date,
		Hour:              e.Hour,
		Minute:            e.Minute,
		AmPm:              e.AmPm,
		Paid:              e.Paid,
		BudgetID:          e.BudgetID,
		RepeatedExpenseID: e.RepeatedExpenseID,
	}
}

// ExpensesToEntities converts a persisted expense collection to entities.
func ExpensesToEntities(models []ExpenseModel) []*entity.Expense {
	expenses := make([]*entity.Expense, len(models))
	for i := range models {
		expenses[i] = models[i].ToEntity()
	}
	return expenses
}

// ExpensesFromEntities converts an expense collection to its persisted shape.
func ExpensesFromEntities(expenses []*entity.Expense) []ExpenseModel {
	models := make([]ExpenseModel, len(expenses))
	for i, e := range expenses {
		models[i] = *ExpenseFromEntity(e)
	}
	return models
}
