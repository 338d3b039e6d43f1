package model

import "github.com/spendcount/backend/internal/domain/entity"

// RecurringExpenseModel is the persisted shape of one recurring template.
type RecurringExpenseModel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Day      int     `json:"day"`
	Hour     string  `json:"hour"`
	Minute   string  `json:"minute"`
	AmPm     string  `json:"ampm"`
	IsPaused bool    `json:"isPaused"`
}

// ToEntity converts a RecurringExpenseModel to a domain entity.
func (m *RecurringExpenseModel) ToEntity() *entity.RecurringExpense {
	return &entity.RecurringExpense{
		ID:       m.ID,
		Name:     m.Name,
		Amount:   m.Amount,
		Category: entity.Category(m.Category),
		Day:      m.Day,
		Hour:     m.Hour,
		Minute:   m.Minute,
		AmPm:     m.AmPm,
		IsPaused: m.IsPaused,
	}
}

// RecurringExpenseFromEntity creates a RecurringExpenseModel from a domain entity.
func RecurringExpenseFromEntity(r *entity.RecurringExpense) *RecurringExpenseModel {
	return &RecurringExpenseModel{
		ID:       r.ID,
		Name:     r.Name,
		Amount:   r.Amount,
		Category: string(r.Category),
		Day:      r.Day,
		Hour:     r.Hour,
		Minute:   r.Minute,
		AmPm:     r.AmPm,
		IsPaused: r.IsPaused,
	}
}

// RecurringExpensesToEntities converts a persisted template collection to entities.
func RecurringExpensesToEntities(models []RecurringExpenseModel) []*entity.RecurringExpense {
	templates := make([]*entity.RecurringExpense, len(models))
	for i := range models {
		templates[i] = models[i].ToEntity()
	}
	return templates
}

// RecurringExpensesFromEntities converts a template collection to its persisted shape.
func RecurringExpensesFromEntities(templates []*entity.RecurringExpense) []RecurringExpenseModel {
	models := make([]RecurringExpenseModel, len(templates))
	for i, r := range templates {
		models[i] = *RecurringExpenseFromEntity(r)
	}
	return models
}
