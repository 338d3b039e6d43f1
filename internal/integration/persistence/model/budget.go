// Package model defines the persisted JSON wire models for the ledger.
// Field names match the stored layout and must not change.
package model

import "github.com/spendcount/backend/internal/domain/entity"

// BudgetModel is the persisted shape of one budget source.
type BudgetModel struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:     m.ID,
		Name:   m.Name,
		Amount: m.Amount,
		Type:   entity.BudgetType(m.Type),
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(b *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:     b.ID,
		Name:   b.Name,
		Amount: b.Amount,
		Type:   string(b.Type),
	}
}

// BudgetsToEntities converts a persisted budget collection to entities.
func BudgetsToEntities(models []BudgetModel) []*entity.Budget {
	budgets := make([]*entity.Budget, len(models))
	for i := range models {
		budgets[i] = models[i].ToEntity()
	}
	return budgets
}

// BudgetsFromEntities converts a budget collection to its persisted shape.
func BudgetsFromEntities(budgets []*entity.Budget) []BudgetModel {
	models := make([]BudgetModel, len(budgets))
	for i, b := range budgets {
		models[i] = *BudgetFromEntity(b)
	}
	return models
}
