package dto

import "github.com/spendcount/backend/internal/domain/entity"

// AddBudgetRequest represents the request body for budget creation.
type AddBudgetRequest struct {
	Name   string  `json:"name" binding:"required"`
	Amount float64 `json:"amount" binding:"gte=0"`
	Type   string  `json:"type" binding:"required,oneof=income savings debt loan other"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// AddBudgetResponse represents the response for budget creation.
type AddBudgetResponse struct {
	Budget BudgetResponse `json:"budget"`

	// LinkedExpense is present for debt and loan budgets only.
	LinkedExpense *ExpenseResponse `json:"linkedExpense,omitempty"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:     b.ID,
		Name:   b.Name,
		Amount: b.Amount,
		Type:   string(b.Type),
	}
}

// ToBudgetListResponse converts budget entities to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	out := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		out[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: out}
}
