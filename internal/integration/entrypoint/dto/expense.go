package dto

import "github.com/spendcount/backend/internal/domain/entity"

// AddExpenseRequest represents the request body for expense creation.
type AddExpenseRequest struct {
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Hour     string  `json:"hour" binding:"required"`
	Minute   string  `json:"minute" binding:"required"`
	AmPm     string  `json:"ampm" binding:"required,oneof=AM PM"`
	Paid     bool    `json:"paid"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
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

// ExpenseListResponse represents the response for listing expenses,
// split into upcoming (unpaid) and paid groups.
type ExpenseListResponse struct {
	Upcoming []ExpenseResponse `json:"upcoming"`
	Paid     []ExpenseResponse `json:"paid"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
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

// ToExpenseResponses converts expense entities to response DTOs.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return out
}
