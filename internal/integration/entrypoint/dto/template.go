package dto

import "github.com/spendcount/backend/internal/domain/entity"

// AddTemplateRequest represents the request body for recurring template
// creation.
type AddTemplateRequest struct {
	Name     string  `json:"name" binding:"required"`
	Amount   float64 `json:"amount" binding:"gte=0"`
	Category string  `json:"category" binding:"required"`
	Day      int     `json:"day" binding:"required,min=1,max=31"`
	Hour     string  `json:"hour" binding:"required"`
	Minute   string  `json:"minute" binding:"required"`
	AmPm     string  `json:"ampm" binding:"required,oneof=AM PM"`
}

// ApplyTemplateRequest represents the request body for applying one template
// to a month.
type ApplyTemplateRequest struct {
	Month string `json:"month" binding:"required"`
}

// TemplateResponse represents a single recurring template in API responses.
type TemplateResponse struct {
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

// TemplateListResponse represents the response for listing templates.
type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// ApplyTemplateResponse represents the outcome of a single-template apply.
type ApplyTemplateResponse struct {
	Added   bool             `json:"added"`
	Expense *ExpenseResponse `json:"expense,omitempty"`
}

// ToTemplateResponse converts a domain RecurringExpense entity to a
// TemplateResponse DTO.
func ToTemplateResponse(t *entity.RecurringExpense) TemplateResponse {
	return TemplateResponse{
		ID:       t.ID,
		Name:     t.Name,
		Amount:   t.Amount,
		Category: string(t.Category),
		Day:      t.Day,
		Hour:     t.Hour,
		Minute:   t.Minute,
		AmPm:     t.AmPm,
		IsPaused: t.IsPaused,
	}
}

// ToTemplateListResponse converts template entities to a TemplateListResponse.
func ToTemplateListResponse(templates []*entity.RecurringExpense) TemplateListResponse {
	out := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		out[i] = ToTemplateResponse(t)
	}
	return TemplateListResponse{Templates: out}
}
