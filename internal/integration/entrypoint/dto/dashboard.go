package dto

import (
	"github.com/spendcount/backend/internal/application/usecase/dashboard"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// LimitBreachResponse represents one exceeded category limit.
type LimitBreachResponse struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
	Limit    float64 `json:"limit"`
}

// SummaryResponse represents the derived figures of a month.
type SummaryResponse struct {
	TotalBudget     float64               `json:"totalBudget"`
	TotalSpent      float64               `json:"totalSpent"`
	Remaining       float64               `json:"remaining"`
	SpendByCategory map[string]float64    `json:"spendByCategory"`
	LimitBreaches   []LimitBreachResponse `json:"limitBreaches"`
	Overspent       bool                  `json:"overspent"`
}

// DashboardResponse represents the full month snapshot: collections plus
// the figures derived from them.
type DashboardResponse struct {
	Month    string             `json:"month"`
	Budgets  []BudgetResponse   `json:"budgets"`
	Expenses []ExpenseResponse  `json:"expenses"`
	Notes    []NoteResponse     `json:"notes"`
	Limits   map[string]float64 `json:"limits"`
	Summary  SummaryResponse    `json:"summary"`
}

// ToSummaryResponse converts a domain MonthSummary to a SummaryResponse DTO.
func ToSummaryResponse(s valueobject.MonthSummary) SummaryResponse {
	spend := make(map[string]float64, len(s.SpendByCategory))
	for category, amount := range s.SpendByCategory {
		spend[string(category)] = amount
	}
	breaches := make([]LimitBreachResponse, len(s.LimitBreaches))
	for i, b := range s.LimitBreaches {
		breaches[i] = LimitBreachResponse{
			Category: string(b.Category),
			Spent:    b.Spent,
			Limit:    b.Limit,
		}
	}
	return SummaryResponse{
		TotalBudget:     s.TotalBudget,
		TotalSpent:      s.TotalSpent,
		Remaining:       s.Remaining,
		SpendByCategory: spend,
		LimitBreaches:   breaches,
		Overspent:       s.Overspent,
	}
}

// ToDashboardResponse converts a dashboard use case output to a
// DashboardResponse DTO.
func ToDashboardResponse(month valueobject.Month, output *dashboard.GetMonthDashboardOutput) DashboardResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = ToBudgetResponse(b)
	}
	notes := make([]NoteResponse, len(output.Notes))
	for i, n := range output.Notes {
		notes[i] = ToNoteResponse(n)
	}
	return DashboardResponse{
		Month:    month.String(),
		Budgets:  budgets,
		Expenses: ToExpenseResponses(output.Expenses),
		Notes:    notes,
		Limits:   ToLimitsResponse(output.Limits).Limits,
		Summary:  ToSummaryResponse(output.Summary),
	}
}
