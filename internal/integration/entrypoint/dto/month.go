package dto

import "github.com/spendcount/backend/internal/domain/valueobject"

// MonthListResponse represents the response for listing months.
type MonthListResponse struct {
	// Months holds YYYY-MM identifiers, most recent first.
	Months []string `json:"months"`
}

// ToMonthListResponse converts Month values to a MonthListResponse.
func ToMonthListResponse(months []valueobject.Month) MonthListResponse {
	out := make([]string, len(months))
	for i, m := range months {
		out[i] = m.String()
	}
	return MonthListResponse{Months: out}
}
