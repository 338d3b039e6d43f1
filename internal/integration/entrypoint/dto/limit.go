package dto

import "github.com/spendcount/backend/internal/domain/entity"

// SetLimitsRequest represents the request body for replacing a month's
// category limits wholesale.
type SetLimitsRequest struct {
	Limits map[string]float64 `json:"limits" binding:"required"`
}

// LimitsResponse represents the category limits in API responses.
type LimitsResponse struct {
	Limits map[string]float64 `json:"limits"`
}

// ToLimitsResponse converts domain CategoryLimits to a LimitsResponse DTO.
func ToLimitsResponse(limits entity.CategoryLimits) LimitsResponse {
	out := make(map[string]float64, len(limits))
	for category, limit := range limits {
		out[string(category)] = limit
	}
	return LimitsResponse{Limits: out}
}
