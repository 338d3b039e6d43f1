package dto

// InsightRequest represents the request body for insight generation.
type InsightRequest struct {
	Month string `json:"month" binding:"required"`
}

// InsightResponse represents the insight generation response. Insights is
// raw HTML markup produced by the AI collaborator.
type InsightResponse struct {
	Insights string `json:"insights"`
}
