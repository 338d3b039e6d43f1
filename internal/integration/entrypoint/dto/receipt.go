package dto

// ScanReceiptRequest represents the request body for a receipt scan.
type ScanReceiptRequest struct {
	Month    string `json:"month" binding:"required"`
	Image    string `json:"image" binding:"required"`
	MimeType string `json:"mimeType" binding:"required"`
}

// ScanReceiptResponse represents the expenses created from a receipt scan.
type ScanReceiptResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}
