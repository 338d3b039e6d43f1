package adapter

import "context"

// ReceiptItem is one expense line item extracted from a receipt image.
// Category is a raw label; the ingestion boundary normalizes it onto the
// fixed category set.
type ReceiptItem struct {
	Name     string
	Amount   float64
	Category string
}

// ReceiptScan is the structured extraction for a whole receipt.
type ReceiptScan struct {
	// Date is the single ISO date (YYYY-MM-DD) for the entire receipt.
	Date  string
	Items []ReceiptItem
}

// ReceiptScanner extracts expense line items from a receipt image.
type ReceiptScanner interface {
	// IsAvailable checks if the scanner is configured.
	IsAvailable() bool

	// ScanReceipt analyzes a base64-encoded image of the given MIME type.
	ScanReceipt(ctx context.Context, imageBase64, mimeType string) (*ReceiptScan, error)
}
