// Package receipt contains the receipt scanning use case.
package receipt

import (
	"context"
	"time"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/application/usecase/expense"
	"github.com/spendcount/backend/internal/domain/entity"
	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
)

// ScanReceiptInput represents the input for a receipt scan.
type ScanReceiptInput struct {
	Month       valueobject.Month
	ImageBase64 string
	MimeType    string
}

// ScanReceiptOutput represents the output of a receipt scan.
type ScanReceiptOutput struct {
	Expenses []*entity.Expense
}

// ScanReceiptUseCase extracts line items from a receipt image and records
// each one through the regular expense creation path.
type ScanReceiptUseCase struct {
	scanner    adapter.ReceiptScanner
	addExpense *expense.AddExpenseUseCase
	clock      adapter.Clock
}

// NewScanReceiptUseCase creates a new ScanReceiptUseCase instance.
func NewScanReceiptUseCase(scanner adapter.ReceiptScanner, addExpense *expense.AddExpenseUseCase, clock adapter.Clock) *ScanReceiptUseCase {
	return &ScanReceiptUseCase{
		scanner:    scanner,
		addExpense: addExpense,
		clock:      clock,
	}
}

// Execute scans the image and adds every extracted item as an unpaid expense
// dated on the receipt date (today when the receipt carries no usable date).
// Items get the default 12:00 PM time since receipts rarely carry one.
func (uc *ScanReceiptUseCase) Execute(ctx context.Context, input ScanReceiptInput) (*ScanReceiptOutput, error) {
	if !uc.scanner.IsAvailable() {
		return nil, domainerror.NewAIError(
			domainerror.ErrCodeAIServiceUnavailable,
			"receipt scanner is not configured",
			domainerror.ErrAIServiceUnavailable,
		)
	}

	scan, err := uc.scanner.ScanReceipt(ctx, input.ImageBase64, input.MimeType)
	if err != nil {
		return nil, domainerror.NewAIError(
			domainerror.ErrCodeReceiptScan,
			"failed to process image",
			err,
		)
	}

	date := scan.Date
	if _, parseErr := time.Parse("2006-01-02", date); parseErr != nil {
		date = uc.clock.Now().Format("2006-01-02")
	}

	created := make([]*entity.Expense, 0, len(scan.Items))
	for _, item := range scan.Items {
		out, err := uc.addExpense.Execute(ctx, expense.AddExpenseInput{
			Month:    input.Month,
			Name:     item.Name,
			Amount:   item.Amount,
			Category: item.Category,
			Date:     date,
			Hour:     "12",
			Minute:   "00",
			AmPm:     entity.MeridiemPM,
		})
		if err != nil {
			return nil, err
		}
		created = append(created, out.Expense)
	}

	return &ScanReceiptOutput{Expenses: created}, nil
}
