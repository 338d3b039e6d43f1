// Package error defines domain-specific errors for the SpendCount ledger.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not in the month's collection.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrExpenseNotFound is returned when an expense is not in the month's collection.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNoteNotFound is returned when a note is not in the month's collection.
	ErrNoteNotFound = errors.New("note not found")

	// ErrInvalidAmount is returned when an amount is negative.
	ErrInvalidAmount = errors.New("amount must not be negative")

	// ErrInvalidBudgetType is returned when the budget type is unknown.
	ErrInvalidBudgetType = errors.New("invalid budget type")

	// ErrInvalidCategory is returned when a category label is not in the fixed set.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidLimit is returned when a category limit is zero or negative.
	ErrInvalidLimit = errors.New("category limit must be greater than zero")

	// ErrInvalidMonth is returned when a month identifier does not parse as YYYY-MM.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidDate is returned when an expense date does not parse as YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime is returned when hour/minute/meridiem fields are out of range.
	ErrInvalidTime = errors.New("invalid time")

	// ErrMissingName is returned when a required name field is empty.
	ErrMissingName = errors.New("name must not be empty")

	// ErrMissingText is returned when a note text is empty.
	ErrMissingText = errors.New("text must not be empty")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LED-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Not-found errors (01XXXX)
	ErrCodeBudgetNotFound  LedgerErrorCode = "LED-010001"
	ErrCodeExpenseNotFound LedgerErrorCode = "LED-010002"
	ErrCodeNoteNotFound    LedgerErrorCode = "LED-010003"

	// Validation errors (02XXXX)
	ErrCodeInvalidAmount     LedgerErrorCode = "LED-020001"
	ErrCodeInvalidBudgetType LedgerErrorCode = "LED-020002"
	ErrCodeInvalidCategory   LedgerErrorCode = "LED-020003"
	ErrCodeInvalidLimit      LedgerErrorCode = "LED-020004"
	ErrCodeInvalidMonth      LedgerErrorCode = "LED-020005"
	ErrCodeInvalidDate       LedgerErrorCode = "LED-020006"
	ErrCodeInvalidTime       LedgerErrorCode = "LED-020007"
	ErrCodeMissingName       LedgerErrorCode = "LED-020008"
	ErrCodeMissingText       LedgerErrorCode = "LED-020009"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
