package error

import "errors"

// External AI collaborator errors. These are surfaced to the caller with a
// message and underlying detail, never retried automatically, and never
// corrupt local state.
var (
	// ErrAIServiceUnavailable is returned when no AI service is configured.
	ErrAIServiceUnavailable = errors.New("ai service is not configured")

	// ErrInsightGeneration is returned when the insight exchange fails.
	ErrInsightGeneration = errors.New("failed to get insights")

	// ErrReceiptScan is returned when the receipt scan exchange fails.
	ErrReceiptScan = errors.New("failed to process image")
)

// AIErrorCode defines error codes for AI collaborator errors.
type AIErrorCode string

const (
	ErrCodeAIServiceUnavailable AIErrorCode = "AI-010001"
	ErrCodeInsightGeneration    AIErrorCode = "AI-020001"
	ErrCodeReceiptScan          AIErrorCode = "AI-020002"
)

// AIError represents an AI collaborator failure with code, message and detail.
type AIError struct {
	Code    AIErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AIError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AIError) Unwrap() error {
	return e.Err
}

// Details returns the underlying failure detail, if any.
func (e *AIError) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// NewAIError creates a new AIError with the given code and message.
func NewAIError(code AIErrorCode, message string, err error) *AIError {
	return &AIError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
