package error

import "errors"

// Recurring template domain errors.
var (
	// ErrTemplateNotFound is returned when a recurring template is not found.
	ErrTemplateNotFound = errors.New("recurring expense template not found")

	// ErrInvalidTemplateDay is returned when the template day is outside 1..31.
	ErrInvalidTemplateDay = errors.New("template day must be between 1 and 31")
)

// TemplateErrorCode defines error codes for recurring template errors.
type TemplateErrorCode string

const (
	ErrCodeTemplateNotFound   TemplateErrorCode = "TPL-010001"
	ErrCodeInvalidTemplateDay TemplateErrorCode = "TPL-020001"
)

// TemplateError represents a recurring template error with code and message.
type TemplateError struct {
	Code    TemplateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TemplateError) Unwrap() error {
	return e.Err
}

// NewTemplateError creates a new TemplateError with the given code and message.
func NewTemplateError(code TemplateErrorCode, message string, err error) *TemplateError {
	return &TemplateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
