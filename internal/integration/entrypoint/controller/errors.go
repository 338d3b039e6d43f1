// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/spendcount/backend/internal/domain/error"
	"github.com/spendcount/backend/internal/domain/valueobject"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps domain errors to HTTP responses. Not-found
// mutations come back as 404 with the store unchanged, validation failures
// as 400, AI collaborator failures as 502/503.
func handleDomainError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var templateErr *domainerror.TemplateError
	if errors.As(err, &templateErr) {
		status := http.StatusBadRequest
		if templateErr.Code == domainerror.ErrCodeTemplateNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: templateErr.Message,
			Code:  string(templateErr.Code),
		})
		return
	}

	var aiErr *domainerror.AIError
	if errors.As(err, &aiErr) {
		status := http.StatusBadGateway
		if aiErr.Code == domainerror.ErrCodeAIServiceUnavailable {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error:   aiErr.Message,
			Code:    string(aiErr.Code),
			Details: aiErr.Details(),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForLedgerError maps ledger error codes to HTTP status codes.
func statusForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeExpenseNotFound,
		domainerror.ErrCodeNoteNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidBudgetType,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeInvalidLimit,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeInvalidTime,
		domainerror.ErrCodeMissingName,
		domainerror.ErrCodeMissingText:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseMonthParam parses the :month path parameter, responding with 400 on
// a malformed identifier.
func parseMonthParam(ctx *gin.Context) (valueobject.Month, bool) {
	month, err := valueobject.ParseMonth(ctx.Param("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format, expected YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return valueobject.Month{}, false
	}
	return month, true
}

// parseMonthBody parses a YYYY-MM identifier from a request body field,
// responding with 400 on a malformed identifier.
func parseMonthBody(ctx *gin.Context, raw string) (valueobject.Month, bool) {
	month, err := valueobject.ParseMonth(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid month format, expected YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidMonth),
		})
		return valueobject.Month{}, false
	}
	return month, true
}
