package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendcount/backend/internal/application/usecase/receipt"
	"github.com/spendcount/backend/internal/integration/entrypoint/dto"
)

// ReceiptController handles the receipt scanning endpoint.
type ReceiptController struct {
	scanUseCase *receipt.ScanReceiptUseCase
}

// NewReceiptController creates a new receipt controller instance.
func NewReceiptController(scanUseCase *receipt.ScanReceiptUseCase) *ReceiptController {
	return &ReceiptController{scanUseCase: scanUseCase}
}

// Scan handles POST /receipts/scan requests.
func (c *ReceiptController) Scan(ctx *gin.Context) {
	var req dto.ScanReceiptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	m, ok := parseMonthBody(ctx, req.Month)
	if !ok {
		return
	}

	output, err := c.scanUseCase.Execute(ctx.Request.Context(), receipt.ScanReceiptInput{
		Month:       m,
		ImageBase64: req.Image,
		MimeType:    req.MimeType,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ScanReceiptResponse{
		Expenses: dto.ToExpenseResponses(output.Expenses),
	})
}
