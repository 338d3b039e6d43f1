package adapters

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
)

// GeminiReceiptService implements the ReceiptScanner using Google Gemini.
type GeminiReceiptService struct {
	apiKey    string
	modelName string
}

// NewGeminiReceiptService creates a new Gemini receipt scanner instance.
func NewGeminiReceiptService(apiKey, modelName string) *GeminiReceiptService {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiReceiptService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiReceiptService) IsAvailable() bool {
	return s.apiKey != ""
}

// ScanReceipt sends the image to Gemini and parses the structured extraction.
func (s *GeminiReceiptService) ScanReceipt(ctx context.Context, imageBase64, mimeType string) (*adapter.ReceiptScan, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	imageData, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(s.modelName)
	m.ResponseMIMEType = "application/json"

	resp, err := m.GenerateContent(ctx,
		genai.Text(s.buildPrompt()),
		genai.Blob{MIMEType: mimeType, Data: imageData},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return s.parseResponse(stripCodeFences(text))
}

// buildPrompt creates the extraction prompt for Gemini.
func (s *GeminiReceiptService) buildPrompt() string {
	today := time.Now().Format("2006-01-02")
	categories, _ := json.Marshal(entity.Categories())

	return fmt.Sprintf(`You are an expert receipt scanning assistant. Your task is to analyze the provided image and extract all individual expense line items.

You MUST respond in a valid JSON object format ONLY. Do not include any text, markdown, or commentary before or after the JSON.

The JSON format must be:
{
  "date": "YYYY-MM-DD",
  "items": [
    { "name": "...", "amount": 0.00, "category": "..." },
    { "name": "...", "amount": 0.00, "category": "..." }
  ]
}

- "date": The single date for the ENTIRE receipt in YYYY-MM-DD format. If no date is found, use today's date: %s.
- "items": An array of all expense items found.
  - "name": The name of the service or product.
  - "amount": The price of that specific item as a number.
  - "category": The most appropriate category for the item, chosen ONLY from this list: %s. If no category fits, use "Other".

Only include items that have a clear name and amount. Ignore taxes, subtotals, or "total" lines; focus only on the individual purchased items. If no items are found, return an empty "items" array.
`, today, categories)
}

// geminiReceipt represents the raw response from Gemini.
type geminiReceipt struct {
	Date  string              `json:"date"`
	Items []geminiReceiptItem `json:"items"`
}

type geminiReceiptItem struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// parseResponse parses the Gemini JSON into a ReceiptScan. Items without a
// name or with a non-positive amount are dropped.
func (s *GeminiReceiptService) parseResponse(text string) (*adapter.ReceiptScan, error) {
	var raw geminiReceipt
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, text)
	}

	scan := &adapter.ReceiptScan{
		Date:  strings.TrimSpace(raw.Date),
		Items: make([]adapter.ReceiptItem, 0, len(raw.Items)),
	}
	for _, item := range raw.Items {
		if strings.TrimSpace(item.Name) == "" || item.Amount <= 0 {
			continue
		}
		scan.Items = append(scan.Items, adapter.ReceiptItem{
			Name:     strings.TrimSpace(item.Name),
			Amount:   item.Amount,
			Category: item.Category,
		})
	}
	return scan, nil
}
