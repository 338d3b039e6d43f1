package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/integration/persistence/model"
)

// GeminiInsightService implements the InsightService using Google Gemini.
type GeminiInsightService struct {
	apiKey    string
	modelName string
}

// NewGeminiInsightService creates a new Gemini insight service instance.
func NewGeminiInsightService(apiKey, modelName string) *GeminiInsightService {
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}
	return &GeminiInsightService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiInsightService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsights asks Gemini for an HTML bullet summary of the month.
func (s *GeminiInsightService) GenerateInsights(ctx context.Context, snapshot *adapter.InsightSnapshot) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	m := client.GenerativeModel(s.modelName)
	m.ResponseMIMEType = "text/plain"

	prompt, err := s.buildPrompt(snapshot)
	if err != nil {
		return "", err
	}

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return "", err
	}
	return stripCodeFences(text), nil
}

// buildPrompt creates the prompt for Gemini. The snapshot's collections are
// serialized in their wire form so the model sees the same shape the app
// persists.
func (s *GeminiInsightService) buildPrompt(snapshot *adapter.InsightSnapshot) (string, error) {
	totalBudget := 0.0
	for _, b := range snapshot.Budgets {
		totalBudget += b.Amount
	}
	totalSpent := 0.0
	for _, e := range snapshot.Expenses {
		if e.Paid {
			totalSpent += e.Amount
		}
	}

	noteTexts := make([]string, 0, len(snapshot.Notes))
	for _, n := range snapshot.Notes {
		noteTexts = append(noteTexts, n.Text)
	}

	budgetsJSON, err := json.Marshal(model.BudgetsFromEntities(snapshot.Budgets))
	if err != nil {
		return "", fmt.Errorf("failed to marshal budgets: %w", err)
	}
	expensesJSON, err := json.Marshal(model.ExpensesFromEntities(snapshot.Expenses))
	if err != nil {
		return "", fmt.Errorf("failed to marshal expenses: %w", err)
	}
	limitsJSON, err := json.Marshal(snapshot.Limits)
	if err != nil {
		return "", fmt.Errorf("failed to marshal limits: %w", err)
	}
	notesJSON, err := json.Marshal(noteTexts)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notes: %w", err)
	}
	templatesJSON, err := json.Marshal(model.RecurringExpensesFromEntities(snapshot.Templates))
	if err != nil {
		return "", fmt.Errorf("failed to marshal templates: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`You are an expert financial assistant. Your tone is friendly, encouraging, and insightful.
Your goal is to provide a 3-5 bullet-point summary to help the user maintain their budget and manage their finances.
You MUST provide actionable advice.

Format your entire response as an HTML string using <ul> and <li> tags.
Use <b> tags for important numbers, categories, or names.

Here is the user's financial data for the month:

1.  **Monthly Budget (Income/Debts/Savings):**
    `)
	sb.Write(budgetsJSON)
	sb.WriteString("\n\n2.  **All Expenses for the Month (Paid & Unpaid):**\n    ")
	sb.Write(expensesJSON)
	sb.WriteString("\n\n3.  **Category Spending Limits:**\n    ")
	sb.Write(limitsJSON)
	sb.WriteString("\n\n4.  **User's Important Notes:**\n    ")
	sb.Write(notesJSON)
	sb.WriteString("\n\n5.  **User's Repeated Expense Templates:**\n    ")
	sb.Write(templatesJSON)
	sb.WriteString(fmt.Sprintf(`

---
**Your Task - Provide Insights based on this data:**

* **Budget vs. Spending:** Compare the <b>Total Budget (%.2f)</b> against the <b>Total Spent (%.2f)</b>. Are they on track?
* **Category Limits:** Check the paid expenses against the <b>Category Spending Limits</b>. Point out any categories where they are over or close to their limit.
* **Unpaid Bills:** Look at the <b>Unpaid Expenses</b> list. Are there any important bills (like 'Rent', 'Bills', or items from the 'Repeated Expenses' list) that are still unpaid? Gently remind them.
* **Spending Habits:** Look at the highest spending categories. Offer a simple, helpful observation.
* **Notes Context:** Use the <b>Important Notes</b> for context. For example, if they wrote "Saving for a trip," acknowledge that in your analysis of their spending.

Provide a 3-5 bullet-point summary in a <ul> list.
`, totalBudget, totalSpent))

	return sb.String(), nil
}

// responseText extracts the first text part of a Gemini response.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("no text content in response")
}

// stripCodeFences removes markdown code fences the model sometimes wraps
// around its output.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```html")
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
