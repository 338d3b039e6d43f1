package adapters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendcount/backend/internal/application/adapter"
	"github.com/spendcount/backend/internal/domain/entity"
)

func TestReceiptParseResponse(t *testing.T) {
	svc := NewGeminiReceiptService("key", "")

	t.Run("parses items and date", func(t *testing.T) {
		scan, err := svc.parseResponse(`{
			"date": "2026-08-03",
			"items": [
				{"name": "Milk", "amount": 120.50, "category": "Food & Groceries"},
				{"name": "Taxi", "amount": 85, "category": "Transport"}
			]
		}`)
		require.NoError(t, err)
		assert.Equal(t, "2026-08-03", scan.Date)
		require.Len(t, scan.Items, 2)
		assert.Equal(t, adapter.ReceiptItem{Name: "Milk", Amount: 120.50, Category: "Food & Groceries"}, scan.Items[0])
	})

	t.Run("drops nameless and non-positive items", func(t *testing.T) {
		scan, err := svc.parseResponse(`{
			"date": "2026-08-03",
			"items": [
				{"name": "  ", "amount": 10, "category": "Other"},
				{"name": "Refund", "amount": -5, "category": "Other"},
				{"name": "Free sample", "amount": 0, "category": "Other"},
				{"name": "Bread", "amount": 45, "category": "Food & Groceries"}
			]
		}`)
		require.NoError(t, err)
		require.Len(t, scan.Items, 1)
		assert.Equal(t, "Bread", scan.Items[0].Name)
	})

	t.Run("empty items array", func(t *testing.T) {
		scan, err := svc.parseResponse(`{"date": "2026-08-03", "items": []}`)
		require.NoError(t, err)
		assert.Empty(t, scan.Items)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		_, err := svc.parseResponse("not json at all")
		assert.Error(t, err)
	})
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, "<ul><li>hi</li></ul>", stripCodeFences("```html\n<ul><li>hi</li></ul>\n```"))
	assert.Equal(t, "plain", stripCodeFences("  plain  "))
	assert.Equal(t, "fenced", stripCodeFences("```\nfenced\n```"))
}

func TestReceiptPromptNamesEveryCategory(t *testing.T) {
	svc := NewGeminiReceiptService("key", "")
	prompt := svc.buildPrompt()

	categories, err := json.Marshal(entity.Categories())
	require.NoError(t, err)
	assert.Contains(t, prompt, string(categories))
}

func TestReceiptServiceAvailability(t *testing.T) {
	assert.False(t, NewGeminiReceiptService("", "").IsAvailable())
	assert.True(t, NewGeminiReceiptService("key", "").IsAvailable())
}
