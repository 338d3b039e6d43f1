// Package persistence implements repository interfaces over the key-value
// storage layout.
package persistence

import (
	"strings"

	"github.com/spendcount/backend/internal/domain/valueobject"
)

// Collection kinds of the persisted layout.
const (
	kindBudgets  = "budgets"
	kindExpenses = "expenses"
	kindNotes    = "notes"
	kindLimits   = "limits"

	kindRepeatedExpenses        = "repeatedExpenses"
	kindRepeatedExpensesApplied = "repeatedExpensesApplied"
)

// monthKinds are the four month-scoped collection kinds, used for month
// discovery and month deletion.
var monthKinds = []string{kindBudgets, kindExpenses, kindNotes, kindLimits}

// keyCodec derives storage keys from an entity kind and a month identifier,
// or a global (month-independent) kind.
type keyCodec struct {
	prefix string
}

func newKeyCodec(prefix string) keyCodec {
	return keyCodec{prefix: prefix}
}

// collection returns the key for a month-scoped collection kind:
// <prefix>-<kind>-<YYYY-MM>.
func (k keyCodec) collection(kind string, month valueobject.Month) string {
	return k.prefix + "-" + kind + "-" + month.String()
}

// global returns the key for a month-independent kind: <prefix>-global-<kind>.
func (k keyCodec) global(kind string) string {
	return k.prefix + "-global-" + kind
}

// monthSuffix extracts the month identifier from a month-scoped key of the
// given kind. The second return value is false when the key belongs to a
// different kind.
func (k keyCodec) monthSuffix(key, kind string) (string, bool) {
	head := k.prefix + "-" + kind + "-"
	if !strings.HasPrefix(key, head) {
		return "", false
	}
	return strings.TrimPrefix(key, head), true
}
