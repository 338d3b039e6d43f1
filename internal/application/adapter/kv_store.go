// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KeyValueStore abstracts the persisted key→string-value layout the ledger
// is stored in. Implementations must make writes immediately durable; the
// engine assumes single-writer usage and does not coordinate concurrent
// writers beyond last-write-wins per key.
type KeyValueStore interface {
	// Get returns the value stored under key. The second return value is
	// false when the key does not exist.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// Keys returns every stored key that starts with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
