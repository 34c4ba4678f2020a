// Package storage provides the durable key-value persistence layer.
//
// The stores in internal/ledger persist whole collections as JSON strings
// under fixed keys; this package only has to move opaque strings in and
// out of durable storage.
package storage

import "context"

// KV is the contract for durable string-keyed, string-valued storage.
type KV interface {
	// Get returns the value for key. The boolean is false when the key
	// has never been set.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set durably stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// SetAll stores every entry in values, all of them or none of them.
	SetAll(ctx context.Context, values map[string]string) error

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Close releases underlying resources.
	Close() error
}
