// Package kvstore is the scoped blob store backing session state: one JSON
// value per string key, no transactions, no cross-key consistency. Both the
// cart and the order ledger persist through it.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound marks a key that is absent. Undecodable payloads are reported
// the same way so corrupted state degrades to "start empty" instead of
// surfacing to the user.
var ErrNotFound = errors.New("kvstore: key not found")

// Store is the persistence contract shared by the cart and order modules.
// Save overwrites unconditionally; Remove is a no-op for missing keys; each
// call is independent.
type Store interface {
	Save(ctx context.Context, key string, value any) error
	Load(ctx context.Context, key string, dest any) error
	Remove(ctx context.Context, key string) error
}
