// Package storage implements the on-device key-value store backing identity,
// drafts and saved lists. Values are opaque strings; callers own the
// serialization format.
package storage

import "context"

// Store describes the key-value operations used by the services layer.
// There is exactly one writer (the local interactive session), so the only
// consistency mechanism is whole-value replacement.
type Store interface {
	// Get returns the value for key, or common.ErrNotFound when absent.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
