package storage

import "context"

// KV is a single key/value pair written by Engine.Batch.
type KV struct {
	Key   []byte
	Value []byte
}

// Engine is an ordered byte-key to byte-value map. Single-key Get and Put are
// atomic; Batch applies several puts atomically. Implementations are safe for
// concurrent use and share one handle across all callers.
type Engine interface {
	// Get returns a copy of the value stored at key, or ErrKeyNotFound.
	Get(ctx context.Context, key []byte) ([]byte, error)
	// Put stores value at key, overwriting any previous value.
	Put(ctx context.Context, key, value []byte) error
	// Batch stores every pair in one atomic write.
	Batch(ctx context.Context, pairs []KV) error
	// Scan calls fn for each key with the given prefix in lexicographic order.
	// fn receives copies it may retain; returning false stops the scan.
	Scan(ctx context.Context, prefix []byte, fn func(key, value []byte) bool) error
	// Count returns the number of keys with the given prefix.
	Count(ctx context.Context, prefix []byte) (int, error)
	// Clear erases every key.
	Clear(ctx context.Context) error
	Close() error
}

// HasPrefix reports whether at least one key with the given prefix exists.
func HasPrefix(ctx context.Context, e Engine, prefix []byte) (bool, error) {
	found := false
	err := e.Scan(ctx, prefix, func(_, _ []byte) bool {
		found = true
		return false
	})
	return found, err
}
