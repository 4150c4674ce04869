package types

import "context"

// Loader is the contract between the loading cache and the backing
// store (a database, an API, anything slower than memory).
type Loader[K comparable, V any] interface {

	// Load is called on a cache miss: the key was not in memory, so
	// the cache asks the Loader to fetch it. The result is stored in
	// the cache and returned to the caller.
	Load(ctx context.Context, key K) (V, error)

	// Store is called when a write policy forwards a cache write to
	// the backing store. It does NOT store anything in the cache.
	Store(ctx context.Context, key K, value V) error
}
