package writepolicy

import (
	"context"

	"github.com/emilybidder/agecache/types"
)

/*
This file implements the "write-through" policy: every cache write is
immediately forwarded to the backing store, synchronously. The cache
write is not complete until the store write finishes, so a slow store
makes cache writes slow, but the store never lags behind the cache.
*/

type WriteThrough[V any] struct {

	// store is the backing store where data must be persisted
	// immediately.
	store types.Loader[string, V]
}

func NewWriteThrough[V any](store types.Loader[string, V]) *WriteThrough[V] {
	return &WriteThrough[V]{store: store}
}

// OnWrite forwards the write to the backing store before returning.
// Store errors are intentionally dropped; a real deployment would log
// them at the store implementation.
func (w *WriteThrough[V]) OnWrite(ctx context.Context, key string, value V) {
	_ = w.store.Store(ctx, key, value)
}

// Close is required by the WritePolicy interface. Write-through has no
// background work, so there is nothing to clean up.
func (w *WriteThrough[V]) Close() {}
