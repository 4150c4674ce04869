package writepolicy

import (
	"context"
	"sync"

	"github.com/emilybidder/agecache/types"
)

// This file implements the "write-back" policy: cache writes are queued
// and pushed to the backing store asynchronously by one worker.

// writeReq is one pending write waiting to reach the backing store.
type writeReq[V any] struct {
	ctx   context.Context
	key   string
	value V
}

/*
WriteBack manages asynchronous writes to the backing store.

Writes go into a buffered channel and a single background worker drains
it. Buffering absorbs bursts; if the queue is ever full, the write is
DROPPED rather than blocking the cache. That is the write-back
trade-off: the cache stays fast, the store may miss updates.
*/
type WriteBack[V any] struct {
	store types.Loader[string, V]
	ch    chan writeReq[V]

	// wg waits for the worker to finish during shutdown.
	wg sync.WaitGroup
}

// NewWriteBack starts a write-back policy with the given queue size.
func NewWriteBack[V any](store types.Loader[string, V], buffer int) *WriteBack[V] {
	w := &WriteBack[V]{
		store: store,
		ch:    make(chan writeReq[V], buffer),
	}

	w.wg.Add(1)
	go w.worker()

	return w
}

// OnWrite queues the write. If the queue is full the write is dropped.
func (w *WriteBack[V]) OnWrite(ctx context.Context, key string, value V) {
	select {
	case w.ch <- writeReq[V]{ctx, key, value}:
	default:
		// intentional drop under pressure
	}
}

// worker drains the queue into the backing store. This is where
// eventual consistency happens. Store errors are dropped, same as
// write-through.
func (w *WriteBack[V]) worker() {
	defer w.wg.Done()

	for req := range w.ch {
		_ = w.store.Store(req.ctx, req.key, req.value)
	}
}

/*
Close shuts the policy down gracefully:

1. Close the channel so no more writes are accepted
2. Wait for the worker to finish the writes already queued

Skipping this loses whatever was still queued at shutdown.
*/
func (w *WriteBack[V]) Close() {
	close(w.ch)
	w.wg.Wait()
}
