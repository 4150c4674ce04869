package agecache

import (
	"context"
	"errors"
	"sync"

	"github.com/emilybidder/agecache/types"
	"github.com/emilybidder/agecache/writepolicy"
	"golang.org/x/sync/singleflight"
)

/*
LoadingCache wraps the core cache with the pieces a read-through
deployment needs:

- a Loader that fetches missing keys from the backing store
- singleflight, so that 100 goroutines asking for the same missing key
  trigger ONE load while the rest wait for its result
- an optional WritePolicy that forwards writes to the backing store
- a mutex serializing access to the core cache

The core cache itself is single-owner and not goroutine-safe; the
mutex here is exactly the external serialization its contract asks the
surrounding system to provide. Keys are strings because singleflight
groups loads by string key.
*/
type LoadingCache[V any] struct {
	mu    sync.Mutex
	cache *LRUCache[string, V]

	loader types.Loader[string, V]
	write  writepolicy.WritePolicy[V]
	sf     singleflight.Group
}

// NewLoadingCache wraps an already constructed core cache. The loader
// is required; the write policy may be nil, in which case writes stay
// in memory only.
func NewLoadingCache[V any](
	cache *LRUCache[string, V],
	loader types.Loader[string, V],
	write writepolicy.WritePolicy[V],
) (*LoadingCache[V], error) {
	if cache == nil {
		return nil, errors.New("cache must not be nil")
	}
	if loader == nil {
		return nil, errors.New("loader must not be nil")
	}

	return &LoadingCache[V]{
		cache:  cache,
		loader: loader,
		write:  write,
	}, nil
}

/*
Get returns the cached value for key, loading it from the backing
store on a miss.

The in-memory hit path is the core cache's Get: the entry is touched
and returned. On a miss the loader runs outside the cache lock (loads
can be slow; holding the lock would stall every other caller), then
the loaded value is written back through Put.
*/
func (l *LoadingCache[V]) Get(ctx context.Context, key string) (V, error) {
	l.mu.Lock()
	if v, ok := l.cache.Get(key); ok {
		l.mu.Unlock()
		return v, nil
	}
	l.mu.Unlock()

	loaded, err, _ := l.sf.Do(key, func() (any, error) {
		return l.loader.Load(ctx, key)
	})
	if err != nil {
		var zero V
		return zero, err
	}

	value := loaded.(V)
	l.Put(ctx, key, value)
	return value, nil
}

// Put stores the pair in the core cache and forwards the write to the
// backing store according to the configured write policy.
func (l *LoadingCache[V]) Put(ctx context.Context, key string, value V) {
	l.mu.Lock()
	l.cache.Put(key, value)
	l.mu.Unlock()

	if l.write != nil {
		l.write.OnWrite(ctx, key, value)
	}
}

// Len reports the number of entries currently held in memory.
func (l *LoadingCache[V]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache.Len()
}

// Close flushes the write policy. Important for write-back, where
// queued writes would otherwise be lost at shutdown.
func (l *LoadingCache[V]) Close() {
	if l.write != nil {
		l.write.Close()
	}
}
