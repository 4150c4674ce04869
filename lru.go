package agecache

import (
	"errors"
	"time"

	"github.com/emilybidder/agecache/expiration"
	"github.com/emilybidder/agecache/recency"
	"github.com/emilybidder/agecache/types"
)

/*
LRUCache is the cache implementation. It composes two structures that
must stay exactly in sync:

- items maps each key to the handle of its node in the recency queue
- queue orders the entries from least to most recently touched

A key is in items if and only if its entry is in the queue, and the
handle in items always addresses that entry. Every mutation below
updates both structures together; any divergence is a bug, not a state
the cache can recover from.

LRUCache is not safe for concurrent use.
*/
type LRUCache[K comparable, V any] struct {
	lifetime time.Duration
	expiry   expiration.Strategy[K, V]
	clock    types.Clock
	metrics  types.Metrics

	items map[K]recency.Handle
	queue *recency.Queue[K, V]
}

// compile-time check that LRUCache satisfies the public contract
var _ Cache[string, any] = (*LRUCache[string, any])(nil)

/*
New creates a cache whose entries expire once they have gone untouched
for the given lifetime. The lifetime applies uniformly to every entry
and cannot be changed afterwards.

A non-positive lifetime is rejected: it would make every entry expired
the moment it is written.
*/
func New[K comparable, V any](lifetime time.Duration, options ...Option[K, V]) (*LRUCache[K, V], error) {
	if lifetime <= 0 {
		return nil, errors.New("lifetime must be positive")
	}

	c := &LRUCache[K, V]{
		lifetime: lifetime,
		expiry:   &expiration.SinceLastAccess[K, V]{Lifetime: lifetime},
		clock:    types.SystemClock{},
		metrics:  types.NoopMetrics{},
		items:    make(map[K]recency.Handle),
		queue:    recency.NewQueue[K, V](),
	}

	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

/*
Get retrieves the value for key.

On a hit the entry is spliced to the newest end of the queue and its
lifetime restarts from now. Moving it is a remove followed by a
re-append; there is deliberately no special case for an entry that is
already newest.

Get never expires anything. An entry older than the lifetime is still
a hit here; only the sweep at the end of a Put removes it. On a miss
nothing is touched at all.
*/
func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	h, ok := c.items[key]
	if !ok {
		c.metrics.Miss()
		var zero V
		return zero, false
	}

	ent := c.queue.Remove(h)
	c.expiry.OnAccess(&ent, c.clock.Now())
	c.items[key] = c.queue.PushNewest(ent)

	c.metrics.Hit()
	return ent.Value, true
}

/*
Put stores a key-value pair and then sweeps expired entries.

If the key already has an entry, that entry is discarded entirely; the
replacement is a fresh entry with a fresh timestamp at the newest
position. Put never fails.

Cost is O(1) plus O(k) for the k entries the sweep evicts; since each
entry is inserted once and evicted at most once, the sweep is O(1)
amortized.
*/
func (c *LRUCache[K, V]) Put(key K, value V) {
	now := c.clock.Now()

	if h, ok := c.items[key]; ok {
		c.queue.Remove(h)
		delete(c.items, key)
	}

	ent := types.Entry[K, V]{Key: key, Value: value}
	c.expiry.OnWrite(&ent, now)
	c.items[key] = c.queue.PushNewest(ent)

	c.sweep(now)
}

// Len returns the number of entries currently in the cache, including
// any that have aged past the lifetime but not yet been swept.
func (c *LRUCache[K, V]) Len() int {
	return len(c.items)
}

// Keys returns the keys in recency order, least recently touched
// first. This is a debug/inspection helper.
func (c *LRUCache[K, V]) Keys() []K {
	return c.queue.Keys()
}

/*
sweep removes expired entries from the oldest end of the queue.

It only ever looks at the oldest entry: the queue is ordered by last
touch, so the moment the oldest entry is within its lifetime, every
entry behind it is too and the sweep can stop.
*/
func (c *LRUCache[K, V]) sweep(now time.Time) {
	for {
		oldest, ok := c.queue.PeekOldest()
		if !ok || !c.expiry.IsExpired(&oldest, now) {
			return
		}

		c.queue.PopOldest()
		delete(c.items, oldest.Key)
		c.metrics.Expire()
	}
}
