// Package recency tracks cache entries in the order they were last
// touched, from least recently touched (oldest) to most recently
// touched (newest).
//
// The queue is a doubly linked list laid out in an arena: nodes live in
// a slice and link to each other by index, not by pointer. A Handle is
// the index of an entry's slot and stays valid until that entry is
// removed. Freed slots are recycled through a free list, so handles of
// live entries never move.
//
// Linking by index instead of pointer keeps every splice a pair of
// slice assignments and makes it impossible for a node to alias itself
// through a stale pointer.
package recency

import "github.com/emilybidder/agecache/types"

// Handle addresses one queue slot. It is only meaningful to the queue
// that issued it, and only until the entry is removed.
type Handle int

// None is the null handle.
const None Handle = -1

// node is one arena slot. prev points toward the oldest end, next
// toward the newest end.
type node[K comparable, V any] struct {
	entry types.Entry[K, V]
	prev  Handle
	next  Handle
}

// Queue is an ordered sequence of entries, oldest first.
//
// All operations are O(1). Queue is not safe for concurrent use; its
// owner serializes access.
type Queue[K comparable, V any] struct {
	nodes  []node[K, V]
	free   []Handle // recycled slots, used LIFO
	oldest Handle
	newest Handle
	length int
}

func NewQueue[K comparable, V any]() *Queue[K, V] {
	return &Queue[K, V]{
		oldest: None,
		newest: None,
	}
}

// Len returns the number of entries currently in the queue.
func (q *Queue[K, V]) Len() int {
	return q.length
}

// PushNewest appends the entry at the newest end and returns its
// handle. If the queue was empty the entry becomes both oldest and
// newest.
func (q *Queue[K, V]) PushNewest(entry types.Entry[K, V]) Handle {
	h := q.alloc()
	q.nodes[h] = node[K, V]{entry: entry, prev: q.newest, next: None}

	if q.newest != None {
		q.nodes[q.newest].next = h
	} else {
		q.oldest = h
	}
	q.newest = h

	q.length++
	return h
}

// PopOldest removes and returns the oldest entry. The second return is
// false if the queue is empty.
func (q *Queue[K, V]) PopOldest() (types.Entry[K, V], bool) {
	if q.oldest == None {
		var zero types.Entry[K, V]
		return zero, false
	}
	return q.Remove(q.oldest), true
}

// PeekOldest returns a copy of the oldest entry without removing it.
// The second return is false if the queue is empty.
func (q *Queue[K, V]) PeekOldest() (types.Entry[K, V], bool) {
	if q.oldest == None {
		var zero types.Entry[K, V]
		return zero, false
	}
	return q.nodes[q.oldest].entry, true
}

// Remove unlinks the entry at h, wherever it sits, and returns it.
// h must be the handle of a live entry; after Remove it is invalid and
// its slot may be reissued by a later PushNewest.
func (q *Queue[K, V]) Remove(h Handle) types.Entry[K, V] {
	n := q.nodes[h]

	if n.prev != None {
		q.nodes[n.prev].next = n.next
	} else {
		q.oldest = n.next
	}
	if n.next != None {
		q.nodes[n.next].prev = n.prev
	} else {
		q.newest = n.prev
	}

	// Zero the slot so the arena doesn't pin the removed key/value.
	q.nodes[h] = node[K, V]{prev: None, next: None}
	q.free = append(q.free, h)

	q.length--
	return n.entry
}

// Keys returns the keys in queue order, oldest first.
func (q *Queue[K, V]) Keys() []K {
	keys := make([]K, 0, q.length)
	for h := q.oldest; h != None; h = q.nodes[h].next {
		keys = append(keys, q.nodes[h].entry.Key)
	}
	return keys
}

// alloc takes a slot from the free list, or grows the arena.
func (q *Queue[K, V]) alloc() Handle {
	if n := len(q.free); n > 0 {
		h := q.free[n-1]
		q.free = q.free[:n-1]
		return h
	}
	q.nodes = append(q.nodes, node[K, V]{})
	return Handle(len(q.nodes) - 1)
}
