package types

import "time"

// Entry is one key-value record held by the cache.
//
// LastAccessedAt is mutable: it is refreshed whenever the entry is
// touched. Value is not mutable in place; replacing a value means
// discarding the whole entry and inserting a fresh one.
type Entry[K comparable, V any] struct {
	Key            K
	Value          V
	LastAccessedAt time.Time
}
