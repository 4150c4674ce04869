package expiration

import (
	"time"

	"github.com/emilybidder/agecache/types"
)

/*
SinceLastAccess expires an entry once a fixed lifetime has elapsed
since the entry was last touched. Every read pushes the entry's clock
forward: data that keeps getting used stays alive, data nobody touches
ages out.

An entry whose age exactly equals the lifetime is still live; it
expires only once its age is strictly greater.
*/
type SinceLastAccess[K comparable, V any] struct {

	// Lifetime is how long an entry remains valid after its last
	// access.
	Lifetime time.Duration
}

// IsExpired checks whether the entry was last touched longer than
// Lifetime ago.
func (s *SinceLastAccess[K, V]) IsExpired(ent *types.Entry[K, V], now time.Time) bool {
	return now.Sub(ent.LastAccessedAt) > s.Lifetime
}

// OnAccess restarts the entry's lifetime from now.
func (s *SinceLastAccess[K, V]) OnAccess(ent *types.Entry[K, V], now time.Time) {
	ent.LastAccessedAt = now
}

// OnWrite stamps a freshly written entry. Writes and reads count the
// same: both restart the lifetime.
func (s *SinceLastAccess[K, V]) OnWrite(ent *types.Entry[K, V], now time.Time) {
	ent.LastAccessedAt = now
}
