// This file defines how cache entries expire over time.

package expiration

import (
	"time"

	"github.com/emilybidder/agecache/types"
)

/*
Strategy is the interface an expiration rule must follow. Instead of
hard-coding the aging logic into the cache, the rule is a strategy the
cache consults, which keeps "when is an entry too old" in one place.

The strategy never removes anything itself. The cache decides when to
ask and what to do with the answer.
*/
type Strategy[K comparable, V any] interface {

	// IsExpired reports whether the entry is too old to keep at the
	// given instant.
	IsExpired(ent *types.Entry[K, V], now time.Time) bool

	// OnAccess is called whenever an entry is read successfully.
	OnAccess(ent *types.Entry[K, V], now time.Time)

	// OnWrite is called whenever an entry is written.
	OnWrite(ent *types.Entry[K, V], now time.Time)
}
