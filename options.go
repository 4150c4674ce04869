package agecache

import (
	"errors"

	"github.com/emilybidder/agecache/types"
)

// Option configures an LRUCache during construction. Options may fail,
// in which case New returns the error.
type Option[K comparable, V any] func(*LRUCache[K, V]) error

// WithClock replaces the time source. Tests use this to drive
// expiration with a manual clock instead of sleeping.
func WithClock[K comparable, V any](clock types.Clock) Option[K, V] {
	return func(c *LRUCache[K, V]) error {
		if clock == nil {
			return errors.New("clock must not be nil")
		}
		c.clock = clock
		return nil
	}
}

// WithMetrics installs a metrics implementation. The default discards
// every event.
func WithMetrics[K comparable, V any](metrics types.Metrics) Option[K, V] {
	return func(c *LRUCache[K, V]) error {
		if metrics == nil {
			return errors.New("metrics must not be nil")
		}
		c.metrics = metrics
		return nil
	}
}
