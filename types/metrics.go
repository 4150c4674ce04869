package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache calls
these methods whenever the event happens.
*/
type Metrics interface {

	// Hit is called when Get finds a key and returns its value.
	Hit()

	// Miss is called when Get does NOT find a key.
	Miss()

	// Expire is called once per entry removed by the expiration sweep.
	Expire()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

We don't want to force every user of the cache to implement metrics,
and we don't want nil checks on every event site. Users who don't care
get this default and the cache just works.
*/
type NoopMetrics struct{}

// All methods below intentionally do nothing.

func (NoopMetrics) Hit()    {}
func (NoopMetrics) Miss()   {}
func (NoopMetrics) Expire() {}
