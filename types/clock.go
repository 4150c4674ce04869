package types

import "time"

/*
Clock is how the cache reads "now".

Expiration is entirely driven by elapsed time, so the time source must
be swappable:
- Production uses the wall clock (SystemClock)
- Tests use a manual clock they can advance explicitly

This keeps expiration tests deterministic. No test should ever sleep
just to age an entry.
*/
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. This is the default.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
