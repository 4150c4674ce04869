package writepolicy

import "context"

/*
This file defines what a "write policy" is.

When the loading cache writes a key, something may also have to happen
at the backing store. Different systems want different behavior:
- write-through for strong consistency
- write-back for throughput

Instead of hard-coding one behavior, the policy is an interface so
either can be plugged in.
*/

/*
WritePolicy is the contract every write policy must follow. The loading
cache does not care which policy is used; it simply calls these
methods.
*/
type WritePolicy[V any] interface {

	// OnWrite is called whenever the cache writes a key.
	OnWrite(ctx context.Context, key string, value V)

	// Close is called when the cache is shutting down. Policies with
	// pending work flush it here.
	Close()
}
