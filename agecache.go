/*
Package agecache implements an in-memory key-value cache that keeps
entries in least-recently-used order and expires them once a fixed
lifetime has passed since they were last touched.

There is no entry-count limit: eviction is driven purely by age. Reads
refresh an entry's lifetime and recency but never evict; expired
entries are swept out at the end of every write, oldest first.

The core cache is single-owner: it is NOT safe for concurrent use, and
callers that share one across goroutines must serialize access
themselves. LoadingCache is one such caller, adding a mutex together
with read-through loading and write policies.
*/
package agecache

/*
Cache is the public contract of the cache. Everything else (the recency
queue, the key index, the expiration sweep) is hidden behind these two
operations.
*/
type Cache[K comparable, V any] interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		---------
		- Hit: the entry becomes the most recently used, its lifetime
		  restarts, and its value is returned with true.
		- Miss: returns the zero value and false, with no side effects.

		Get never removes entries, even ones older than the lifetime.
		A stale entry is served as a hit until the next Put sweeps it.
	*/
	Get(key K) (V, bool)

	/*
		Put stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- Any existing entry for the key is discarded first; an update
		  is always a fresh entry, never an in-place edit.
		- The new entry is inserted at the most recently used position.
		- Every entry whose age exceeds the lifetime is then swept out,
		  oldest first.

		Put always succeeds.
	*/
	Put(key K, value V)
}
