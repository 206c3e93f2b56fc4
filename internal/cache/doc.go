// Package cache provides the append-only memoization store behind the
// pattern cache.
//
// Entries are immutable once published: there is no eviction, no update
// and no delete. Two publication paths are offered:
//
//	c := cache.New[string, int]()
//
//	// Coarse: the whole check→create→publish sequence runs under one lock.
//	v, created, err := c.GetOrCreate("key", build)
//
//	// Fine-grained: callers coordinate construction themselves (for
//	// example with a single-flight group) and publish the result.
//	if _, ok := c.Get("key"); !ok {
//		v, _ = c.Add("key", build())
//	}
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
