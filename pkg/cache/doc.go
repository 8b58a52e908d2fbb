// Package cache provides a generic, thread-safe time-to-live memoization store.
//
// Every entry expires a fixed duration after it was inserted. There is no
// background goroutine: expired entries are swept opportunistically at the
// start of every Get, Set and Remove, so the cost of a sweep is bounded by the
// number of distinct keys held, not by call volume.
//
// # Key Features
//
//   - Generic implementation supporting any comparable key type and any value type
//   - Fixed TTL chosen once at construction
//   - Optional capacity bound evicting the oldest insertion
//   - Injectable clock for simulating time jumps in tests
//   - Introspection via Len, Keys and Stats
//
// # Usage
//
//	c := cache.NewTTLCache[string, bool](5 * time.Minute)
//
//	c.Set("mobile|Mozilla/5.0 ...", true)
//
//	if v, ok := c.Get("mobile|Mozilla/5.0 ..."); ok {
//		// use v
//	}
//
//	log.Printf("entries=%d keys=%v", c.Len(), c.Keys())
//	c.Clear()
//
// # Testing
//
// Use WithClock to control expiry deterministically:
//
//	now := time.Now()
//	c := cache.NewTTLCache(time.Minute, cache.WithClock[string, int](func() time.Time { return now }))
//	c.Set("a", 1)
//	now = now.Add(time.Minute) // "a" is expired from here on
//
// # Thread Safety
//
// All operations take a single mutex. Len reports stored entries without
// sweeping, so it may include entries that expired since the last access.
package cache
