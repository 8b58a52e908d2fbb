package cache

import (
	"container/list"
	"sync"
	"time"
)

type ttlEntry[K comparable, V any] struct {
	key      K
	value    V
	insertAt time.Time
}

// TTLCache is a thread-safe memoization store whose entries expire a fixed
// duration after insertion. Expired entries are never returned and are swept
// on the next Get or Set; there is no background goroutine.
type TTLCache[K comparable, V any] struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	items      map[K]*list.Element
	order      *list.List // front is the most recently inserted entry
	mu         sync.Mutex
	onEvict    func(key K, value V) // Called for expired, displaced and cleared entries
	stats      Stats
}

// Stats holds cache counters since construction. Clear does not reset them.
type Stats struct {
	Hits        uint64
	Misses      uint64
	Expirations uint64
	Evictions   uint64
}

// TTLOption configures a TTLCache.
type TTLOption[K comparable, V any] func(*TTLCache[K, V])

// WithClock replaces time.Now, mostly useful to simulate time jumps in tests.
func WithClock[K comparable, V any](now func() time.Time) TTLOption[K, V] {
	return func(c *TTLCache[K, V]) {
		if now != nil {
			c.now = now
		}
	}
}

// WithMaxEntries bounds the number of live entries. When the bound is hit the
// oldest insertion is evicted. Zero or negative means unbounded.
func WithMaxEntries[K comparable, V any](n int) TTLOption[K, V] {
	return func(c *TTLCache[K, V]) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithEvictCallback registers a callback invoked for every entry leaving the cache.
func WithEvictCallback[K comparable, V any](fn func(key K, value V)) TTLOption[K, V] {
	return func(c *TTLCache[K, V]) { c.onEvict = fn }
}

// NewTTLCache creates a cache whose entries live for ttl.
// The ttl must be positive, otherwise it panics.
func NewTTLCache[K comparable, V any](ttl time.Duration, opts ...TTLOption[K, V]) *TTLCache[K, V] {
	if ttl <= 0 {
		panic("TTL cache ttl must be positive")
	}
	c := &TTLCache[K, V]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[K]*list.Element),
		order: list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL returns the fixed entry lifetime.
func (c *TTLCache[K, V]) TTL() time.Duration { return c.ttl }

// Get returns the live value stored under key.
// Returns the value and true if found, zero value and false otherwise.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep()

	if elem, ok := c.items[key]; ok {
		c.stats.Hits++
		return elem.Value.(*ttlEntry[K, V]).value, true
	}

	c.stats.Misses++
	var zero V
	return zero, false
}

// Set stores value under key, restarting its lifetime.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep()

	now := c.now()
	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*ttlEntry[K, V])
		entry.value = value
		entry.insertAt = now
		c.order.MoveToFront(elem)
		return
	}

	c.items[key] = c.order.PushFront(&ttlEntry[K, V]{key: key, value: value, insertAt: now})

	if c.maxEntries > 0 && c.order.Len() > c.maxEntries {
		if oldest := c.order.Back(); oldest != nil {
			c.stats.Evictions++
			c.removeElement(oldest)
		}
	}
}

// Remove deletes key and reports whether a live entry existed.
func (c *TTLCache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sweep()

	if elem, ok := c.items[key]; ok {
		entry := elem.Value.(*ttlEntry[K, V])
		c.removeElement(elem)
		return entry.value, true
	}

	var zero V
	return zero, false
}

// DeleteExpired sweeps expired entries without reading or writing any key.
func (c *TTLCache[K, V]) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sweep()
}

// Len returns the number of stored entries. Entries that expired since the
// last Get or Set are still counted until the next sweep.
func (c *TTLCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Keys returns stored keys from newest to oldest insertion.
func (c *TTLCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*ttlEntry[K, V]).key)
	}
	return keys
}

// Stats returns a snapshot of the cache counters.
func (c *TTLCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Clear removes all entries. Counters keep running.
// If an evict callback is set, it's called for each item.
func (c *TTLCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onEvict != nil {
		for elem := c.order.Front(); elem != nil; elem = elem.Next() {
			entry := elem.Value.(*ttlEntry[K, V])
			c.onEvict(entry.key, entry.value)
		}
	}

	c.items = make(map[K]*list.Element)
	c.order.Init()
}

// Must be called with lock held.
// The walk covers every entry: the clock is injectable and may move backwards,
// so insertion order does not imply expiry order.
func (c *TTLCache[K, V]) sweep() {
	now := c.now()
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if now.Sub(elem.Value.(*ttlEntry[K, V]).insertAt) >= c.ttl {
			c.stats.Expirations++
			c.removeElement(elem)
		}
		elem = prev
	}
}

// Must be called with lock held.
func (c *TTLCache[K, V]) removeElement(elem *list.Element) {
	c.order.Remove(elem)
	entry := elem.Value.(*ttlEntry[K, V])
	delete(c.items, entry.key)

	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}
