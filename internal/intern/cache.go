package intern

import (
	"runtime"
	"sync"
	"sync/atomic"
	"weak"
)

// Cache interns *V values by key. The zero value is not usable; call New.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]weak.Pointer[V]

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Entries   int    `json:"entries"`
	Hits      uint64 `json:"hits"`
	Misses    uint64 `json:"misses"`
	Evictions uint64 `json:"evictions"`
}

// slot identifies the weak pointer a cleanup was registered for.
type slot[K comparable, V any] struct {
	key K
	ptr weak.Pointer[V]
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{entries: make(map[K]weak.Pointer[V])}
}

// GetOrCreate returns the live instance for key, or stores and returns the
// result of create. create runs with the cache locked and must not call back
// into the same cache. It must return a non-nil pointer.
func (c *Cache[K, V]) GetOrCreate(key K, create func() *V) *V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if wp, ok := c.entries[key]; ok {
		if v := wp.Value(); v != nil {
			c.hits.Add(1)
			return v
		}
	}

	c.misses.Add(1)
	v := create()
	wp := weak.Make(v)
	c.entries[key] = wp
	runtime.AddCleanup(v, c.evict, slot[K, V]{key: key, ptr: wp})
	return v
}

// Get returns the live instance for key, if any.
func (c *Cache[K, V]) Get(key K) (*V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wp, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	v := wp.Value()
	return v, v != nil
}

// Len returns the number of slots, including slots whose instance has been
// collected but not yet cleaned up.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the current counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Entries:   c.Len(),
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// evict removes s.key only if it still refers to s.ptr. A slot that has been
// refilled since s was registered belongs to a newer instance.
func (c *Cache[K, V]) evict(s slot[K, V]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cur, ok := c.entries[s.key]; ok && cur == s.ptr {
		delete(c.entries, s.key)
		c.evictions.Add(1)
	}
}
