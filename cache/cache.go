// Package cache provides a bounded least-recently-used cache built on
// the hashmap package.
package cache

import (
	"github.com/molecula/coffer/errors"
	"github.com/molecula/coffer/hashmap"
)

// EvictFunc is called with each entry pushed out of a full cache.
type EvictFunc[K, V any] func(key K, value V)

// LRU is a mapping that holds at most maxEntries entries, discarding
// the least recently used entry when a new key would exceed the bound.
// Put and Get both count as a use. It is structured like an insertion
// ordered map, except that the intrusive list tracks access order with
// the most recent entry at the front.
type LRU[K, V any] struct {
	m          *hashmap.Map[K, *lruEntry[K, V]]
	head       *lruEntry[K, V]
	tail       *lruEntry[K, V]
	maxEntries int
	onEvicted  EvictFunc[K, V]
}

type lruEntry[K, V any] struct {
	key   K
	value V
	prev  *lruEntry[K, V]
	next  *lruEntry[K, V]
}

// New returns an empty LRU bounded to maxEntries. A maxEntries of zero
// means no bound. onEvicted may be nil.
func New[K, V any](hash hashmap.HashFunc[K], equal hashmap.EqualFunc[K], maxEntries int, onEvicted EvictFunc[K, V]) (*LRU[K, V], error) {
	if maxEntries < 0 {
		return nil, errors.Newf(errors.InvalidConfiguration, "max entries must be non-negative, got %d", maxEntries)
	}
	m, err := hashmap.New[K, *lruEntry[K, V]](hash, equal)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{m: m, maxEntries: maxEntries, onEvicted: onEvicted}, nil
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	return c.m.Len()
}

// Put caches value under key, marking it most recently used. If the
// cache is full the least recently used entry is evicted.
func (c *LRU[K, V]) Put(key K, value V) {
	if e, ok := c.m.Get(key); ok {
		e.value = value
		c.moveToFront(e)
		return
	}
	e := &lruEntry[K, V]{key: key, value: value, next: c.head}
	if c.head != nil {
		c.head.prev = e
	} else {
		c.tail = e
	}
	c.head = e
	c.m.Put(key, e)
	if c.maxEntries > 0 && c.m.Len() > c.maxEntries {
		c.evictOldest()
	}
}

// Get returns the value cached under key and marks it most recently
// used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	e, ok := c.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

// Peek returns the value cached under key without disturbing the
// access order.
func (c *LRU[K, V]) Peek(key K) (V, bool) {
	e, ok := c.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Remove drops key from the cache. The eviction callback is not
// invoked for explicit removals.
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	e, ok := c.m.Remove(key)
	if !ok {
		var zero V
		return zero, false
	}
	c.unlink(e)
	return e.value, true
}

// Keys returns the cached keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	out := make([]K, 0, c.Len())
	for e := c.head; e != nil; e = e.next {
		out = append(out, e.key)
	}
	return out
}

// ForEach calls fn for every entry from most to least recently used
// until fn returns false. fn must not mutate the cache.
func (c *LRU[K, V]) ForEach(fn func(key K, value V) bool) {
	for e := c.head; e != nil; e = e.next {
		if !fn(e.key, e.value) {
			return
		}
	}
}

func (c *LRU[K, V]) evictOldest() {
	e := c.tail
	if e == nil {
		return
	}
	c.m.Remove(e.key)
	c.unlink(e)
	if c.onEvicted != nil {
		c.onEvicted(e.key, e.value)
	}
}

func (c *LRU[K, V]) moveToFront(e *lruEntry[K, V]) {
	if c.head == e {
		return
	}
	c.unlink(e)
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	} else {
		c.tail = e
	}
	c.head = e
}

func (c *LRU[K, V]) unlink(e *lruEntry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}
