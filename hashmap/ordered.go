package hashmap

import (
	"github.com/molecula/coffer/errors"
)

// OrderedMap is a Map that additionally remembers insertion order:
// lookups go through the hash table, iteration walks an intrusive doubly
// linked list of entries from oldest to newest. Replacing a value keeps
// the key's original position.
type OrderedMap[K, V any] struct {
	m    *Map[K, *orderedEntry[K, V]]
	head *orderedEntry[K, V]
	tail *orderedEntry[K, V]
}

type orderedEntry[K, V any] struct {
	key   K
	value V
	prev  *orderedEntry[K, V]
	next  *orderedEntry[K, V]
}

// NewOrdered returns an empty OrderedMap. Options are the same as for
// New.
func NewOrdered[K, V any](hash HashFunc[K], equal EqualFunc[K], opts ...Option) (*OrderedMap[K, V], error) {
	m, err := New[K, *orderedEntry[K, V]](hash, equal, opts...)
	if err != nil {
		return nil, err
	}
	return &OrderedMap[K, V]{m: m}, nil
}

// Len returns the number of live entries.
func (om *OrderedMap[K, V]) Len() int {
	return om.m.Len()
}

// Put maps key to value, appending new keys to the iteration order.
func (om *OrderedMap[K, V]) Put(key K, value V) (old V, replaced bool) {
	if e, ok := om.m.Get(key); ok {
		old = e.value
		e.value = value
		return old, true
	}
	e := &orderedEntry[K, V]{key: key, value: value, prev: om.tail}
	if om.tail != nil {
		om.tail.next = e
	} else {
		om.head = e
	}
	om.tail = e
	om.m.Put(key, e)
	return old, false
}

// Get returns the value mapped to key.
func (om *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, ok := om.m.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetRequired is Get for callers that treat absence as a failure.
func (om *OrderedMap[K, V]) GetRequired(key K) (V, error) {
	e, ok := om.m.Get(key)
	if !ok {
		var zero V
		return zero, errors.New(errors.KeyNotFound, "key not found in map")
	}
	return e.value, nil
}

// ContainsKey reports whether key is mapped.
func (om *OrderedMap[K, V]) ContainsKey(key K) bool {
	return om.m.ContainsKey(key)
}

// Remove unmaps key and unlinks it from the iteration order.
func (om *OrderedMap[K, V]) Remove(key K) (V, bool) {
	e, ok := om.m.Remove(key)
	if !ok {
		var zero V
		return zero, false
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		om.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		om.tail = e.prev
	}
	e.prev, e.next = nil, nil
	return e.value, true
}

// ForEach calls fn for every entry in insertion order until fn returns
// false.
func (om *OrderedMap[K, V]) ForEach(fn func(key K, value V) bool) {
	for e := om.head; e != nil; e = e.next {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// Keys returns the mapped keys in insertion order.
func (om *OrderedMap[K, V]) Keys() []K {
	out := make([]K, 0, om.Len())
	om.ForEach(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}
