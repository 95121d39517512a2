// Package hashmap implements a hash-table mapping with chained buckets,
// collision-chain-to-tree escalation, and grow-by-doubling.
//
// Each bucket is either empty, a chain of entries, or, once a chain
// crosses the treeify threshold in a large enough table, a red-black
// tree ordered by (hash, insertion sequence). Growing splits every old
// bucket into two destination buckets selected by the new high bit of the
// stored hash; tree buckets whose split halves shrink enough revert to
// chains. Iteration order is unspecified and may change across grows.
//
// Map is not safe for concurrent use. Callers requiring concurrency wrap
// a map behind their own synchronization, either one lock around all
// operations or a sharded scheme layered above multiple maps.
package hashmap

import (
	"github.com/molecula/coffer/errors"
	"github.com/molecula/coffer/logger"
	"github.com/molecula/coffer/rbtree"
)

// Map is a hash-table mapping from K to V. The bucket array length is
// always a power of two so indexing can mask instead of mod.
type Map[K, V any] struct {
	buckets []bucket[K, V]
	size    int
	seq     uint64
	hash    HashFunc[K]
	equal   EqualFunc[K]
	cfg     Config
	log     logger.Logger
}

// entry is one key/value pair. seq is the insertion sequence number used
// to break ties between equal-hash distinct keys in tree buckets.
type entry[K, V any] struct {
	hash  uint64
	seq   uint64
	key   K
	value V
	next  *entry[K, V]
}

// treeKey orders tree-bucket members by hash, then insertion sequence.
type treeKey struct {
	hash uint64
	seq  uint64
}

func compareTreeKeys(a, b treeKey) int {
	switch {
	case a.hash < b.hash:
		return -1
	case a.hash > b.hash:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	default:
		return 0
	}
}

// bucket is a tagged union: a chain when tree is nil, an escalated tree
// otherwise. Never both.
type bucket[K, V any] struct {
	head *entry[K, V]
	tree *rbtree.Tree[treeKey, *entry[K, V]]
}

// New returns an empty Map. hash and equal are required; see HashFunc for
// the contract between them.
func New[K, V any](hash HashFunc[K], equal EqualFunc[K], opts ...Option) (*Map[K, V], error) {
	if hash == nil {
		return nil, errors.New(errors.InvalidConfiguration, "hash function is required")
	}
	if equal == nil {
		return nil, errors.New(errors.InvalidConfiguration, "equality function is required")
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logger.NopLogger
	}
	return &Map[K, V]{
		hash:  hash,
		equal: equal,
		cfg:   cfg,
		log:   log,
	}, nil
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Get returns the value mapped to key. Absence is a normal result: the
// bool distinguishes "mapped to the zero value" from "not mapped".
func (m *Map[K, V]) Get(key K) (V, bool) {
	e := m.lookup(key)
	if e == nil {
		var zero V
		return zero, false
	}
	return e.value, true
}

// GetRequired is Get for callers that treat absence as a failure.
func (m *Map[K, V]) GetRequired(key K) (V, error) {
	e := m.lookup(key)
	if e == nil {
		var zero V
		return zero, errors.New(errors.KeyNotFound, "key not found in map")
	}
	return e.value, nil
}

// ContainsKey reports whether key is mapped.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.lookup(key) != nil
}

// Put maps key to value. If key was already mapped its value is replaced
// and the old value returned with replaced == true.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	if m.buckets == nil {
		m.buckets = make([]bucket[K, V], nextPow2(m.cfg.InitialCapacity))
	}
	h := spread(m.hash(key))
	b := &m.buckets[h&m.mask()]

	if b.tree != nil {
		if e := m.treeLookup(b, h, key); e != nil {
			old = e.value
			e.value = value
			return old, true
		}
		e := &entry[K, V]{hash: h, seq: m.nextSeq(), key: key, value: value}
		b.tree.Put(treeKey{hash: h, seq: e.seq}, e)
		m.size++
		if m.size > m.threshold() {
			m.grow()
		}
		return old, false
	}

	chainLen := 0
	var last *entry[K, V]
	for e := b.head; e != nil; e = e.next {
		chainLen++
		if e.hash == h && m.equal(e.key, key) {
			old = e.value
			e.value = value
			return old, true
		}
		last = e
	}

	e := &entry[K, V]{hash: h, seq: m.nextSeq(), key: key, value: value}
	if last == nil {
		b.head = e
	} else {
		last.next = e
	}
	m.size++
	chainLen++

	grown := false
	if chainLen >= m.cfg.TreeifyThreshold {
		if len(m.buckets) < m.cfg.MinTreeifyCapacity {
			// Table too small to justify a tree; growing spreads the
			// chain out instead.
			m.grow()
			grown = true
		} else {
			m.treeify(b)
		}
	}
	if !grown && m.size > m.threshold() {
		m.grow()
	}
	return old, false
}

// Remove unmaps key, returning the removed value. Removal never
// de-escalates a tree bucket; that only happens on a grow-driven split.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	var zero V
	if m.size == 0 {
		return zero, false
	}
	h := spread(m.hash(key))
	b := &m.buckets[h&m.mask()]

	if b.tree != nil {
		e := m.treeLookup(b, h, key)
		if e == nil {
			return zero, false
		}
		b.tree.Delete(treeKey{hash: h, seq: e.seq})
		m.size--
		return e.value, true
	}

	var prev *entry[K, V]
	for e := b.head; e != nil; e = e.next {
		if e.hash == h && m.equal(e.key, key) {
			if prev == nil {
				b.head = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			m.size--
			return e.value, true
		}
		prev = e
	}
	return zero, false
}

// ForEach calls fn for every entry until fn returns false. Order is
// unspecified.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	it := m.Iter()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}

// Keys returns every mapped key in unspecified order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.size)
	m.ForEach(func(k K, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

func (m *Map[K, V]) lookup(key K) *entry[K, V] {
	if m.size == 0 {
		return nil
	}
	h := spread(m.hash(key))
	b := &m.buckets[h&m.mask()]
	if b.tree != nil {
		return m.treeLookup(b, h, key)
	}
	for e := b.head; e != nil; e = e.next {
		if e.hash == h && m.equal(e.key, key) {
			return e
		}
	}
	return nil
}

// treeLookup scans the run of equal-hash members, which are adjacent in
// (hash, seq) order, comparing keys.
func (m *Map[K, V]) treeLookup(b *bucket[K, V], h uint64, key K) *entry[K, V] {
	var found *entry[K, V]
	b.tree.AscendGreaterOrEqual(treeKey{hash: h}, func(k treeKey, e *entry[K, V]) bool {
		if k.hash != h {
			return false
		}
		if m.equal(e.key, key) {
			found = e
			return false
		}
		return true
	})
	return found
}

func (m *Map[K, V]) mask() uint64 {
	return uint64(len(m.buckets) - 1)
}

func (m *Map[K, V]) threshold() int {
	return int(float64(len(m.buckets)) * m.cfg.LoadFactor)
}

func (m *Map[K, V]) nextSeq() uint64 {
	m.seq++
	return m.seq
}

func newBucketTree[K, V any]() *rbtree.Tree[treeKey, *entry[K, V]] {
	return rbtree.NewFunc[treeKey, *entry[K, V]](compareTreeKeys)
}

// treeify escalates a chained bucket into a tree.
func (m *Map[K, V]) treeify(b *bucket[K, V]) {
	t := newBucketTree[K, V]()
	for e := b.head; e != nil; {
		next := e.next
		e.next = nil
		t.Put(treeKey{hash: e.hash, seq: e.seq}, e)
		e = next
	}
	b.head = nil
	b.tree = t
	m.log.Debugf("hashmap: escalated bucket to tree, members=%d cap=%d", t.Len(), len(m.buckets))
}

// grow doubles the bucket array. Every entry lands in one of exactly two
// destination buckets chosen by the new high bit of its stored hash, so
// no full rehash is needed.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([]bucket[K, V], len(old)*2)
	hiBit := uint64(len(old))
	for i := range old {
		b := &old[i]
		switch {
		case b.tree != nil:
			m.splitTree(b, i, hiBit)
		case b.head != nil:
			m.splitChain(b, i, hiBit)
		}
	}
	m.log.Debugf("hashmap: grew to cap=%d size=%d", len(m.buckets), m.size)
}

// splitChain partitions a chain between bucket i and bucket i+hiBit,
// preserving relative entry order.
func (m *Map[K, V]) splitChain(b *bucket[K, V], i int, hiBit uint64) {
	var loHead, loTail, hiHead, hiTail *entry[K, V]
	for e := b.head; e != nil; {
		next := e.next
		e.next = nil
		if e.hash&hiBit == 0 {
			if loTail == nil {
				loHead = e
			} else {
				loTail.next = e
			}
			loTail = e
		} else {
			if hiTail == nil {
				hiHead = e
			} else {
				hiTail.next = e
			}
			hiTail = e
		}
		e = next
	}
	m.buckets[i].head = loHead
	m.buckets[i+int(hiBit)].head = hiHead
}

// splitTree redistributes a tree bucket's members between bucket i and
// bucket i+hiBit. A destination holding at most the untreeify threshold
// reverts to a chain.
func (m *Map[K, V]) splitTree(b *bucket[K, V], i int, hiBit uint64) {
	var lo, hi []*entry[K, V]
	b.tree.Ascend(func(k treeKey, e *entry[K, V]) bool {
		if e.hash&hiBit == 0 {
			lo = append(lo, e)
		} else {
			hi = append(hi, e)
		}
		return true
	})
	m.buckets[i] = m.rebucket(lo)
	m.buckets[i+int(hiBit)] = m.rebucket(hi)
}

func (m *Map[K, V]) rebucket(entries []*entry[K, V]) bucket[K, V] {
	if len(entries) == 0 {
		return bucket[K, V]{}
	}
	if len(entries) <= m.cfg.UntreeifyThreshold {
		var head, tail *entry[K, V]
		for _, e := range entries {
			e.next = nil
			if tail == nil {
				head = e
			} else {
				tail.next = e
			}
			tail = e
		}
		m.log.Debugf("hashmap: de-escalated bucket to chain, members=%d", len(entries))
		return bucket[K, V]{head: head}
	}
	t := newBucketTree[K, V]()
	for _, e := range entries {
		e.next = nil
		t.Put(treeKey{hash: e.hash, seq: e.seq}, e)
	}
	return bucket[K, V]{tree: t}
}

// Iterator walks a Map in unspecified order. Mutating the map during
// iteration is undefined behavior.
type Iterator[K, V any] struct {
	m       *Map[K, V]
	bucket  int
	chain   *entry[K, V]
	pending []*entry[K, V]
	key     K
	value   V
}

// Iter returns an iterator positioned before the first entry.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{m: m}
}

// Next advances to the next entry, returning false when the map is
// exhausted.
func (it *Iterator[K, V]) Next() bool {
	for {
		if it.chain != nil {
			e := it.chain
			it.chain = e.next
			it.key, it.value = e.key, e.value
			return true
		}
		if len(it.pending) > 0 {
			e := it.pending[0]
			it.pending = it.pending[1:]
			it.key, it.value = e.key, e.value
			return true
		}
		if it.bucket >= len(it.m.buckets) {
			return false
		}
		b := &it.m.buckets[it.bucket]
		it.bucket++
		if b.tree != nil {
			it.pending = it.pending[:0]
			b.tree.Ascend(func(_ treeKey, e *entry[K, V]) bool {
				it.pending = append(it.pending, e)
				return true
			})
		} else {
			it.chain = b.head
		}
	}
}

// Key returns the key at the iterator's position. Only valid after a call
// to Next() that returned true.
func (it *Iterator[K, V]) Key() K {
	return it.key
}

// Value returns the value at the iterator's position. Only valid after a
// call to Next() that returned true.
func (it *Iterator[K, V]) Value() V {
	return it.value
}
