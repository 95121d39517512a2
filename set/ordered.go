package set

import (
	"github.com/molecula/coffer/rbtree"
	"golang.org/x/exp/constraints"
)

// Ordered is a sorted set backed by a balanced ordered mapping.
type Ordered[K any] struct {
	t *rbtree.Tree[K, struct{}]
}

// NewOrdered returns an empty Ordered set using the key's natural order.
func NewOrdered[K constraints.Ordered]() *Ordered[K] {
	return &Ordered[K]{t: rbtree.New[K, struct{}]()}
}

// NewOrderedFunc returns an empty Ordered set using cmp.
func NewOrderedFunc[K any](cmp rbtree.CompareFunc[K]) *Ordered[K] {
	return &Ordered[K]{t: rbtree.NewFunc[K, struct{}](cmp)}
}

// Add inserts key, reporting whether it was newly added.
func (s *Ordered[K]) Add(key K) bool {
	_, replaced := s.t.Put(key, struct{}{})
	return !replaced
}

// Remove deletes key, reporting whether it was present.
func (s *Ordered[K]) Remove(key K) bool {
	_, ok := s.t.Delete(key)
	return ok
}

// Contains reports membership.
func (s *Ordered[K]) Contains(key K) bool {
	return s.t.Contains(key)
}

// Len returns the member count.
func (s *Ordered[K]) Len() int {
	return s.t.Len()
}

// Min returns the smallest member.
func (s *Ordered[K]) Min() (K, bool) {
	k, _, ok := s.t.Min()
	return k, ok
}

// Max returns the largest member.
func (s *Ordered[K]) Max() (K, bool) {
	k, _, ok := s.t.Max()
	return k, ok
}

// ForEach calls fn for every member in sorted order until fn returns
// false.
func (s *Ordered[K]) ForEach(fn func(key K) bool) {
	s.t.Ascend(func(k K, _ struct{}) bool {
		return fn(k)
	})
}

// ForEachRange calls fn in sorted order for members with ge <= key < lt.
func (s *Ordered[K]) ForEachRange(ge, lt K, fn func(key K) bool) {
	s.t.AscendRange(ge, lt, func(k K, _ struct{}) bool {
		return fn(k)
	})
}

// Slice returns the members in sorted order.
func (s *Ordered[K]) Slice() []K {
	out := make([]K, 0, s.t.Len())
	s.ForEach(func(k K) bool {
		out = append(out, k)
		return true
	})
	return out
}
