// Package set provides key-only projections over the coffer mapping
// packages. Each adapter stores struct{} values in the mapping it wraps;
// none of them is separately engineered.
package set

import (
	"github.com/molecula/coffer/bitset"
	"github.com/molecula/coffer/errors"
	"github.com/molecula/coffer/hashmap"
)

// Hash is an unordered set backed by a hash-table mapping.
type Hash[K any] struct {
	m     *hashmap.Map[K, struct{}]
	hash  hashmap.HashFunc[K]
	equal hashmap.EqualFunc[K]
}

// NewHash returns an empty Hash set; hash and equal follow the hashmap
// contract.
func NewHash[K any](hash hashmap.HashFunc[K], equal hashmap.EqualFunc[K], opts ...hashmap.Option) (*Hash[K], error) {
	m, err := hashmap.New[K, struct{}](hash, equal, opts...)
	if err != nil {
		return nil, err
	}
	return &Hash[K]{m: m, hash: hash, equal: equal}, nil
}

// empty returns a new set sharing s's key functions. They were validated
// when s was built, so construction cannot fail.
func (s *Hash[K]) empty() *Hash[K] {
	out, _ := NewHash(s.hash, s.equal)
	return out
}

// Add inserts key, reporting whether it was newly added.
func (s *Hash[K]) Add(key K) bool {
	_, replaced := s.m.Put(key, struct{}{})
	return !replaced
}

// Remove deletes key, reporting whether it was present.
func (s *Hash[K]) Remove(key K) bool {
	_, ok := s.m.Remove(key)
	return ok
}

// Contains reports membership.
func (s *Hash[K]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// Len returns the member count.
func (s *Hash[K]) Len() int {
	return s.m.Len()
}

// ForEach calls fn for every member, in unspecified order, until fn
// returns false.
func (s *Hash[K]) ForEach(fn func(key K) bool) {
	s.m.ForEach(func(k K, _ struct{}) bool {
		return fn(k)
	})
}

// Slice returns the members in unspecified order.
func (s *Hash[K]) Slice() []K {
	return s.m.Keys()
}

// Union returns a new set holding every member of s and of other.
// Neither operand is modified.
func (s *Hash[K]) Union(other *Hash[K]) *Hash[K] {
	out := s.empty()
	s.ForEach(func(k K) bool {
		out.Add(k)
		return true
	})
	other.ForEach(func(k K) bool {
		out.Add(k)
		return true
	})
	return out
}

// Intersect returns a new set holding the members of s also present in
// other. Neither operand is modified.
func (s *Hash[K]) Intersect(other *Hash[K]) *Hash[K] {
	out := s.empty()
	s.ForEach(func(k K) bool {
		if other.Contains(k) {
			out.Add(k)
		}
		return true
	})
	return out
}

// Difference returns a new set holding the members of s not present in
// other. Neither operand is modified.
func (s *Hash[K]) Difference(other *Hash[K]) *Hash[K] {
	out := s.empty()
	s.ForEach(func(k K) bool {
		if !other.Contains(k) {
			out.Add(k)
		}
		return true
	})
	return out
}

// Insertion is a set that iterates in insertion order, backed by an
// insertion-ordered hash mapping.
type Insertion[K any] struct {
	m *hashmap.OrderedMap[K, struct{}]
}

// NewInsertion returns an empty Insertion set.
func NewInsertion[K any](hash hashmap.HashFunc[K], equal hashmap.EqualFunc[K], opts ...hashmap.Option) (*Insertion[K], error) {
	m, err := hashmap.NewOrdered[K, struct{}](hash, equal, opts...)
	if err != nil {
		return nil, err
	}
	return &Insertion[K]{m: m}, nil
}

// Add inserts key, reporting whether it was newly added. Re-adding an
// existing key keeps its original position.
func (s *Insertion[K]) Add(key K) bool {
	_, replaced := s.m.Put(key, struct{}{})
	return !replaced
}

// Remove deletes key, reporting whether it was present.
func (s *Insertion[K]) Remove(key K) bool {
	_, ok := s.m.Remove(key)
	return ok
}

// Contains reports membership.
func (s *Insertion[K]) Contains(key K) bool {
	return s.m.ContainsKey(key)
}

// Len returns the member count.
func (s *Insertion[K]) Len() int {
	return s.m.Len()
}

// ForEach calls fn for every member in insertion order until fn returns
// false.
func (s *Insertion[K]) ForEach(fn func(key K) bool) {
	s.m.ForEach(func(k K, _ struct{}) bool {
		return fn(k)
	})
}

// Slice returns the members in insertion order.
func (s *Insertion[K]) Slice() []K {
	return s.m.Keys()
}

// Enum is a set over a small enumerable domain, backed by a bit-vector
// mapping. ordinal maps a member to its position in [0, universe).
type Enum[E any] struct {
	bits    *bitset.BitSet
	ordinal func(E) int
}

// NewEnum returns an empty Enum set over [0, universe).
func NewEnum[E any](universe int, ordinal func(E) int) (*Enum[E], error) {
	if ordinal == nil {
		return nil, errors.New(errors.InvalidConfiguration, "ordinal function is required")
	}
	bits, err := bitset.New(universe)
	if err != nil {
		return nil, err
	}
	return &Enum[E]{bits: bits, ordinal: ordinal}, nil
}

// Add inserts elem.
func (s *Enum[E]) Add(elem E) error {
	return s.bits.Add(s.ordinal(elem))
}

// Remove deletes elem.
func (s *Enum[E]) Remove(elem E) error {
	return s.bits.Remove(s.ordinal(elem))
}

// Contains reports membership.
func (s *Enum[E]) Contains(elem E) bool {
	return s.bits.Contains(s.ordinal(elem))
}

// Len returns the member count.
func (s *Enum[E]) Len() int {
	return s.bits.Count()
}

// Union ORs other's members into s. Fails with DomainMismatch when the
// universes differ.
func (s *Enum[E]) Union(other *Enum[E]) error {
	_, err := s.bits.UnionInPlace(other.bits)
	return err
}

// Intersect ANDs other's members into s.
func (s *Enum[E]) Intersect(other *Enum[E]) error {
	_, err := s.bits.IntersectInPlace(other.bits)
	return err
}

// Difference removes other's members from s.
func (s *Enum[E]) Difference(other *Enum[E]) error {
	_, err := s.bits.DifferenceInPlace(other.bits)
	return err
}

// Ordinals returns the member ordinals in ascending order.
func (s *Enum[E]) Ordinals() []int {
	return s.bits.Slice()
}
