// Package bitset implements fixed-universe membership over bitmask words.
//
// A BitSet is constructed over a universe [0, n) decided up front; every
// operation is O(1) and the set algebra (union, intersect, difference)
// runs word-wise over uint64 blocks. There is no dynamic growth: two sets
// can only be combined when their universes match.
package bitset

import (
	"math/bits"

	"github.com/molecula/coffer/errors"
)

const wordSize = 64

// BitSet is a fixed-universe bit-vector mapping: bit i is set iff ordinal
// i is a member. Not safe for concurrent use.
type BitSet struct {
	words    []uint64
	universe int
}

// New returns an empty BitSet over the universe [0, universe).
func New(universe int) (*BitSet, error) {
	if universe < 0 {
		return nil, errors.Newf(errors.InvalidConfiguration, "universe size %d is negative", universe)
	}
	return &BitSet{
		words:    make([]uint64, (universe+wordSize-1)/wordSize),
		universe: universe,
	}, nil
}

// Universe returns the domain size fixed at construction.
func (b *BitSet) Universe() int {
	return b.universe
}

// Add sets the bit for ordinal i.
func (b *BitSet) Add(i int) error {
	if i < 0 || i >= b.universe {
		return newErrOutOfDomain(i, b.universe)
	}
	b.words[i/wordSize] |= 1 << (uint(i) % wordSize)
	return nil
}

// Remove clears the bit for ordinal i.
func (b *BitSet) Remove(i int) error {
	if i < 0 || i >= b.universe {
		return newErrOutOfDomain(i, b.universe)
	}
	b.words[i/wordSize] &^= 1 << (uint(i) % wordSize)
	return nil
}

// Contains reports whether ordinal i is a member. Ordinals outside the
// universe are never members.
func (b *BitSet) Contains(i int) bool {
	if i < 0 || i >= b.universe {
		return false
	}
	return b.words[i/wordSize]&(1<<(uint(i)%wordSize)) != 0
}

// Count returns the number of members.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Union returns a new set holding the members of b or other.
func (b *BitSet) Union(other *BitSet) (*BitSet, error) {
	out, err := b.Clone().UnionInPlace(other)
	return out, err
}

// Intersect returns a new set holding the members of both b and other.
func (b *BitSet) Intersect(other *BitSet) (*BitSet, error) {
	out, err := b.Clone().IntersectInPlace(other)
	return out, err
}

// Difference returns a new set holding the members of b that are not in
// other.
func (b *BitSet) Difference(other *BitSet) (*BitSet, error) {
	out, err := b.Clone().DifferenceInPlace(other)
	return out, err
}

// UnionInPlace ORs other into b and returns b.
func (b *BitSet) UnionInPlace(other *BitSet) (*BitSet, error) {
	if err := b.checkDomain(other); err != nil {
		return nil, err
	}
	for i, w := range other.words {
		b.words[i] |= w
	}
	return b, nil
}

// IntersectInPlace ANDs other into b and returns b.
func (b *BitSet) IntersectInPlace(other *BitSet) (*BitSet, error) {
	if err := b.checkDomain(other); err != nil {
		return nil, err
	}
	for i, w := range other.words {
		b.words[i] &= w
	}
	return b, nil
}

// DifferenceInPlace AND-NOTs other into b and returns b.
func (b *BitSet) DifferenceInPlace(other *BitSet) (*BitSet, error) {
	if err := b.checkDomain(other); err != nil {
		return nil, err
	}
	for i, w := range other.words {
		b.words[i] &^= w
	}
	return b, nil
}

// Equal reports whether b and other are over the same universe with the
// same members.
func (b *BitSet) Equal(other *BitSet) bool {
	if b.universe != other.universe {
		return false
	}
	for i, w := range b.words {
		if w != other.words[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of b over the same universe.
func (b *BitSet) Clone() *BitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &BitSet{words: words, universe: b.universe}
}

// ForEach calls fn for each member in ascending ordinal order until fn
// returns false.
func (b *BitSet) ForEach(fn func(i int) bool) {
	for wi, w := range b.words {
		for w != 0 {
			i := wi*wordSize + bits.TrailingZeros64(w)
			if !fn(i) {
				return
			}
			w &= w - 1 // clear the lowest set bit
		}
	}
}

// Slice returns the member ordinals in ascending order.
func (b *BitSet) Slice() []int {
	out := make([]int, 0, b.Count())
	b.ForEach(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

func (b *BitSet) checkDomain(other *BitSet) error {
	if b.universe != other.universe {
		return errors.Newf(errors.DomainMismatch, "universe %d vs %d", b.universe, other.universe)
	}
	return nil
}

func newErrOutOfDomain(i, universe int) error {
	return errors.Newf(errors.IndexOutOfRange, "ordinal %d outside universe [0,%d)", i, universe)
}
