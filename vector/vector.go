// Package vector implements a growable contiguous sequence with amortized
// O(1) append.
//
// Vector is not safe for concurrent use; callers requiring concurrent
// access must provide their own synchronization.
package vector

import (
	"github.com/molecula/coffer/errors"
)

// DefaultCapacity is the backing buffer capacity used when no
// InitialCapacity option is given.
const DefaultCapacity = 10

// Vector is a sequence backed by one contiguous buffer of capacity >= size.
// The buffer is replaced when capacity is exhausted; it never shrinks on
// removal, so freed slots are reused by later appends.
type Vector[T any] struct {
	buf  []T
	size int
}

// Option configures a Vector at construction time.
type Option func(*options)

type options struct {
	initialCapacity int
}

// WithInitialCapacity sets the capacity of the initial backing buffer.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// New returns an empty Vector.
func New[T any](opts ...Option) (*Vector[T], error) {
	o := options{initialCapacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.initialCapacity < 0 {
		return nil, errors.Newf(errors.InvalidConfiguration, "initial capacity %d is negative", o.initialCapacity)
	}
	return &Vector[T]{
		buf: make([]T, o.initialCapacity),
	}, nil
}

// Len returns the number of elements in the vector.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the capacity of the backing buffer. Callers can watch this
// change to observe reallocations.
func (v *Vector[T]) Cap() int {
	return len(v.buf)
}

// Get returns the element at index i.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, newErrIndexOutOfRange(i, v.size)
	}
	return v.buf[i], nil
}

// Set replaces the element at index i.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.size {
		return newErrIndexOutOfRange(i, v.size)
	}
	v.buf[i] = value
	return nil
}

// Append adds value at the end of the sequence, growing the backing buffer
// by half its current capacity when it is full.
func (v *Vector[T]) Append(value T) {
	if v.size == len(v.buf) {
		v.grow()
	}
	v.buf[v.size] = value
	v.size++
}

// Insert places value at index i, shifting elements [i, size) one slot
// right. Inserting at i == size is equivalent to Append.
func (v *Vector[T]) Insert(i int, value T) error {
	if i < 0 || i > v.size {
		return newErrIndexOutOfRangeInclusive(i, v.size)
	}
	if v.size == len(v.buf) {
		v.grow()
	}
	copy(v.buf[i+1:v.size+1], v.buf[i:v.size])
	v.buf[i] = value
	v.size++
	return nil
}

// RemoveAt removes and returns the element at index i, shifting elements
// (i, size) one slot left. The backing buffer is not shrunk.
func (v *Vector[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.size {
		return zero, newErrIndexOutOfRange(i, v.size)
	}
	out := v.buf[i]
	copy(v.buf[i:v.size-1], v.buf[i+1:v.size])
	v.size--
	// clear the vacated slot so T's referents can be collected
	v.buf[v.size] = zero
	return out, nil
}

// ForEach calls fn for each element in index order until fn returns false.
func (v *Vector[T]) ForEach(fn func(i int, value T) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.buf[i]) {
			return
		}
	}
}

// Slice returns a copy of the live elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.size)
	copy(out, v.buf[:v.size])
	return out
}

// grow replaces the backing buffer with one half again as large. 1.5x
// trades reallocation frequency against wasted capacity; any factor > 1
// preserves amortized O(1) append.
func (v *Vector[T]) grow() {
	newCap := len(v.buf) + len(v.buf)/2
	if newCap <= len(v.buf) {
		newCap = len(v.buf) + 1
	}
	buf := make([]T, newCap)
	copy(buf, v.buf[:v.size])
	v.buf = buf
}

func newErrIndexOutOfRange(index, size int) error {
	return errors.Newf(errors.IndexOutOfRange, "index %d out of range [0,%d)", index, size)
}

// newErrIndexOutOfRangeInclusive is for insert positions, where index ==
// size is valid.
func newErrIndexOutOfRangeInclusive(index, size int) error {
	return errors.Newf(errors.IndexOutOfRange, "index %d out of range [0,%d]", index, size)
}
