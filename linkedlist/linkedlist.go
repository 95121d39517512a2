// Package linkedlist implements a doubly linked sequence with O(1)
// operations at both ends.
//
// Index operations walk from whichever end is closer to the target, so a
// Get or RemoveAt near either end stays cheap. List is not safe for
// concurrent use.
package linkedlist

import (
	"github.com/molecula/coffer/errors"
)

// List is a doubly linked sequence. Each node is owned by its predecessor
// (or by the list head); prev pointers are navigational only.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// AddFirst prepends value.
func (l *List[T]) AddFirst(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// AddLast appends value.
func (l *List[T]) AddLast(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// First returns the first element without removing it.
func (l *List[T]) First() (T, error) {
	if l.head == nil {
		var zero T
		return zero, newErrEmptyStructure()
	}
	return l.head.value, nil
}

// Last returns the last element without removing it.
func (l *List[T]) Last() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, newErrEmptyStructure()
	}
	return l.tail.value, nil
}

// RemoveFirst removes and returns the first element.
func (l *List[T]) RemoveFirst() (T, error) {
	if l.head == nil {
		var zero T
		return zero, newErrEmptyStructure()
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	n.next = nil
	l.size--
	return n.value, nil
}

// RemoveLast removes and returns the last element.
func (l *List[T]) RemoveLast() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, newErrEmptyStructure()
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	n.prev = nil
	l.size--
	return n.value, nil
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, newErrIndexOutOfRange(i, l.size)
	}
	return l.nodeAt(i).value, nil
}

// Set replaces the element at index i.
func (l *List[T]) Set(i int, value T) error {
	if i < 0 || i >= l.size {
		return newErrIndexOutOfRange(i, l.size)
	}
	l.nodeAt(i).value = value
	return nil
}

// Insert splices value in before index i. Inserting at i == size appends.
func (l *List[T]) Insert(i int, value T) error {
	if i < 0 || i > l.size {
		return newErrIndexOutOfRangeInclusive(i, l.size)
	}
	switch i {
	case 0:
		l.AddFirst(value)
	case l.size:
		l.AddLast(value)
	default:
		succ := l.nodeAt(i)
		pred := succ.prev
		n := &node[T]{value: value, next: succ, prev: pred}
		pred.next = n
		succ.prev = n
		l.size++
	}
	return nil
}

// RemoveAt removes and returns the element at index i.
func (l *List[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, newErrIndexOutOfRange(i, l.size)
	}
	switch i {
	case 0:
		return l.RemoveFirst()
	case l.size - 1:
		return l.RemoveLast()
	}
	n := l.nodeAt(i)
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next, n.prev = nil, nil
	l.size--
	return n.value, nil
}

// ForEach calls fn for each element from head to tail until fn returns
// false.
func (l *List[T]) ForEach(fn func(i int, value T) bool) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if !fn(i, n.value) {
			return
		}
		i++
	}
}

// Slice returns the elements in head-to-tail order.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// nodeAt walks to index i from whichever end is closer. The caller must
// have range-checked i.
func (l *List[T]) nodeAt(i int) *node[T] {
	if i < l.size/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for i = l.size - 1 - i; i > 0; i-- {
		n = n.prev
	}
	return n
}

func newErrEmptyStructure() error {
	return errors.New(errors.EmptyStructure, "list is empty")
}

func newErrIndexOutOfRange(index, size int) error {
	return errors.Newf(errors.IndexOutOfRange, "index %d out of range [0,%d)", index, size)
}

// newErrIndexOutOfRangeInclusive is for insert positions, where index ==
// size is valid.
func newErrIndexOutOfRangeInclusive(index, size int) error {
	return errors.Newf(errors.IndexOutOfRange, "index %d out of range [0,%d]", index, size)
}
