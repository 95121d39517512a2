// Package rbtree implements a balanced ordered mapping as a red-black
// tree.
//
// Tree supports ordered traversal, range queries, and nearest-key lookups
// (Floor/Ceiling) in O(log n). It also serves as the escalated bucket
// representation inside the hashmap package. Tree is not safe for
// concurrent use.
package rbtree

import (
	"github.com/molecula/coffer/errors"
	"golang.org/x/exp/constraints"
)

// CompareFunc is a three-way comparison: negative when a < b, zero when
// equal, positive when a > b.
type CompareFunc[K any] func(a, b K) int

// Tree is a red-black tree keyed by K. Invariants: the root is black, no
// red node has a red child, and every root-to-nil path crosses the same
// number of black nodes. Parent pointers are navigational only; children
// are owned by their parent.
type Tree[K, V any] struct {
	root *node[K, V]
	size int
	cmp  CompareFunc[K]
}

type node[K, V any] struct {
	key    K
	value  V
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
	red    bool
}

// New returns an empty Tree ordered by the key's natural order.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// NewFunc returns an empty Tree ordered by cmp. A nil cmp is a programmer
// error and panics.
func NewFunc[K, V any](cmp CompareFunc[K]) *Tree[K, V] {
	if cmp == nil {
		panic("rbtree: NewFunc called with nil compare function")
	}
	return &Tree[K, V]{cmp: cmp}
}

// Len returns the number of entries in the tree.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Get returns the value mapped to key.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.lookup(key)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// GetRequired is Get for callers that treat absence as a failure.
func (t *Tree[K, V]) GetRequired(key K) (V, error) {
	n := t.lookup(key)
	if n == nil {
		var zero V
		return zero, errors.New(errors.KeyNotFound, "key not found in tree")
	}
	return n.value, nil
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.lookup(key) != nil
}

// Put maps key to value. If key was already present its value is replaced
// and the old value returned with replaced == true.
func (t *Tree[K, V]) Put(key K, value V) (old V, replaced bool) {
	var parent *node[K, V]
	n := t.root
	for n != nil {
		parent = n
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			old = n.value
			n.value = value
			return old, true
		}
	}

	z := &node[K, V]{key: key, value: value, parent: parent, red: true}
	switch {
	case parent == nil:
		t.root = z
	case t.cmp(key, parent.key) < 0:
		parent.left = z
	default:
		parent.right = z
	}
	t.size++
	t.insertFixup(z)
	return old, false
}

// Delete removes key, returning the removed value.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	var zero V
	z := t.lookup(key)
	if z == nil {
		return zero, false
	}
	out := z.value

	if z.left != nil && z.right != nil {
		// Two children: swap in the successor, then remove the
		// successor node, which has at most one child.
		s := minNode(z.right)
		z.key, z.value = s.key, s.value
		z = s
	}

	child := z.left
	if child == nil {
		child = z.right
	}
	parent := z.parent
	if child != nil {
		child.parent = parent
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == z:
		parent.left = child
	default:
		parent.right = child
	}
	z.left, z.right, z.parent = nil, nil, nil
	t.size--

	if !z.red {
		t.deleteFixup(child, parent)
	}
	return out, true
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := minNode(t.root)
	return n.key, n.value, true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	if t.root == nil {
		var k K
		var v V
		return k, v, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, true
}

// Floor returns the largest key <= key; an exact match is not required.
func (t *Tree[K, V]) Floor(key K) (K, V, bool) {
	var best *node[K, V]
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		if c == 0 {
			return n.key, n.value, true
		}
		if c < 0 {
			n = n.left
		} else {
			best = n
			n = n.right
		}
	}
	if best == nil {
		var k K
		var v V
		return k, v, false
	}
	return best.key, best.value, true
}

// Ceiling returns the smallest key >= key; an exact match is not required.
func (t *Tree[K, V]) Ceiling(key K) (K, V, bool) {
	var best *node[K, V]
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		if c == 0 {
			return n.key, n.value, true
		}
		if c > 0 {
			n = n.right
		} else {
			best = n
			n = n.left
		}
	}
	if best == nil {
		var k K
		var v V
		return k, v, false
	}
	return best.key, best.value, true
}

// Ascend calls fn for every entry in key order until fn returns false.
func (t *Tree[K, V]) Ascend(fn func(key K, value V) bool) {
	t.ascend(t.root, fn)
}

// AscendGreaterOrEqual calls fn in key order for entries with key >= ge
// until fn returns false.
func (t *Tree[K, V]) AscendGreaterOrEqual(ge K, fn func(key K, value V) bool) {
	t.ascendGE(t.root, ge, fn)
}

// AscendRange calls fn in key order for entries with ge <= key < lt until
// fn returns false.
func (t *Tree[K, V]) AscendRange(ge, lt K, fn func(key K, value V) bool) {
	t.ascendRange(t.root, ge, lt, fn)
}

// Descend calls fn for every entry in reverse key order until fn returns
// false.
func (t *Tree[K, V]) Descend(fn func(key K, value V) bool) {
	t.descend(t.root, fn)
}

func (t *Tree[K, V]) lookup(key K) *node[K, V] {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func isRed[K, V any](n *node[K, V]) bool {
	return n != nil && n.red
}

func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// insertFixup restores the red-black invariants after inserting the red
// node z: red uncle recolors and recurses upward; black uncle rotates a
// triangle into a line, then rotates the grandparent.
func (t *Tree[K, V]) insertFixup(z *node[K, V]) {
	for isRed(z.parent) {
		// Grandparent exists: the parent is red, so it is not the root.
		g := z.parent.parent
		if z.parent == g.left {
			u := g.right
			if isRed(u) {
				z.parent.red = false
				u.red = false
				g.red = true
				z = g
				continue
			}
			if z == z.parent.right {
				z = z.parent
				t.rotateLeft(z)
			}
			z.parent.red = false
			g.red = true
			t.rotateRight(g)
		} else {
			u := g.left
			if isRed(u) {
				z.parent.red = false
				u.red = false
				g.red = true
				z = g
				continue
			}
			if z == z.parent.left {
				z = z.parent
				t.rotateRight(z)
			}
			z.parent.red = false
			g.red = true
			t.rotateLeft(g)
		}
	}
	t.root.red = false
}

// deleteFixup restores the black-height invariant after removing a black
// node. x is the child that replaced it (possibly nil, which counts as
// black) and parent is its current parent.
func (t *Tree[K, V]) deleteFixup(x, parent *node[K, V]) {
	for x != t.root && !isRed(x) {
		if parent == nil {
			break
		}
		if x == parent.left {
			s := parent.right
			if isRed(s) {
				s.red = false
				parent.red = true
				t.rotateLeft(parent)
				s = parent.right
			}
			if !isRed(s.left) && !isRed(s.right) {
				s.red = true
				x = parent
				parent = x.parent
				continue
			}
			if !isRed(s.right) {
				s.left.red = false
				s.red = true
				t.rotateRight(s)
				s = parent.right
			}
			s.red = parent.red
			parent.red = false
			s.right.red = false
			t.rotateLeft(parent)
			x = t.root
			parent = nil
		} else {
			s := parent.left
			if isRed(s) {
				s.red = false
				parent.red = true
				t.rotateRight(parent)
				s = parent.left
			}
			if !isRed(s.left) && !isRed(s.right) {
				s.red = true
				x = parent
				parent = x.parent
				continue
			}
			if !isRed(s.left) {
				s.right.red = false
				s.red = true
				t.rotateLeft(s)
				s = parent.left
			}
			s.red = parent.red
			parent.red = false
			s.left.red = false
			t.rotateRight(parent)
			x = t.root
			parent = nil
		}
	}
	if x != nil {
		x.red = false
	}
}

func (t *Tree[K, V]) ascend(n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !t.ascend(n.left, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return t.ascend(n.right, fn)
}

func (t *Tree[K, V]) ascendGE(n *node[K, V], ge K, fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if t.cmp(n.key, ge) < 0 {
		return t.ascendGE(n.right, ge, fn)
	}
	if !t.ascendGE(n.left, ge, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return t.ascend(n.right, fn)
}

func (t *Tree[K, V]) ascendRange(n *node[K, V], ge, lt K, fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if t.cmp(n.key, lt) >= 0 {
		return t.ascendRange(n.left, ge, lt, fn)
	}
	if t.cmp(n.key, ge) < 0 {
		return t.ascendRange(n.right, ge, lt, fn)
	}
	if !t.ascendRange(n.left, ge, lt, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return t.ascendRange(n.right, ge, lt, fn)
}

func (t *Tree[K, V]) descend(n *node[K, V], fn func(K, V) bool) bool {
	if n == nil {
		return true
	}
	if !t.descend(n.right, fn) {
		return false
	}
	if !fn(n.key, n.value) {
		return false
	}
	return t.descend(n.left, fn)
}
