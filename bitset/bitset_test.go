package bitset_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/molecula/coffer/bitset"
	"github.com/molecula/coffer/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, universe int, members ...int) *bitset.BitSet {
	t.Helper()
	b, err := bitset.New(universe)
	require.NoError(t, err)
	for _, m := range members {
		require.NoError(t, b.Add(m))
	}
	return b
}

func TestBitSet_AddContainsRemove(t *testing.T) {
	b := mustSet(t, 130, 0, 1, 63, 64, 65, 129)

	for _, m := range []int{0, 1, 63, 64, 65, 129} {
		assert.True(t, b.Contains(m), "missing %d", m)
	}
	for _, m := range []int{2, 62, 66, 128, -1, 130, 1000} {
		assert.False(t, b.Contains(m), "unexpected %d", m)
	}
	assert.Equal(t, 6, b.Count())

	require.NoError(t, b.Remove(64))
	assert.False(t, b.Contains(64))
	assert.Equal(t, 5, b.Count())

	// removing an absent member is a no-op, not an error
	require.NoError(t, b.Remove(2))
	assert.Equal(t, 5, b.Count())
}

func TestBitSet_OutOfDomain(t *testing.T) {
	b := mustSet(t, 10)
	if err := b.Add(10); !errors.Is(err, errors.IndexOutOfRange) {
		t.Fatalf("expected IndexOutOfRange, got %v", err)
	}
	if err := b.Remove(-1); !errors.Is(err, errors.IndexOutOfRange) {
		t.Fatalf("expected IndexOutOfRange, got %v", err)
	}
	_, err := bitset.New(-1)
	assert.True(t, errors.Is(err, errors.InvalidConfiguration))
}

func TestBitSet_Algebra(t *testing.T) {
	a := mustSet(t, 200, 1, 3, 5, 100, 150)
	b := mustSet(t, 200, 3, 4, 100, 199)

	union, err := a.Union(b)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 3, 4, 5, 100, 150, 199}, union.Slice()); diff != "" {
		t.Fatalf("union (-want +got):\n%s", diff)
	}

	inter, err := a.Intersect(b)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{3, 100}, inter.Slice()); diff != "" {
		t.Fatalf("intersect (-want +got):\n%s", diff)
	}
	// intersection is contained in both operands
	inter.ForEach(func(i int) bool {
		assert.True(t, a.Contains(i))
		assert.True(t, b.Contains(i))
		return true
	})

	diffSet, err := a.Difference(b)
	require.NoError(t, err)
	if diff := cmp.Diff([]int{1, 5, 150}, diffSet.Slice()); diff != "" {
		t.Fatalf("difference (-want +got):\n%s", diff)
	}

	// operands are untouched by the copying forms
	if diff := cmp.Diff([]int{1, 3, 5, 100, 150}, a.Slice()); diff != "" {
		t.Fatalf("operand mutated (-want +got):\n%s", diff)
	}
}

func TestBitSet_UnionIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, err := bitset.New(512)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		require.NoError(t, a.Add(rng.Intn(512)))
	}

	self, err := a.Union(a)
	require.NoError(t, err)
	assert.True(t, self.Equal(a))
}

func TestBitSet_DomainMismatch(t *testing.T) {
	a := mustSet(t, 64, 1)
	b := mustSet(t, 128, 1)

	if _, err := a.Union(b); !errors.Is(err, errors.DomainMismatch) {
		t.Fatalf("expected DomainMismatch, got %v", err)
	}
	if _, err := a.Intersect(b); !errors.Is(err, errors.DomainMismatch) {
		t.Fatalf("expected DomainMismatch, got %v", err)
	}
	if _, err := a.Difference(b); !errors.Is(err, errors.DomainMismatch) {
		t.Fatalf("expected DomainMismatch, got %v", err)
	}
	if _, err := a.UnionInPlace(b); !errors.Is(err, errors.DomainMismatch) {
		t.Fatalf("expected DomainMismatch, got %v", err)
	}
}

func TestBitSet_InPlace(t *testing.T) {
	a := mustSet(t, 64, 1, 2)
	b := mustSet(t, 64, 2, 3)

	got, err := a.UnionInPlace(b)
	require.NoError(t, err)
	assert.Same(t, a, got)
	if diff := cmp.Diff([]int{1, 2, 3}, a.Slice()); diff != "" {
		t.Fatalf("in-place union (-want +got):\n%s", diff)
	}
}

func TestBitSet_ForEachStops(t *testing.T) {
	b := mustSet(t, 100, 10, 20, 30, 40)
	var seen []int
	b.ForEach(func(i int) bool {
		seen = append(seen, i)
		return len(seen) < 2
	})
	assert.Equal(t, []int{10, 20}, seen)
}

func TestBitSet_ZeroUniverse(t *testing.T) {
	b, err := bitset.New(0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Count())
	assert.False(t, b.Contains(0))
	if err := b.Add(0); !errors.Is(err, errors.IndexOutOfRange) {
		t.Fatalf("expected IndexOutOfRange, got %v", err)
	}
}
