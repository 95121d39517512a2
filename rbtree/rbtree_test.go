package rbtree_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/molecula/coffer/errors"
	"github.com/molecula/coffer/rbtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_PutGetDelete(t *testing.T) {
	tr := rbtree.New[string, int]()

	old, replaced := tr.Put("b", 2)
	assert.False(t, replaced)
	assert.Zero(t, old)
	tr.Put("a", 1)
	tr.Put("c", 3)

	old, replaced = tr.Put("b", 20)
	assert.True(t, replaced)
	assert.Equal(t, 2, old)

	got, ok := tr.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, got)
	assert.Equal(t, 3, tr.Len())

	removed, ok := tr.Delete("b")
	require.True(t, ok)
	assert.Equal(t, 20, removed)
	_, ok = tr.Get("b")
	assert.False(t, ok)
	assert.Equal(t, 2, tr.Len())

	_, ok = tr.Delete("missing")
	assert.False(t, ok)
}

func TestTree_InOrderIsSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr := rbtree.New[int, int]()
	want := map[int]bool{}
	for i := 0; i < 2000; i++ {
		k := rng.Intn(10000)
		tr.Put(k, k)
		want[k] = true
	}
	for k := range want {
		if k%3 == 0 {
			tr.Delete(k)
			delete(want, k)
		}
	}

	var keys []int
	tr.Ascend(func(k, v int) bool {
		keys = append(keys, k)
		return true
	})
	assert.Equal(t, len(want), len(keys))
	assert.True(t, sort.IntsAreSorted(keys))

	var desc []int
	tr.Descend(func(k, v int) bool {
		desc = append(desc, k)
		return true
	})
	for i := range keys {
		assert.Equal(t, keys[i], desc[len(desc)-1-i])
	}
}

func TestTree_FloorCeiling(t *testing.T) {
	tr := rbtree.New[int, string]()
	for _, k := range []int{10, 20, 30, 40} {
		tr.Put(k, "v")
	}

	tests := []struct {
		name  string
		query int
		floor int
		fOK   bool
		ceil  int
		cOK   bool
	}{
		{name: "between", query: 25, floor: 20, fOK: true, ceil: 30, cOK: true},
		{name: "exact", query: 30, floor: 30, fOK: true, ceil: 30, cOK: true},
		{name: "below-all", query: 5, fOK: false, ceil: 10, cOK: true},
		{name: "above-all", query: 45, floor: 40, fOK: true, cOK: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fk, _, ok := tr.Floor(test.query)
			assert.Equal(t, test.fOK, ok)
			if ok {
				assert.Equal(t, test.floor, fk)
			}
			ck, _, ok := tr.Ceiling(test.query)
			assert.Equal(t, test.cOK, ok)
			if ok {
				assert.Equal(t, test.ceil, ck)
			}
		})
	}
}

func TestTree_MinMax(t *testing.T) {
	tr := rbtree.New[int, int]()
	_, _, ok := tr.Min()
	assert.False(t, ok)
	_, _, ok = tr.Max()
	assert.False(t, ok)

	for _, k := range []int{5, 1, 9, 3} {
		tr.Put(k, k*10)
	}
	k, v, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 1, k)
	assert.Equal(t, 10, v)
	k, v, ok = tr.Max()
	require.True(t, ok)
	assert.Equal(t, 9, k)
	assert.Equal(t, 90, v)
}

func TestTree_AscendRange(t *testing.T) {
	tr := rbtree.New[int, int]()
	for i := 0; i < 100; i++ {
		tr.Put(i, i)
	}

	var got []int
	tr.AscendRange(10, 15, func(k, v int) bool {
		got = append(got, k)
		return true
	})
	if diff := cmp.Diff([]int{10, 11, 12, 13, 14}, got); diff != "" {
		t.Fatalf("unexpected range (-want +got):\n%s", diff)
	}

	got = got[:0]
	tr.AscendGreaterOrEqual(97, func(k, v int) bool {
		got = append(got, k)
		return true
	})
	if diff := cmp.Diff([]int{97, 98, 99}, got); diff != "" {
		t.Fatalf("unexpected tail (-want +got):\n%s", diff)
	}

	// early stop
	n := 0
	tr.Ascend(func(k, v int) bool {
		n++
		return n < 7
	})
	assert.Equal(t, 7, n)
}

func TestTree_CustomCompare(t *testing.T) {
	// reverse order
	tr := rbtree.NewFunc[int, int](func(a, b int) int { return b - a })
	for i := 0; i < 10; i++ {
		tr.Put(i, i)
	}
	k, _, ok := tr.Min()
	require.True(t, ok)
	assert.Equal(t, 9, k)

	var keys []int
	tr.Ascend(func(k, v int) bool {
		keys = append(keys, k)
		return true
	})
	assert.True(t, sort.IsSorted(sort.Reverse(sort.IntSlice(keys))))
}

func TestTree_GetRequired(t *testing.T) {
	tr := rbtree.New[string, int]()
	tr.Put("x", 1)

	got, err := tr.GetRequired("x")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = tr.GetRequired("y")
	assert.True(t, errors.Is(err, errors.KeyNotFound))
}

func TestTree_NilCompareFuncPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	rbtree.NewFunc[int, int](nil)
}
