package linkedlist_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/molecula/coffer/errors"
	"github.com/molecula/coffer/linkedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_EndsRoundTrip(t *testing.T) {
	l := linkedlist.New[int]()

	for i := 0; i < 5; i++ {
		l.AddFirst(i)
		l.AddLast(100 + i)
	}
	assert.Equal(t, 10, l.Len())
	if diff := cmp.Diff([]int{4, 3, 2, 1, 0, 100, 101, 102, 103, 104}, l.Slice()); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}

	first, err := l.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, 4, first)
	last, err := l.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, 104, last)
	assert.Equal(t, 8, l.Len())
}

func TestList_MirrorProperty(t *testing.T) {
	// Building by alternating AddFirst/AddLast must equal the reverse of a
	// list built by AddFirst in the mirrored order.
	const n = 20
	forward := linkedlist.New[int]()
	for i := n/2 - 1; i >= 0; i-- {
		forward.AddFirst(i)
	}
	for i := n / 2; i < n; i++ {
		forward.AddLast(i)
	}

	reversed := linkedlist.New[int]()
	for i := 0; i < n; i++ {
		reversed.AddFirst(i)
	}

	fwd := forward.Slice()
	rev := reversed.Slice()
	for i := range fwd {
		assert.Equal(t, fwd[i], rev[len(rev)-1-i])
	}
}

func TestList_IndexedAccess(t *testing.T) {
	l := linkedlist.New[string]()
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l.AddLast(s)
	}

	for i, want := range []string{"a", "b", "c", "d", "e"} {
		got, err := l.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	require.NoError(t, l.Set(2, "C"))
	got, err := l.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "C", got)
}

func TestList_InsertRemoveAt(t *testing.T) {
	l := linkedlist.New[int]()
	for i := 0; i < 4; i++ {
		l.AddLast(i * 10)
	}

	require.NoError(t, l.Insert(2, 99))
	require.NoError(t, l.Insert(0, -1))
	require.NoError(t, l.Insert(l.Len(), 1000))
	if diff := cmp.Diff([]int{-1, 0, 10, 99, 20, 30, 1000}, l.Slice()); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}

	got, err := l.RemoveAt(3)
	require.NoError(t, err)
	assert.Equal(t, 99, got)
	got, err = l.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, -1, got)
	got, err = l.RemoveAt(l.Len() - 1)
	require.NoError(t, err)
	assert.Equal(t, 1000, got)
	if diff := cmp.Diff([]int{0, 10, 20, 30}, l.Slice()); diff != "" {
		t.Fatalf("unexpected contents (-want +got):\n%s", diff)
	}
}

func TestList_EmptyErrors(t *testing.T) {
	l := linkedlist.New[int]()

	for name, err := range map[string]error{
		"remove-first": errOf(l.RemoveFirst()),
		"remove-last":  errOf(l.RemoveLast()),
		"first":        errOf(l.First()),
		"last":         errOf(l.Last()),
	} {
		if !errors.Is(err, errors.EmptyStructure) {
			t.Fatalf("%s: expected EmptyStructure, got %v", name, err)
		}
	}

	if err := errOf(l.Get(0)); !errors.Is(err, errors.IndexOutOfRange) {
		t.Fatalf("expected IndexOutOfRange, got %v", err)
	}
	if err := l.Insert(1, 0); !errors.Is(err, errors.IndexOutOfRange) {
		t.Fatalf("expected IndexOutOfRange, got %v", err)
	}
}

func TestList_InsertErrorReportsInclusiveRange(t *testing.T) {
	l := linkedlist.New[int]()
	l.AddLast(7)

	// inserting at index == size is valid, so the message must say [0,1]
	err := l.Insert(2, 0)
	if err == nil || !strings.Contains(err.Error(), "index 2 out of range [0,1]") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestList_SingleElement(t *testing.T) {
	l := linkedlist.New[int]()
	l.AddFirst(42)

	first, err := l.First()
	require.NoError(t, err)
	last, err := l.Last()
	require.NoError(t, err)
	assert.Equal(t, first, last)

	got, err := l.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 0, l.Len())

	l.AddLast(7)
	got, err = l.RemoveFirst()
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func errOf[T any](_ T, err error) error { return err }
