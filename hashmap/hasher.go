package hashmap

import (
	"bytes"

	"github.com/cespare/xxhash"
)

// HashFunc produces a well-distributed 64-bit hash of a key. The map
// never hashes arbitrary types itself; callers supply this collaborator
// (the helpers below cover the common key types). For good behavior,
// equal(a, b) must imply hash(a) == hash(b).
type HashFunc[K any] func(K) uint64

// EqualFunc reports whether two keys are equal.
type EqualFunc[K any] func(a, b K) bool

// StringHash hashes a string key with xxhash.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

// BytesHash hashes a []byte key with xxhash.
func BytesHash(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// IntHash hashes an int key. The identity is sufficient here because the
// map spreads the upper half over the bucket-index bits itself.
func IntHash(i int) uint64 {
	return uint64(i)
}

// Uint64Hash hashes a uint64 key.
func Uint64Hash(u uint64) uint64 {
	return u
}

// Equal is an EqualFunc for any comparable key type.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// BytesEqual is an EqualFunc for []byte keys.
func BytesEqual(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// spread folds the upper half of the hash into the lower half so bucket
// indexing, which masks off only the low bits, still sees the high-bit
// entropy.
func spread(h uint64) uint64 {
	return h ^ (h >> 32)
}
