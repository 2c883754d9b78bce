package hashfunc

import (
	"hash/crc32"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashAlgorithm - Interface that permits a user of the hash map to supply a custom hash function suited for
// its particular distribution of keys. The hash map reduces the returned value to a bucket number itself, so
// implementations should spread their output over the whole 64-bit range.
//
// Keys that are equal (==) must produce the same hash value.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates a 64-bit hash value
	HashFunc(key K) uint64
}

// Func - Adapter that lets an ordinary function act as a HashAlgorithm
type Func[K any] func(key K) uint64

// HashFunc - Calls f(key)
func (f Func[K]) HashFunc(key K) uint64 {
	return f(key)
}

// Comparable - The default hash algorithm, valid for any comparable key type. It is implemented using
// maphash.Comparable with a seed drawn when the instance is created, so hash values differ between instances.
// The zero value has no seed and must not be used, create instances with NewComparable.
type Comparable[K comparable] struct {
	seed maphash.Seed
}

// NewComparable - Returns a new Comparable hash algorithm with a random seed
func NewComparable[K comparable]() Comparable[K] {
	return Comparable[K]{seed: maphash.MakeSeed()}
}

// HashFunc - Given key it generates a 64-bit hash value
func (C Comparable[K]) HashFunc(key K) uint64 {
	return maphash.Comparable(C.seed, key)
}

// CRC32 - Hash algorithm for string keys implemented using crc32.ChecksumIEEE. Hash values are stable across
// processes, which makes bucket placement reproducible.
type CRC32[K ~string] struct{}

// HashFunc - Given key it generates a hash value in the lower 32 bits
func (CRC32[K]) HashFunc(key K) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}

// XXHash - Hash algorithm for string keys implemented using xxhash (XXH64 with seed 0). Hash values are stable
// across processes.
type XXHash[K ~string] struct{}

// HashFunc - Given key it generates a 64-bit hash value
func (XXHash[K]) HashFunc(key K) uint64 {
	return xxhash.Sum64String(string(key))
}
