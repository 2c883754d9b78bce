// Package separatechaining holds the bucket index of the hash map. Each bucket is a chain of
// entries pointing into the ordered record list by slot number. Collisions are resolved by
// scanning the chain linearly.
package separatechaining

import (
	"iter"

	"github.com/gostonefire/listhashmap/internal/model"
)

// Chains - Represents the bucket index, a fixed number of chains until it is rebuilt
type Chains[K comparable] struct {
	buckets [][]model.BucketEntry[K]
}

// NewChains - Returns a pointer to a new bucket index with capacity empty chains.
// A capacity lower than 1 is raised to 1.
func NewChains[K comparable](capacity int) *Chains[K] {
	c := &Chains[K]{}
	c.Reset(capacity)
	return c
}

// Capacity - Returns the number of buckets
func (C *Chains[K]) Capacity() int {
	return len(C.buckets)
}

// BucketNo - Maps a hash value to a bucket number between 0 and capacity - 1
func (C *Chains[K]) BucketNo(hashValue uint64) int {
	return int(hashValue % uint64(len(C.buckets)))
}

// Lookup - Scans the chain of bucketNo for key.
// It returns:
//   - pos is the position of the entry within the chain, -1 if not found
//   - slot is the record slot the entry points to, -1 if not found
//   - found is true if the key was found
func (C *Chains[K]) Lookup(bucketNo int, key K) (pos, slot int, found bool) {
	for i, entry := range C.buckets[bucketNo] {
		if entry.Key == key {
			return i, entry.Slot, true
		}
	}

	return -1, -1, false
}

// Append - Adds an entry for key pointing at slot to the end of the chain of bucketNo.
// It does not check for duplicates, that is up to the caller.
func (C *Chains[K]) Append(bucketNo int, key K, slot int) {
	C.buckets[bucketNo] = append(C.buckets[bucketNo], model.BucketEntry[K]{Key: key, Slot: slot})
}

// RemoveAt - Removes the entry at pos from the chain of bucketNo, keeping the order of the rest
func (C *Chains[K]) RemoveAt(bucketNo, pos int) {
	chain := C.buckets[bucketNo]
	copy(chain[pos:], chain[pos+1:])
	chain[len(chain)-1] = model.BucketEntry[K]{}
	C.buckets[bucketNo] = chain[:len(chain)-1]
}

// Chain - Returns the entries of the chain of bucketNo. The slice must not be modified.
func (C *Chains[K]) Chain(bucketNo int) []model.BucketEntry[K] {
	return C.buckets[bucketNo]
}

// ChainLengths - Returns the number of entries in each bucket
func (C *Chains[K]) ChainLengths() (lengths []int) {
	lengths = make([]int, len(C.buckets))
	for i, chain := range C.buckets {
		lengths[i] = len(chain)
	}

	return
}

// Reset - Drops all chains and replaces them with capacity empty ones (at least one)
func (C *Chains[K]) Reset(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	C.buckets = make([][]model.BucketEntry[K], capacity)
}

// Rebuild - Resets the index to capacity buckets and re-adds every (key, slot) pair from entries,
// placing each key by hash.
func (C *Chains[K]) Rebuild(capacity int, entries iter.Seq2[K, int], hash func(K) uint64) {
	C.Reset(capacity)
	for key, slot := range entries {
		C.Append(C.BucketNo(hash(key)), key, slot)
	}
}
