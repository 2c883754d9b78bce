package listhashmap

import (
	"fmt"
	"iter"

	"github.com/gostonefire/listhashmap/internal/conf"
	"go.uber.org/zap"
)

// Insert - Stores value under key if the key is not already present. An existing value is never overwritten.
//   - key is the key to store
//   - value is the value to store with it
//
// It returns:
//   - inserted is true if the pair was added, false if key was already present and nothing changed
func (H *HashMap[K, V]) Insert(key K, value V) (inserted bool) {
	bucketNo := H.bucketNo(key)
	if _, _, found := H.chains.Lookup(bucketNo, key); found {
		return
	}

	H.add(bucketNo, key, value)
	inserted = true

	return
}

// InsertPair - Same as Insert but takes a Pair
func (H *HashMap[K, V]) InsertPair(pair Pair[K, V]) bool {
	return H.Insert(pair.Key, pair.Value)
}

// InsertPairs - Inserts each pair in order, following the rules of Insert
func (H *HashMap[K, V]) InsertPairs(pairs ...Pair[K, V]) {
	for _, p := range pairs {
		H.Insert(p.Key, p.Value)
	}
}

// InsertSeq - Inserts each pair produced by seq in order, following the rules of Insert
func (H *HashMap[K, V]) InsertSeq(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		H.Insert(k, v)
	}
}

// Erase - Removes key and its value. Only iterators and pointers to that element are invalidated.
// The bucket index never shrinks.
//
// It returns:
//   - erased is true if the key was present
func (H *HashMap[K, V]) Erase(key K) (erased bool) {
	bucketNo := H.bucketNo(key)
	pos, slot, found := H.chains.Lookup(bucketNo, key)
	if !found {
		return
	}

	H.records.Remove(slot)
	H.chains.RemoveAt(bucketNo, pos)
	erased = true

	return
}

// Find - Returns an iterator positioned at key, or End() if key is not present
func (H *HashMap[K, V]) Find(key K) Iterator[K, V] {
	_, slot, found := H.chains.Lookup(H.bucketNo(key), key)
	if !found {
		return H.End()
	}

	return H.iteratorAt(slot)
}

// Contains - Returns true if key is present
func (H *HashMap[K, V]) Contains(key K) bool {
	_, _, found := H.chains.Lookup(H.bucketNo(key), key)
	return found
}

// Get - Returns the value stored under key and whether it was found. Nothing is inserted.
func (H *HashMap[K, V]) Get(key K) (value V, found bool) {
	var slot int
	_, slot, found = H.chains.Lookup(H.bucketNo(key), key)
	if !found {
		return
	}
	value = H.records.Record(slot).Value

	return
}

// Ref - Returns a pointer to the value stored under key. If key is not present a zero value is inserted
// for it first, growing the bucket index if needed.
// The pointer stays valid until key is erased or the map is cleared or assigned to.
func (H *HashMap[K, V]) Ref(key K) *V {
	bucketNo := H.bucketNo(key)
	if _, slot, found := H.chains.Lookup(bucketNo, key); found {
		return &H.records.Record(slot).Value
	}

	var zero V
	slot := H.add(bucketNo, key, zero)

	// Taken from the record itself, the add may have rebuilt the chains
	return &H.records.Record(slot).Value
}

// At - Gets the value stored under key without ever inserting.
//   - key is the key to look up
//
// It returns:
//   - value is the value of the matching pair if found
//   - err is of type KeyNotFound if key is not present
func (H *HashMap[K, V]) At(key K) (value V, err error) {
	_, slot, found := H.chains.Lookup(H.bucketNo(key), key)
	if !found {
		err = KeyNotFound{msg: fmt.Sprintf("there is no element with key %v in hash map", key)}
		return
	}
	value = H.records.Record(slot).Value

	return
}

// bucketNo - Returns the bucket key belongs to given the current capacity
func (H *HashMap[K, V]) bucketNo(key K) int {
	return H.chains.BucketNo(H.hashAlgorithm.HashFunc(key))
}

// add - Puts a new record in front of the ordered list, indexes it in bucketNo and grows the index if the
// load factor trigger fires. Key must not be present.
func (H *HashMap[K, V]) add(bucketNo int, key K, value V) (slot int) {
	slot, _ = H.records.PushFront(key, value)
	H.chains.Append(bucketNo, key, slot)

	if capacity := H.chains.Capacity(); H.records.Len() >= capacity {
		H.rebuild(capacity * conf.GrowthFactor)
	}

	return
}

// rebuild - Replaces the bucket index with one of the given capacity, rehashing every key in the ordered list
func (H *HashMap[K, V]) rebuild(capacity int) {
	oldCapacity := H.chains.Capacity()
	H.chains.Rebuild(capacity, H.slots(), H.hashAlgorithm.HashFunc)
	H.rebuilds++

	H.logger.Debug("rebuilt bucket index",
		zap.Int("oldCapacity", oldCapacity),
		zap.Int("capacity", capacity),
		zap.Int("records", H.records.Len()),
	)
}

// slots - Yields key and slot of every record, front to back
func (H *HashMap[K, V]) slots() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for slot := H.records.Front(); slot != conf.NoSlot; {
			r := H.records.Record(slot)
			if !yield(r.Key, slot) {
				return
			}
			slot = r.Next
		}
	}
}
