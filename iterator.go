package listhashmap

import (
	"iter"

	"github.com/gostonefire/listhashmap/internal/conf"
)

// Iterator - Is used to walk the pairs of a hash map one by one, newest first.
// An iterator stays valid across insertions and across erasure of other elements. Once its own element is
// erased (or the map is cleared) Valid returns false, and Key, Value, ValuePtr, SetValue, Next and Prev panic
// with an InvalidIterator error.
type Iterator[K comparable, V any] struct {
	hashMap    *HashMap[K, V]
	slot       int
	generation uint64
}

// Begin - Returns an iterator at the most recently inserted pair, equal to End() if the map is empty
func (H *HashMap[K, V]) Begin() Iterator[K, V] {
	return H.iteratorAt(H.records.Front())
}

// End - Returns the past-the-end iterator. It is never valid.
func (H *HashMap[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{hashMap: H, slot: conf.NoSlot}
}

// iteratorAt - Returns an iterator at slot, or End() for conf.NoSlot
func (H *HashMap[K, V]) iteratorAt(slot int) Iterator[K, V] {
	if slot == conf.NoSlot {
		return H.End()
	}

	return Iterator[K, V]{hashMap: H, slot: slot, generation: H.records.Record(slot).Generation}
}

// Valid - Returns true if the iterator points at a live element
func (I Iterator[K, V]) Valid() bool {
	return I.hashMap != nil && I.slot != conf.NoSlot && I.hashMap.records.Valid(I.slot, I.generation)
}

// Equal - Returns true if both iterators are at the same position of the same map
func (I Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return I == other
}

// Next - Returns an iterator at the next older pair, End() after the oldest
func (I Iterator[K, V]) Next() Iterator[K, V] {
	I.mustBeValid()
	return I.hashMap.iteratorAt(I.hashMap.records.Record(I.slot).Next)
}

// Prev - Returns an iterator at the next newer pair, End() before the newest
func (I Iterator[K, V]) Prev() Iterator[K, V] {
	I.mustBeValid()
	return I.hashMap.iteratorAt(I.hashMap.records.Record(I.slot).Prev)
}

// Key - Returns the key of the element
func (I Iterator[K, V]) Key() K {
	I.mustBeValid()
	return I.hashMap.records.Record(I.slot).Key
}

// Value - Returns the value of the element
func (I Iterator[K, V]) Value() V {
	I.mustBeValid()
	return I.hashMap.records.Record(I.slot).Value
}

// ValuePtr - Returns a pointer to the value of the element, valid for as long as the element is not erased
func (I Iterator[K, V]) ValuePtr() *V {
	I.mustBeValid()
	return &I.hashMap.records.Record(I.slot).Value
}

// SetValue - Replaces the value of the element in place
func (I Iterator[K, V]) SetValue(value V) {
	I.mustBeValid()
	I.hashMap.records.Record(I.slot).Value = value
}

func (I Iterator[K, V]) mustBeValid() {
	if !I.Valid() {
		panic(InvalidIterator{})
	}
}

// All - Returns an iterator over all pairs, newest first. The pair just yielded may be erased from within
// the loop, any other mutation during the loop gives unspecified results.
func (H *HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for slot := H.records.Front(); slot != conf.NoSlot; {
			r := H.records.Record(slot)
			next := r.Next
			if !yield(r.Key, r.Value) {
				return
			}
			slot = next
		}
	}
}

// Keys - Returns an iterator over all keys, newest first
func (H *HashMap[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range H.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values - Returns an iterator over all values, newest first
func (H *HashMap[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range H.All() {
			if !yield(v) {
				return
			}
		}
	}
}
