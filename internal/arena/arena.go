// Package arena holds the ordered record list of the hash map.
//
// Records live in fixed-size pages that are never moved once allocated, so a pointer to a record
// (or to its value) stays valid until that very record is removed. Records are chained into a
// doubly linked list by slot number, front being the most recently pushed record. Slots released
// by Remove are reused by later pushes.
package arena

import (
	"github.com/gostonefire/listhashmap/internal/conf"
	"github.com/gostonefire/listhashmap/internal/model"
)

// Arena - Slot-stable ordered list of records
type Arena[K comparable, V any] struct {
	pages          [][]model.Record[K, V]
	free           []int
	allocated      int
	front          int
	back           int
	length         int
	nextGeneration uint64
}

// New - Returns a pointer to a new, empty Arena
func New[K comparable, V any]() *Arena[K, V] {
	return &Arena[K, V]{front: conf.NoSlot, back: conf.NoSlot, nextGeneration: 1}
}

// Len - Returns the number of live records
func (A *Arena[K, V]) Len() int {
	return A.length
}

// Front - Returns the slot of the most recently pushed live record, or conf.NoSlot if empty
func (A *Arena[K, V]) Front() int {
	return A.front
}

// Back - Returns the slot of the oldest live record, or conf.NoSlot if empty
func (A *Arena[K, V]) Back() int {
	return A.back
}

// Record - Returns a pointer to the record in slot. The pointer is stable for as long as the record
// is not removed. Slot must be a slot previously returned by PushFront.
func (A *Arena[K, V]) Record(slot int) *model.Record[K, V] {
	return &A.pages[slot/conf.PageSize][slot%conf.PageSize]
}

// Valid - Returns true if slot holds a live record created with the given generation
func (A *Arena[K, V]) Valid(slot int, generation uint64) bool {
	if slot < 0 || slot >= A.allocated {
		return false
	}
	r := A.Record(slot)

	return r.InUse && r.Generation == generation
}

// PushFront - Stores a new record in front of the list.
// It returns:
//   - slot is the slot number of the new record
//   - generation is the generation stamped on the record, unique over the lifetime of the arena
func (A *Arena[K, V]) PushFront(key K, value V) (slot int, generation uint64) {
	slot = A.allocate()
	generation = A.nextGeneration
	A.nextGeneration++

	r := A.Record(slot)
	r.Key = key
	r.Value = value
	r.Prev = conf.NoSlot
	r.Next = A.front
	r.Generation = generation
	r.InUse = true

	if A.front != conf.NoSlot {
		A.Record(A.front).Prev = slot
	} else {
		A.back = slot
	}
	A.front = slot
	A.length++

	return
}

// Remove - Unlinks the record in slot and releases the slot for reuse.
// Removing a slot that is not live is a no-op.
func (A *Arena[K, V]) Remove(slot int) {
	if slot < 0 || slot >= A.allocated {
		return
	}
	r := A.Record(slot)
	if !r.InUse {
		return
	}

	if r.Prev != conf.NoSlot {
		A.Record(r.Prev).Next = r.Next
	} else {
		A.front = r.Next
	}
	if r.Next != conf.NoSlot {
		A.Record(r.Next).Prev = r.Prev
	} else {
		A.back = r.Prev
	}

	// Drop key and value so the garbage collector can reclaim what they reference
	var zeroK K
	var zeroV V
	r.Key = zeroK
	r.Value = zeroV
	r.Prev = conf.NoSlot
	r.Next = conf.NoSlot
	r.InUse = false

	A.free = append(A.free, slot)
	A.length--
}

// Reset - Drops all records and pages. Pointers handed out earlier are detached from the arena,
// generations keep counting so iterators taken before the reset never become valid again.
func (A *Arena[K, V]) Reset() {
	A.pages = nil
	A.free = nil
	A.allocated = 0
	A.front = conf.NoSlot
	A.back = conf.NoSlot
	A.length = 0
}

// allocate - Returns a free slot, reusing released slots before growing into a new page
func (A *Arena[K, V]) allocate() (slot int) {
	if n := len(A.free); n > 0 {
		slot = A.free[n-1]
		A.free = A.free[:n-1]
		return
	}

	if A.allocated == len(A.pages)*conf.PageSize {
		A.pages = append(A.pages, make([]model.Record[K, V], conf.PageSize))
	}
	slot = A.allocated
	A.allocated++

	return
}
