package model

// Record - Represents one key/value pair stored in the ordered record list
//   - Key is set once when the record is created and never changed
//   - Value is mutable in place
//   - Prev and Next are slot numbers of the neighbours in the ordered list, conf.NoSlot at the ends
//   - Generation is bumped every time the slot is released, it lets iterators detect erased records
//   - InUse tells whether the slot currently holds a live record
type Record[K comparable, V any] struct {
	Key        K
	Value      V
	Prev       int
	Next       int
	Generation uint64
	InUse      bool
}

// BucketEntry - Represents one entry in a bucket chain, a copy of the key and the slot of its record
type BucketEntry[K comparable] struct {
	Key  K
	Slot int
}
