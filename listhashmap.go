// Package listhashmap implements a generic hash map that iterates in reverse insertion order.
//
// A HashMap keeps its key/value pairs in an ordered record list (newest first) and finds them through a
// separate bucket index whose chains point into that list. Pointers to values and iterators stay valid
// while other elements are inserted or erased, including when the bucket index grows.
//
// Insert never overwrites: the first value stored for a key wins. Use Ref to change a stored value.
//
// A HashMap is not safe for concurrent use.
package listhashmap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gostonefire/listhashmap/hashfunc"
	"github.com/gostonefire/listhashmap/internal/arena"
	"github.com/gostonefire/listhashmap/internal/conf"
	"github.com/gostonefire/listhashmap/internal/storage/separatechaining"
	"go.uber.org/zap"
)

// Pair - A key and its value
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// HashMapInfo - Information structure containing some information about the hash map
//   - Records is the number of key/value pairs stored
//   - Capacity is the number of buckets in the bucket index
//   - Rebuilds is the number of times the bucket index has grown since the map was created or last cleared
type HashMapInfo struct {
	Records  int
	Capacity int
	Rebuilds int
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Capacity is the number of buckets in the bucket index
//   - LoadFactor is Records / Capacity, always below 1 after an insertion
//   - LongestChain is the number of records in the most crowded bucket
//   - BucketDistribution is the number of records stored in each bucket
type HashMapStat struct {
	Records            int     `yaml:"records"`
	Capacity           int     `yaml:"capacity"`
	LoadFactor         float64 `yaml:"loadFactor"`
	LongestChain       int     `yaml:"longestChain"`
	BucketDistribution []int   `yaml:"bucketDistribution,flow"`
}

// Option - Configures a HashMap at creation time
type Option func(*settings)

type settings struct {
	logger *zap.Logger
}

// WithLogger - Makes the hash map log structural events (index rebuilds, clears) at debug level to logger.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// HashMap - The main implementation struct
type HashMap[K comparable, V any] struct {
	records       *arena.Arena[K, V]
	chains        *separatechaining.Chains[K]
	hashAlgorithm hashfunc.HashAlgorithm[K]
	logger        *zap.Logger
	rebuilds      int
}

// New - Returns a new, empty hash map using the default hashfunc.Comparable hash algorithm
func New[K comparable, V any](opts ...Option) *HashMap[K, V] {
	return NewWithHashAlgorithm[K, V](nil, opts...)
}

// NewWithHashAlgorithm - Returns a new, empty hash map that places keys using hashAlgorithm.
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm
//     interface, nil selects hashfunc.Comparable
//   - opts are optional settings such as WithLogger
func NewWithHashAlgorithm[K comparable, V any](hashAlgorithm hashfunc.HashAlgorithm[K], opts ...Option) *HashMap[K, V] {
	// If no HashAlgorithm was given then use the default internal
	if hashAlgorithm == nil {
		hashAlgorithm = hashfunc.NewComparable[K]()
	}

	s := settings{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&s)
	}

	return &HashMap[K, V]{
		records:       arena.New[K, V](),
		chains:        separatechaining.NewChains[K](conf.InitialCapacity),
		hashAlgorithm: hashAlgorithm,
		logger:        s.logger,
	}
}

// FromSeq - Returns a new hash map holding the pairs produced by seq, inserted in the order they are produced.
// Later pairs with a key already seen are ignored.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V], opts ...Option) *HashMap[K, V] {
	h := New[K, V](opts...)
	h.InsertSeq(seq)
	return h
}

// FromPairs - Returns a new hash map holding pairs, inserted in slice order. Later pairs with a key already
// seen are ignored.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option) *HashMap[K, V] {
	h := New[K, V](opts...)
	h.InsertPairs(pairs...)
	return h
}

// HashFunction - Returns the hash algorithm the map places keys with
func (H *HashMap[K, V]) HashFunction() hashfunc.HashAlgorithm[K] {
	return H.hashAlgorithm
}

// Len - Returns the number of key/value pairs
func (H *HashMap[K, V]) Len() int {
	return H.records.Len()
}

// Empty - Returns true if the map holds no pairs
func (H *HashMap[K, V]) Empty() bool {
	return H.records.Len() == 0
}

// Info - Returns size information about the hash map
func (H *HashMap[K, V]) Info() HashMapInfo {
	return HashMapInfo{
		Records:  H.records.Len(),
		Capacity: H.chains.Capacity(),
		Rebuilds: H.rebuilds,
	}
}

// Stat - Returns statistics on how the records are distributed over the buckets
func (H *HashMap[K, V]) Stat() (stat HashMapStat) {
	stat.Records = H.records.Len()
	stat.Capacity = H.chains.Capacity()
	stat.LoadFactor = float64(stat.Records) / float64(stat.Capacity)
	stat.BucketDistribution = H.chains.ChainLengths()
	for _, n := range stat.BucketDistribution {
		stat.LongestChain = max(stat.LongestChain, n)
	}

	return
}

// Clear - Removes all pairs and shrinks the bucket index back to a single bucket.
// Iterators and value pointers taken before Clear are no longer connected to the map.
func (H *HashMap[K, V]) Clear() {
	records := H.records.Len()
	H.records.Reset()
	H.chains.Reset(conf.InitialCapacity)
	H.rebuilds = 0

	H.logger.Debug("cleared hash map", zap.Int("records", records))
}

// Assign - Replaces the contents of the map with a copy of the pairs in other, keeping other's iteration order.
// The bucket index grows through the normal insert path so its capacity may differ from other's.
// Assigning a map to itself does nothing.
func (H *HashMap[K, V]) Assign(other *HashMap[K, V]) *HashMap[K, V] {
	if H == other {
		return H
	}

	H.Clear()
	if other == nil {
		return H
	}

	// Insert prepends, so replaying other from its oldest record reproduces its order
	for slot := other.records.Back(); slot != conf.NoSlot; {
		r := other.records.Record(slot)
		H.Insert(r.Key, r.Value)
		slot = r.Prev
	}

	return H
}

// Clone - Returns a new hash map with the same hash algorithm, logger and pairs (in the same order)
func (H *HashMap[K, V]) Clone() *HashMap[K, V] {
	c := NewWithHashAlgorithm[K, V](H.hashAlgorithm, WithLogger(H.logger))
	return c.Assign(H)
}

// String - Renders the map as map[k1:v1 k2:v2] in iteration order
func (H *HashMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range H.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')

	return sb.String()
}
