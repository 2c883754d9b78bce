package listhashmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("walks newest to oldest and back", func(t *testing.T) {
		// Prepare
		h := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}, {"c", 3}})

		// Execute
		var forward []string
		last := h.End()
		for it := h.Begin(); !it.Equal(h.End()); it = it.Next() {
			forward = append(forward, it.Key())
			last = it
		}
		var backward []string
		for it := last; it.Valid(); it = it.Prev() {
			backward = append(backward, it.Key())
		}

		// Check
		assert.Equal(t, []string{"c", "b", "a"}, forward, "newest first")
		assert.Equal(t, []string{"a", "b", "c"}, backward, "oldest first")
	})

	t.Run("sets values in place", func(t *testing.T) {
		// Prepare
		h := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}})

		// Execute
		for it := h.Begin(); it.Valid(); it = it.Next() {
			it.SetValue(it.Value() * 10)
		}
		*h.Find("a").ValuePtr() += 5

		// Check
		assert.Equal(t, "map[b:20 a:15]", h.String(), "values updated")
	})

	t.Run("is invalidated by erasing its element", func(t *testing.T) {
		// Prepare
		h := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}})
		it := h.Find("a")
		other := h.Find("b")

		// Execute
		h.Erase("a")

		// Check
		assert.False(t, it.Valid(), "erased element iterator invalid")
		assert.True(t, other.Valid(), "other iterator still valid")
		assert.PanicsWithValue(t, InvalidIterator{}, func() { it.Key() }, "key panics")
		assert.PanicsWithValue(t, InvalidIterator{}, func() { it.Value() }, "value panics")
		assert.PanicsWithValue(t, InvalidIterator{}, func() { it.Next() }, "next panics")
	})

	t.Run("is not revived when the slot is reused", func(t *testing.T) {
		// Prepare
		h := FromPairs([]Pair[string, int]{{"a", 1}})
		it := h.Find("a")
		h.Erase("a")

		// Execute
		h.Insert("z", 26)

		// Check
		assert.False(t, it.Valid(), "stale iterator stays invalid")
		assert.True(t, h.Find("z").Valid(), "new element iterator valid")
	})

	t.Run("end can not be dereferenced", func(t *testing.T) {
		// Prepare
		h := New[string, int]()

		// Check
		assert.False(t, h.End().Valid(), "end not valid")
		assert.PanicsWithValue(t, InvalidIterator{}, func() { h.End().Value() }, "value panics")
		assert.PanicsWithValue(t, InvalidIterator{}, func() { h.End().SetValue(1) }, "set value panics")
	})

	t.Run("zero iterator is not valid", func(t *testing.T) {
		// Prepare
		var it Iterator[string, int]

		// Check
		assert.False(t, it.Valid(), "zero value not valid")
	})

	t.Run("survives index rebuild", func(t *testing.T) {
		// Prepare
		h := New[int, string]()
		h.Insert(0, "zero")
		it := h.Find(0)
		capacity := h.Info().Capacity

		// Execute
		for i := 1; i < 100; i++ {
			h.Insert(i, "n")
		}

		// Check
		require.Greater(t, h.Info().Capacity, capacity, "index grew")
		assert.True(t, it.Valid(), "still valid")
		assert.Equal(t, "zero", it.Value(), "still reads its value")
		assert.False(t, it.Next().Valid(), "oldest element has no successor")
	})
}

func TestHashMap_All(t *testing.T) {
	t.Run("stops when asked", func(t *testing.T) {
		// Prepare
		h := FromPairs([]Pair[int, int]{{1, 1}, {2, 2}, {3, 3}})

		// Execute
		var seen []int
		for k := range h.Keys() {
			seen = append(seen, k)
			if len(seen) == 2 {
				break
			}
		}

		// Check
		assert.Equal(t, []int{3, 2}, seen, "two keys seen")
	})

	t.Run("allows erasing the current pair", func(t *testing.T) {
		// Prepare
		h := FromPairs([]Pair[int, int]{{1, 1}, {2, 2}, {3, 3}, {4, 4}})

		// Execute
		for k := range h.All() {
			if k%2 == 0 {
				h.Erase(k)
			}
		}

		// Check
		assert.Equal(t, []int{3, 1}, keysOf(h), "even keys erased")
		assertConsistent(t, h)
	})

	t.Run("is restartable", func(t *testing.T) {
		// Prepare
		h := FromPairs([]Pair[string, int]{{"a", 1}, {"b", 2}})
		seq := h.Values()

		// Execute
		var first, second []int
		for v := range seq {
			first = append(first, v)
		}
		for v := range seq {
			second = append(second, v)
		}

		// Check
		assert.Equal(t, []int{2, 1}, first, "first pass")
		assert.Equal(t, first, second, "second pass equal")
	})
}
