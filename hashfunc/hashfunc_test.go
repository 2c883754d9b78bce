package hashfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type key string

func TestComparable_HashFunc(t *testing.T) {
	t.Run("equal keys hash equal", func(t *testing.T) {
		// Prepare
		h := NewComparable[[2]int]()

		// Execute
		a := h.HashFunc([2]int{1, 2})
		b := h.HashFunc([2]int{1, 2})

		// Check
		assert.Equal(t, a, b, "same hash")
	})

	t.Run("copies share the seed", func(t *testing.T) {
		// Prepare
		h := NewComparable[string]()
		c := h

		// Check
		assert.Equal(t, h.HashFunc("abc"), c.HashFunc("abc"), "copy hashes the same")
	})

	t.Run("spreads distinct keys", func(t *testing.T) {
		// Prepare
		h := NewComparable[int]()
		seen := map[uint64]struct{}{}

		// Execute
		for i := 0; i < 1000; i++ {
			seen[h.HashFunc(i)] = struct{}{}
		}

		// Check
		assert.Len(t, seen, 1000, "no collisions on small ints")
	})
}

func TestCRC32_HashFunc(t *testing.T) {
	t.Run("creates the standard checksum", func(t *testing.T) {
		// Prepare
		h := CRC32[string]{}

		// Execute
		v := h.HashFunc("123456789")

		// Check
		assert.Equal(t, uint64(0xCBF43926), v, "CRC-32/IEEE check value")
	})

	t.Run("accepts named string types", func(t *testing.T) {
		// Prepare
		h := CRC32[key]{}

		// Check
		assert.Equal(t, CRC32[string]{}.HashFunc("abc"), h.HashFunc(key("abc")), "same as plain string")
	})
}

func TestXXHash_HashFunc(t *testing.T) {
	t.Run("creates the XXH64 value", func(t *testing.T) {
		// Prepare
		h := XXHash[string]{}

		// Execute
		v := h.HashFunc("")

		// Check
		assert.Equal(t, uint64(0xEF46DB3751D8E999), v, "XXH64 of empty input")
	})

	t.Run("is stable and discriminating", func(t *testing.T) {
		// Prepare
		h := XXHash[key]{}

		// Check
		assert.Equal(t, h.HashFunc("abc"), h.HashFunc("abc"), "stable")
		assert.NotEqual(t, h.HashFunc("abc"), h.HashFunc("abd"), "different keys differ")
	})
}

func TestFunc_HashFunc(t *testing.T) {
	t.Run("calls the wrapped function", func(t *testing.T) {
		// Prepare
		var h HashAlgorithm[int] = Func[int](func(k int) uint64 { return uint64(k * 2) })

		// Check
		assert.Equal(t, uint64(42), h.HashFunc(21), "function result")
	})
}
