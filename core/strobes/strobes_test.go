package strobes

import (
	"bytes"
	"testing"
)

// tableHasher injects a preset hash table, ignoring the sequence bytes.
// It lets tests pin the exact table the selectors see.
type tableHasher []uint64

func (h tableHasher) HashAll(seq []byte, k int) ([]uint64, error) {
	return h, nil
}

// seqFor returns a sequence sized so tableHasher h forms a valid table
// for strobe length k.
func seqFor(h tableHasher, k int) []byte {
	return bytes.Repeat([]byte("A"), len(h)+k-1)
}

// rising returns the table {0, 1, ..., n-1}: every window's minimum is its
// leftmost position.
func rising(n int) tableHasher {
	h := make(tableHasher, n)
	for i := range h {
		h[i] = uint64(i)
	}
	return h
}

type result struct {
	hash    uint64
	indexes []int
}

// drain pulls the iterator dry and verifies exhaustion is permanent.
func drain(t *testing.T, it Iterator) []result {
	t.Helper()
	var out []result
	for {
		h, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, result{h, append([]int(nil), it.Indexes()...)})
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("iterator produced a value after exhaustion")
		}
	}
	return out
}
