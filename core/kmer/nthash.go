// core/kmer/nthash.go
package kmer

import (
	"fmt"

	"github.com/will-rowe/nthash"
)

// NtHash is the default hasher: the ntHash rolling nucleotide hash, O(1)
// amortized per position. With Canonical set it hashes the lower of the
// forward and reverse-complement strands, making the table strand-agnostic.
type NtHash struct {
	Canonical bool
}

// Default returns the hasher used when none is injected.
func Default() Hasher { return NtHash{} }

func (n NtHash) HashAll(seq []byte, k int) ([]uint64, error) {
	if k < 1 || k > MaxK {
		return nil, ErrStrobeLength
	}
	if len(seq) < k {
		return nil, ErrSequenceTooShort
	}
	h, err := nthash.NewHasher(&seq, uint(k))
	if err != nil {
		return nil, fmt.Errorf("kmer: nthash: %w", err)
	}
	out := make([]uint64, 0, len(seq)-k+1)
	for {
		hv, ok := h.Next(n.Canonical)
		if !ok {
			break
		}
		out = append(out, hv)
	}
	return out, nil
}
