// core/kmer/hasher.go
package kmer

import (
	"errors"
	"fmt"
)

// MaxK is the longest strobe length the default rolling hasher supports.
const MaxK = 64

var (
	ErrStrobeLength     = errors.New("kmer: strobe length must be between 1 and 64")
	ErrSequenceTooShort = errors.New("kmer: sequence shorter than strobe length")
	ErrIncompleteHashes = errors.New("kmer: hasher returned an incomplete table")
)

// A Hasher maps every k-length window of a sequence to a 64-bit value.
// Implementations must be pure: identical (seq, k) inputs always yield the
// identical table, with one entry per start position 0..len(seq)-k.
type Hasher interface {
	HashAll(seq []byte, k int) ([]uint64, error)
}

// Func adapts a per-window hash function into a Hasher by sliding it over
// the sequence. Custom hashers that are not rolling plug in this way.
type Func func(window []byte) uint64

func (f Func) HashAll(seq []byte, k int) ([]uint64, error) {
	if k < 1 || k > MaxK {
		return nil, ErrStrobeLength
	}
	if len(seq) < k {
		return nil, ErrSequenceTooShort
	}
	out := make([]uint64, 0, len(seq)-k+1)
	for i := 0; i+k <= len(seq); i++ {
		out = append(out, f(seq[i:i+k]))
	}
	return out, nil
}

// Table is the per-position k-mer hash table: entry i is the hash of
// seq[i:i+k]. It is immutable once built and safe to share read-only
// across iterators.
type Table []uint64

// Build runs the hasher over seq once and returns the completed table.
// Strobe selection downstream consults the table only, never the hasher.
func Build(seq []byte, k int, h Hasher) (Table, error) {
	if k < 1 || k > MaxK {
		return nil, ErrStrobeLength
	}
	if len(seq) < k {
		return nil, ErrSequenceTooShort
	}
	hv, err := h.HashAll(seq, k)
	if err != nil {
		return nil, fmt.Errorf("kmer: hash table build: %w", err)
	}
	if len(hv) != len(seq)-k+1 {
		return nil, ErrIncompleteHashes
	}
	return Table(hv), nil
}
