// core/strobes/strobes.go
//
// Strobemer generation: composite 64-bit fingerprints chained from 2 or 3
// short k-mers ("strobes") picked from bounded downstream windows. The two
// generators share everything except the window-selection policy:
// MinStrobes takes the leftmost minimum raw hash, RandStrobes the leftmost
// minimum of a masked combine with the previous strobe's hash.
package strobes

import (
	"math/bits"

	"strobemers-core/kmer"
)

// Iterator is the pull interface shared by MinStrobes and RandStrobes.
type Iterator interface {
	// Next returns the fingerprint for the next anchor, or ok=false once
	// the iterator is exhausted. Exhaustion is permanent.
	Next() (uint64, bool)
	// Index reports the anchor position of the most recent fingerprint.
	Index() (int, bool)
	// Indexes returns the strobe positions of the most recent fingerprint,
	// one per order. The slice is overwritten on every advance; callers
	// needing history must copy it out first.
	Indexes() []int
}

// mixDiv holds the per-round divisors of the fingerprint finalizer:
// order 2 -> h1/2 + h2/3, order 3 -> h1/3 + h2/4 + h3/5. The formula is
// part of the output contract: identical strobe tuples over identical
// tables always produce identical fingerprints.
var mixDiv = [MaxOrder + 1][]uint64{
	2: {2, 3},
	3: {3, 4, 5},
}

// gen carries the state common to both policies.
type gen struct {
	cfg     Config
	hashes  kmer.Table
	endHash int // last valid position in the table
	idx     int // next anchor
	done    bool
	shrink  bool
	emitted bool
	buf     []int // latest index tuple, overwritten per advance
}

func newGen(seq []byte, cfg Config, h kmer.Hasher) (gen, error) {
	if err := cfg.Validate(len(seq)); err != nil {
		return gen{}, err
	}
	tbl, err := kmer.Build(seq, cfg.K, h)
	if err != nil {
		return gen{}, err
	}
	return genFromTable(tbl, cfg)
}

// genFromTable wraps a prebuilt (possibly shared) hash table. The table
// implies the original sequence length.
func genFromTable(tbl kmer.Table, cfg Config) (gen, error) {
	if cfg.K < 1 || cfg.K > kmer.MaxK {
		return gen{}, kmer.ErrStrobeLength
	}
	if err := cfg.Validate(len(tbl) + cfg.K - 1); err != nil {
		return gen{}, err
	}
	return gen{
		cfg:     cfg,
		hashes:  tbl,
		endHash: len(tbl) - 1,
		shrink:  true,
		buf:     make([]int, cfg.Order),
	}, nil
}

// Indexes returns the in-place index tuple of the latest fingerprint.
func (g *gen) Indexes() []int { return g.buf }

// Index reports the latest anchor, or ok=false before the first advance.
func (g *gen) Index() (int, bool) {
	if !g.emitted {
		return 0, false
	}
	return g.buf[0], true
}

// SetWindowShrink controls terminal-window behavior. When on (the
// default) windows running past the table shrink to fit; when off, the
// first clipped window ends iteration.
func (g *gen) SetWindowShrink(s bool) { g.shrink = s }

// roundupPow2 rounds x up to the next power of two.
func roundupPow2(x uint64) uint64 {
	if x&(x-1) == 0 {
		return x
	}
	return 1 << bits.Len64(x)
}
