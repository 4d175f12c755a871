// core/strobes/randstrobes.go
package strobes

import (
	"strobemers-core/kmer"
	"strobemers-core/window"
)

// RandStrobes generates order-2 or order-3 randstrobes: every downstream
// strobe minimizes (base + hash) & prime, where base is derived from the
// strobes already chosen. Different anchors therefore pick differently
// even over identical windows, yet the output is a pure function of the
// hash table.
type RandStrobes struct {
	gen
	prime uint64
}

// NewRand constructs a RandStrobes iterator over seq using the default
// ntHash rolling hasher.
func NewRand(seq []byte, cfg Config) (*RandStrobes, error) {
	return NewRandWithHasher(seq, cfg, kmer.Default())
}

// NewRandWithHasher substitutes the k-mer hasher before construction.
func NewRandWithHasher(seq []byte, cfg Config, h kmer.Hasher) (*RandStrobes, error) {
	g, err := newGen(seq, cfg, h)
	if err != nil {
		return nil, err
	}
	return &RandStrobes{gen: g, prime: DefaultPrime}, nil
}

// NewRandWithTable reuses a prebuilt hash table, e.g. one shared across
// several iterators over the same sequence and hasher.
func NewRandWithTable(tbl kmer.Table, cfg Config) (*RandStrobes, error) {
	g, err := genFromTable(tbl, cfg)
	if err != nil {
		return nil, err
	}
	return &RandStrobes{gen: g, prime: DefaultPrime}, nil
}

// SetPrime replaces the Mersenne mask used by the combine step. q must be
// at least 256 and is rounded up to the next power of two minus one, so
// the mask always covers a full bit range.
func (r *RandStrobes) SetPrime(q uint64) error {
	if q < minPrime {
		return ErrPrimeTooSmall
	}
	r.prime = roundupPow2(q) - 1
	return nil
}

// Next emits the fingerprint for the next anchor. Round 1 combines
// candidates with the anchor's raw hash; later rounds combine with the
// partial fingerprint accumulated so far, and each round is re-anchored at
// the previously selected strobe.
func (r *RandStrobes) Next() (uint64, bool) {
	if r.done {
		return 0, false
	}
	anchor := r.idx
	if anchor > r.endHash { // reachable when wMin == 0
		r.done = true
		return 0, false
	}
	div := mixDiv[r.cfg.Order]
	base := r.hashes[anchor]
	fp := base / div[0]
	var picked [MaxOrder]int
	picked[0] = anchor
	prev := anchor
	for round := 1; round < r.cfg.Order; round++ {
		if prev+r.cfg.WMax > r.endHash && !r.shrink {
			r.done = true
			return 0, false
		}
		j, ok := window.SelectRand(r.hashes, prev, r.cfg.WMin, r.cfg.WMax, base, r.prime)
		if !ok {
			// buf keeps the last emitted tuple; a failed advance must not
			// clobber the side query
			r.done = true
			return 0, false
		}
		fp += r.hashes[j] / div[round]
		picked[round] = j
		base = fp
		prev = j
	}
	copy(r.buf, picked[:r.cfg.Order])
	r.emitted = true
	r.idx++
	return fp, true
}
