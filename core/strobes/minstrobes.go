// core/strobes/minstrobes.go
package strobes

import (
	"strobemers-core/kmer"
	"strobemers-core/window"
)

// MinStrobes generates order-2 or order-3 minstrobes: every downstream
// strobe is the leftmost minimum raw hash in its window, which makes the
// selection a minimizer and invariant under re-scanning the same table.
type MinStrobes struct {
	gen
	minima *window.Minima
}

// NewMin constructs a MinStrobes iterator over seq using the default
// ntHash rolling hasher.
func NewMin(seq []byte, cfg Config) (*MinStrobes, error) {
	return NewMinWithHasher(seq, cfg, kmer.Default())
}

// NewMinWithHasher substitutes the k-mer hasher before construction.
func NewMinWithHasher(seq []byte, cfg Config, h kmer.Hasher) (*MinStrobes, error) {
	g, err := newGen(seq, cfg, h)
	if err != nil {
		return nil, err
	}
	return minFromGen(g), nil
}

// NewMinWithTable reuses a prebuilt hash table, e.g. one shared across
// several iterators over the same sequence and hasher.
func NewMinWithTable(tbl kmer.Table, cfg Config) (*MinStrobes, error) {
	g, err := genFromTable(tbl, cfg)
	if err != nil {
		return nil, err
	}
	return minFromGen(g), nil
}

func minFromGen(g gen) *MinStrobes {
	return &MinStrobes{
		gen:    g,
		minima: window.NewMinima(g.hashes, g.cfg.WMax-g.cfg.WMin+1),
	}
}

// Next emits the fingerprint for the next anchor. Each selection round is
// re-anchored at the previously selected strobe, so for order 3 the second
// window is [m2+wMin, m2+wMax], not an offset of the original anchor.
func (m *MinStrobes) Next() (uint64, bool) {
	if m.done {
		return 0, false
	}
	anchor := m.idx
	if anchor > m.endHash { // reachable when wMin == 0
		m.done = true
		return 0, false
	}
	div := mixDiv[m.cfg.Order]
	fp := m.hashes[anchor] / div[0]
	var picked [MaxOrder]int
	picked[0] = anchor
	prev := anchor
	for round := 1; round < m.cfg.Order; round++ {
		j, ok := m.selectFrom(prev)
		if !ok {
			// buf keeps the last emitted tuple; a failed advance must not
			// clobber the side query
			m.done = true
			return 0, false
		}
		fp += m.hashes[j] / div[round]
		picked[round] = j
		prev = j
	}
	copy(m.buf, picked[:m.cfg.Order])
	m.emitted = true
	m.idx++
	return fp, true
}

// selectFrom picks the leftmost raw-minimum position downstream of anchor.
// Full windows come from the precomputed sliding minima in O(1); clipped
// terminal windows fall back to a linear scan (or end iteration when
// shrinking is off).
func (m *MinStrobes) selectFrom(anchor int) (int, bool) {
	if end := anchor + m.cfg.WMax; end <= m.endHash {
		loc, _ := m.minima.At(end)
		return loc, true
	}
	if !m.shrink {
		return 0, false
	}
	return window.SelectMin(m.hashes, anchor, m.cfg.WMin, m.cfg.WMax)
}
