package strobes

import (
	"errors"
	"testing"
)

func TestRandStrobesDivergesFromMin(t *testing.T) {
	// Raw argmin in anchor 0's window is position 2 (value 1), but the
	// masked combine zeroes position 1's 2^20, so rand must pick 1.
	h := tableHasher{0, 1 << 20, 1, 7}
	cfg := Config{Order: 2, K: 2, WMin: 1, WMax: 2}
	ms, err := NewMinWithHasher(seqFor(h, 2), cfg, h)
	if err != nil {
		t.Fatalf("NewMinWithHasher: %v", err)
	}
	rs, err := NewRandWithHasher(seqFor(h, 2), cfg, h)
	if err != nil {
		t.Fatalf("NewRandWithHasher: %v", err)
	}
	if _, ok := ms.Next(); !ok {
		t.Fatal("minstrobes produced nothing")
	}
	if _, ok := rs.Next(); !ok {
		t.Fatal("randstrobes produced nothing")
	}
	if ms.Indexes()[1] != 2 || rs.Indexes()[1] != 1 {
		t.Fatalf("min picked %d and rand picked %d, want 2 and 1",
			ms.Indexes()[1], rs.Indexes()[1])
	}
}

func TestRandStrobesOrder3ReanchorsAtM2(t *testing.T) {
	// Small rising values never reach the mask, so the combine is monotone
	// and each round picks its window start.
	h := rising(14)
	cfg := Config{Order: 3, K: 3, WMin: 2, WMax: 4}
	rs, err := NewRandWithHasher(seqFor(h, 3), cfg, h)
	if err != nil {
		t.Fatalf("NewRandWithHasher: %v", err)
	}
	got := drain(t, rs)
	// m2 = i+2 and m3 = m2+2; the chain fits while i+4 <= 13.
	if len(got) != 10 {
		t.Fatalf("emitted %d records, want 10", len(got))
	}
	for i, r := range got {
		m1, m2, m3 := r.indexes[0], r.indexes[1], r.indexes[2]
		if m1 != i || m2 != i+2 || m3 != m2+2 {
			t.Fatalf("record %d indexes = %v, want [%d %d %d]", i, r.indexes, i, i+2, i+4)
		}
		if want := uint64(m1)/3 + uint64(m2)/4 + uint64(m3)/5; r.hash != want {
			t.Fatalf("record %d hash = %d, want %d", i, r.hash, want)
		}
	}
}

func TestRandStrobesSetPrime(t *testing.T) {
	h := tableHasher{0, 512, 1, 3}
	cfg := Config{Order: 2, K: 2, WMin: 1, WMax: 2}

	rs, err := NewRandWithHasher(seqFor(h, 2), cfg, h)
	if err != nil {
		t.Fatalf("NewRandWithHasher: %v", err)
	}
	if err := rs.SetPrime(100); !errors.Is(err, ErrPrimeTooSmall) {
		t.Fatalf("SetPrime(100) = %v, want ErrPrimeTooSmall", err)
	}
	if _, ok := rs.Next(); !ok {
		t.Fatal("no record under the default prime")
	}
	if rs.Indexes()[1] != 2 {
		t.Fatalf("default prime picked %d, want 2", rs.Indexes()[1])
	}

	// Mask 511 (from rounding 300 up to 512-1) zeroes out the 512 at
	// position 1 and flips the selection.
	rs, err = NewRandWithHasher(seqFor(h, 2), cfg, h)
	if err != nil {
		t.Fatalf("NewRandWithHasher: %v", err)
	}
	if err := rs.SetPrime(300); err != nil {
		t.Fatalf("SetPrime(300): %v", err)
	}
	if _, ok := rs.Next(); !ok {
		t.Fatal("no record under the small prime")
	}
	if rs.Indexes()[1] != 1 {
		t.Fatalf("small prime picked %d, want 1", rs.Indexes()[1])
	}
}

func TestRandStrobesDefaultHasherDeterministic(t *testing.T) {
	seq := []byte("ACGATCTGGTACCTAG")
	cfg := Config{Order: 2, K: 3, WMin: 3, WMax: 5}
	run := func() []result {
		rs, err := NewRand(seq, cfg)
		if err != nil {
			t.Fatalf("NewRand: %v", err)
		}
		return drain(t, rs)
	}
	a, b := run(), run()
	if len(a) != 11 {
		t.Fatalf("emitted %d records, want 11", len(a))
	}
	for i := range a {
		if a[i].hash != b[i].hash || a[i].indexes[1] != b[i].indexes[1] {
			t.Fatalf("record %d not reproducible: %+v vs %+v", i, a[i], b[i])
		}
		lo, hi := i+3, i+5
		if hi > 13 {
			hi = 13
		}
		if j := a[i].indexes[1]; j < lo || j > hi {
			t.Fatalf("record %d selected %d outside [%d %d]", i, j, lo, hi)
		}
	}
}

func TestRandStrobesNoShrink(t *testing.T) {
	h := rising(14)
	cfg := Config{Order: 2, K: 3, WMin: 3, WMax: 5}
	rs, err := NewRandWithHasher(seqFor(h, 3), cfg, h)
	if err != nil {
		t.Fatalf("NewRandWithHasher: %v", err)
	}
	rs.SetWindowShrink(false)
	if got := drain(t, rs); len(got) != 9 {
		t.Fatalf("emitted %d records with shrink off, want 9", len(got))
	}
}
