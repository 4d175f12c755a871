// core/window/window.go
package window

// Policy selects how the next strobe position is chosen from a window.
type Policy uint8

const (
	// Min picks the position with the smallest raw hash (minstrobes).
	Min Policy = iota
	// Rand picks the position minimizing (base + hash) & prime (randstrobes).
	Rand
)

// Select scans h over the inclusive window [anchor+wMin, anchor+wMax],
// clipped to the table, and returns the chosen position under the policy.
// ok is false when the clipped window is empty. base and prime are only
// consulted by the Rand policy.
func Select(h []uint64, anchor, wMin, wMax int, p Policy, base, prime uint64) (int, bool) {
	if p == Rand {
		return SelectRand(h, anchor, wMin, wMax, base, prime)
	}
	return SelectMin(h, anchor, wMin, wMax)
}

// SelectMin returns the position of the smallest hash in the clipped
// window. Ties go to the leftmost position.
func SelectMin(h []uint64, anchor, wMin, wMax int) (int, bool) {
	start, end := anchor+wMin, anchor+wMax
	if last := len(h) - 1; end > last {
		end = last
	}
	if start > end {
		return 0, false
	}
	best := start
	for pos := start + 1; pos <= end; pos++ {
		if h[pos] < h[best] {
			best = pos
		}
	}
	return best, true
}

// SelectRand returns the position minimizing (base + h[pos]) & prime over
// the clipped window; prime is a Mersenne mask so the combine reduces to a
// cheap masked add. The result depends on both the previous strobe's hash
// and the candidate's, which is what makes the pick pseudo-random across
// anchors while staying exactly reproducible. Ties go to the leftmost
// position.
func SelectRand(h []uint64, anchor, wMin, wMax int, base, prime uint64) (int, bool) {
	start, end := anchor+wMin, anchor+wMax
	if last := len(h) - 1; end > last {
		end = last
	}
	if start > end {
		return 0, false
	}
	best, bestVal := start, (base+h[start])&prime
	for pos := start + 1; pos <= end; pos++ {
		if cand := (base + h[pos]) & prime; cand < bestVal {
			best, bestVal = pos, cand
		}
	}
	return best, true
}
