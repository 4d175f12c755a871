// core/window/minima.go
package window

import "math"

// Minima holds, for every fixed-width window over a hash table, the
// leftmost position of the minimum value. It is built once in O(n) with a
// monotonic deque and answers each full-window min query in O(1).
type Minima struct {
	width int
	loc   []int
	val   []uint64
}

// NewMinima precomputes sliding minima of the given width over h. Equal
// values keep the earlier position, so ties always resolve leftmost.
func NewMinima(h []uint64, width int) *Minima {
	if width < 1 {
		panic("window: minima width must be >= 1")
	}
	n := len(h)
	m := &Minima{width: width, loc: make([]int, n), val: make([]uint64, n)}
	if width == 1 {
		copy(m.val, h)
		for i := range m.loc {
			m.loc[i] = i
		}
		return m
	}
	for i := range m.val {
		m.val[i] = math.MaxUint64
	}

	// Ring-buffer deque of candidate positions, values ascending from the
	// head. Tail entries strictly greater than the incoming value can never
	// win again; equal ones stay so the earliest index survives at the head.
	idxQ := make([]int, width)
	valQ := make([]uint64, width)
	head, size := 0, 0
	for i, v := range h {
		winStart := i - width + 1
		if winStart < 0 {
			winStart = 0
		}
		for size > 0 && idxQ[head] < winStart {
			head = (head + 1) % width
			size--
		}
		for size > 0 && valQ[(head+size-1)%width] > v {
			size--
		}
		tail := (head + size) % width
		idxQ[tail], valQ[tail] = i, v
		size++
		if i >= width-1 {
			m.loc[i], m.val[i] = idxQ[head], valQ[head]
		}
	}
	return m
}

// At returns the leftmost minimum position and value of the window
// [end-width+1, end]. Only meaningful for end >= width-1.
func (m *Minima) At(end int) (int, uint64) {
	return m.loc[end], m.val[end]
}

// Width returns the window width the minima were computed for.
func (m *Minima) Width() int { return m.width }
