// core/strobes/config.go
package strobes

import (
	"errors"

	"strobemers-core/kmer"
)

// Strobemer orders supported by the generators.
const (
	MinOrder = 2
	MaxOrder = 3
)

// DefaultPrime is the Mersenne mask (2^20 - 1) the rand-policy combine uses
// unless SetPrime overrides it.
const DefaultPrime uint64 = 1<<20 - 1

// minPrime is the smallest value SetPrime accepts.
const minPrime = 256

var (
	ErrInvalidSequence   = errors.New("strobes: sequence is empty")
	ErrOrderNotSupported = errors.New("strobes: order must be 2 or 3")
	ErrWindowOffsets     = errors.New("strobes: window offsets must satisfy 0 <= w_min <= w_max")
	ErrSequenceTooShort  = errors.New("strobes: sequence too short for given parameters")
	ErrPrimeTooSmall     = errors.New("strobes: prime must be >= 256")
)

// Config fixes the shape of every strobemer an iterator produces. It is
// immutable once an iterator is constructed.
type Config struct {
	Order int // strobes per fingerprint: 2 or 3
	K     int // strobe (k-mer) length
	WMin  int // minimum window offset from the previous strobe
	WMax  int // maximum window offset (inclusive)
}

// Validate fails fast on any parameter an iterator could not honor for a
// sequence of length seqLen; no iterator is ever partially constructed on
// a bad config. WMin == 0 is legal: the degenerate window may select the
// previous strobe's own position.
func (c Config) Validate(seqLen int) error {
	if seqLen == 0 {
		return ErrInvalidSequence
	}
	if c.Order < MinOrder || c.Order > MaxOrder {
		return ErrOrderNotSupported
	}
	if c.K < 1 || c.K > kmer.MaxK {
		return kmer.ErrStrobeLength
	}
	if c.WMin < 0 || c.WMin > c.WMax {
		return ErrWindowOffsets
	}
	// The weakest length guaranteeing one full selection chain under
	// shrink semantics: anchor 0 plus Order-1 minimum hops.
	if seqLen < c.K+(c.Order-1)*c.WMin {
		return ErrSequenceTooShort
	}
	return nil
}
