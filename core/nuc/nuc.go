// core/nuc/nuc.go
package nuc

import "fmt"

// Lookup tables indexed by ASCII byte. Anything outside A/C/G/T(/U)
// complements to 'N' and encodes to the invalid code 4.
var complement [256]byte
var code [256]byte

func init() {
	for i := range complement {
		complement[i] = 'N'
		code[i] = 4
	}
	complement['A'] = 'T'; complement['a'] = 'T'
	complement['C'] = 'G'; complement['c'] = 'G'
	complement['G'] = 'C'; complement['g'] = 'C'
	complement['T'] = 'A'; complement['t'] = 'A'
	complement['U'] = 'A'; complement['u'] = 'A'

	code['A'] = 0; code['a'] = 0
	code['C'] = 1; code['c'] = 1
	code['G'] = 2; code['g'] = 2
	code['T'] = 3; code['t'] = 3
	code['U'] = 3; code['u'] = 3
}

// Complement returns the complementary base, or 'N' for anything that is
// not a recognized nucleotide.
func Complement(b byte) byte { return complement[b] }

// Code returns the 2-bit encoding of a base (A=0 C=1 G=2 T/U=3), or 4 for
// any other byte.
func Code(b byte) byte { return code[b] }

// Normalize returns an uppercased copy of seq with RNA 'U' mapped to 'T'.
// The input is never modified.
func Normalize(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if b == 'U' {
			b = 'T'
		}
		out[i] = b
	}
	return out
}

// Validate reports the first non-ACGT base in a normalized sequence.
func Validate(seq []byte) error {
	if len(seq) == 0 {
		return fmt.Errorf("empty sequence")
	}
	for i, b := range seq {
		if code[b] == 4 {
			return fmt.Errorf("invalid base %q at %d; allowed: A C G T U", b, i+1)
		}
	}
	return nil
}

// RevComp returns the reverse-complement of seq.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[seq[n-1-i]]
	}
	return out
}
