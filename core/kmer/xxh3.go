// core/kmer/xxh3.go
package kmer

import "github.com/zeebo/xxh3"

// XX returns a seeded XXH3 window hasher. Unlike ntHash it is not rolling;
// every window is hashed independently, so it costs O(k) per position but
// accepts arbitrary bytes.
func XX(seed uint64) Hasher {
	return Func(func(window []byte) uint64 {
		return xxh3.HashSeed(window, seed)
	})
}
