package srng

import (
	"encoding/binary"

	"github.com/aaaaaa123456789/libsrng/internal"
)

// Seed-derivation whitening constants. The multiplier is shared by both
// halves; each half gets its own addend.
const (
	seedMultiplier   = 0x5851F42D4C957F2D
	seedFirstAddend  = 0x0123456789ABCDEF
	seedSecondAddend = 0x0FEDCBA987654321
)

// randomSeed derives a replacement state from the current one. Eight
// generator bytes and four halfword outputs are assembled into two
// 64-bit halves, each whitened with a linear congruential step, and the
// XOR of the halves becomes the new state. The caller replaces the old
// state wholesale; this is how independent sequences are derived.
func randomSeed(state *uint64) uint64 {
	first := randomMultibyte(state, seedBytes)
	first = first*seedMultiplier + seedFirstAddend
	var second uint64
	for i := 0; i < 4; i++ {
		second = second<<16 + uint64(randomHalfword(state))
	}
	second = second*seedMultiplier + seedSecondAddend
	return first ^ second
}

// SeedBytes derives a 64-bit seed from arbitrary byte material by
// hashing it with BLAKE2b-512 and taking the first eight bytes
// little-endian. It gives textual or structured seeds a uniform spread
// over the state space; the result is just a starting state, with no
// security properties.
func SeedBytes(data []byte) uint64 {
	digest := internal.Blake2b512(data)
	return binary.LittleEndian.Uint64(digest[:8])
}
