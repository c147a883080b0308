// Package srng implements the libsrng stable pseudorandom number
// generator: a deterministic, non-cryptographic PRNG whose entire state
// is a single caller-held 64-bit value.
//
// The generator produces 16-bit outputs, optionally reduced to an
// arbitrary range without modulo bias, and supports deriving independent
// streams from one base seed through a reseed operation. For the same
// initial state the output sequence is bit-identical on every platform,
// so a state value can be stored or transmitted verbatim and resumed
// later.
//
// Example usage:
//
//	s := srng.NewStream(srng.SeedBytes([]byte("my seed")))
//	roll := s.Range(6) + 1
//
// The low-level entry point mirrors the original C API:
//
//	state := uint64(0x0123456789ABCDEF)
//	v := srng.Random(&state, 10, 0) // value in [0, 10)
//
// This package is not suitable for security-sensitive uses: the
// generator is not designed to resist prediction or state recovery.
package srng

// Random generates one pseudorandom value, advancing *state.
//
// limit selects the output range: 0 produces a full 16-bit value, 1
// returns 0 without consuming any randomness (useful to reseed a state
// without drawing), and any other value produces a result in [0, limit)
// with no modulo bias.
//
// reseed applies the seed-derivation function that many times before
// drawing, replacing the state wholesale each time; this is how multiple
// independent sequences are derived from one base state.
//
// A nil state is the only error condition: Random returns 0 and no state
// is modified.
func Random(state *uint64, limit uint16, reseed uint) uint16 {
	if state == nil {
		return 0
	}
	for ; reseed > 0; reseed-- {
		*state = randomSeed(state)
	}
	return randomRange(state, limit)
}

// Stream is a convenience wrapper holding one generator state.
//
// A Stream is not safe for concurrent use: every draw is a
// read-modify-write of the state. Give each goroutine its own Stream,
// derived via Fork.
type Stream struct {
	state uint64
}

// NewStream returns a Stream starting from the given seed. Any 64-bit
// value is a legal seed, including zero.
func NewStream(seed uint64) *Stream {
	return &Stream{state: seed}
}

// Uint16 returns the next full-width 16-bit value.
func (s *Stream) Uint16() uint16 {
	return Random(&s.state, 0, 0)
}

// Range returns a value in [0, limit) without modulo bias. A limit of 0
// is equivalent to Uint16; a limit of 1 returns 0 without consuming any
// randomness.
func (s *Stream) Range(limit uint16) uint16 {
	return Random(&s.state, limit, 0)
}

// Reseed replaces the stream's state by applying the seed-derivation
// function n times. It consumes no randomness beyond the derivation
// itself and produces no output.
func (s *Stream) Reseed(n uint) {
	Random(&s.state, 1, n)
}

// Fork derives an independent stream: the receiver is reseeded once and
// a copy of the resulting state is reseeded once more, so the two
// streams continue from states on unrelated sequences.
func (s *Stream) Fork() *Stream {
	s.Reseed(1)
	child := &Stream{state: s.state}
	child.Reseed(1)
	return child
}

// State returns the current 64-bit state. It is the stream's entire
// serializable representation; a Stream restored with SetState resumes
// the exact sequence.
func (s *Stream) State() uint64 {
	return s.state
}

// SetState replaces the stream's state.
func (s *Stream) SetState(state uint64) {
	s.state = state
}
