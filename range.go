package srng

// randomRange maps a raw 16-bit draw onto [0, limit) without modulo
// bias, advancing *state. A limit of 1 returns 0 without drawing at all,
// which is what lets a caller reseed a state without consuming
// randomness. A limit of 0 or a power of two reduces by masking. Any
// other limit rejection-samples: draws below 65536 mod limit would be
// over-represented by naive reduction, so such draws are retried until
// one clears the biased region. Each retry accepts with probability at
// least (limit - bias)/65536, so the loop terminates quickly in
// expectation.
func randomRange(state *uint64, limit uint16) uint16 {
	if limit == 1 {
		return 0
	}
	result := randomHalfword(state)
	if limit&(limit-1) == 0 {
		return result & (limit - 1)
	}
	if result >= limit {
		return result % limit
	}
	resamplingLimit := uint16(0x10000 % uint32(limit))
	for result < resamplingLimit {
		result = randomHalfword(state)
	}
	return result % limit
}
