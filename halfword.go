package srng

import "math/bits"

// 16-bit linear congruential whitening step.
const (
	halfwordMultiplier = 0x6329
	halfwordAddend     = 0x4321
)

// cycleTraps are the three states at which the halfword generator's
// cycle shortening bites: because each output consumes three generator
// bytes, the halfword sequence can cover only a third of the byte
// generator's cycle, and these states mark the affected sub-cycles. The
// values are the 64-bit fixed-point fractional parts of pi, e and phi,
// chosen because they are known to lie on distinct cycles; they carry no
// other meaning. A trapped state is moved to the next entry, cyclically.
var cycleTraps = [3]uint64{
	0x243F6A8885A308D3, // pi
	0xB7E151628AED2A6B, // e
	0x9E3779B97F4A7C15, // phi
}

// escapeCycleTrap relocates a trapped state onto the next flagged
// sub-cycle; any other state passes through unchanged.
func escapeCycleTrap(state uint64) uint64 {
	for i, trap := range cycleTraps {
		if state == trap {
			return cycleTraps[(i+1)%len(cycleTraps)]
		}
	}
	return state
}

// randomLinear applies one whitening round to a 16-bit value.
func randomLinear(previous uint16) uint16 {
	return previous*halfwordMultiplier + halfwordAddend
}

// randomHalfword produces one 16-bit output, advancing *state. Two
// generator bytes form the raw value; a third control byte selects a
// rotation amount (high 4 bits), a multiplier from {3, 5, 7, 9} (next 2
// bits), and 2-5 whitening rounds (low 2 bits).
func randomHalfword(state *uint64) uint16 {
	*state = escapeCycleTrap(*state)
	buffer := uint16(randomMultibyte(state, halfwordBytes))
	control := randomCombined(state)
	rotation := control >> 4
	multiplier := 3 + ((control & 12) >> 1)
	rounds := (control & 3) + 2
	for ; rounds > 0; rounds-- {
		buffer = randomLinear(buffer)
	}
	if rotation > 0 {
		buffer = bits.RotateLeft16(buffer, int(rotation))
	}
	return buffer * uint16(multiplier)
}
