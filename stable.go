package srng

// stableState is the 5-field decomposition of the 64-bit generator
// state used by the core byte generator. Field order matters: the
// overlay register view reinterprets the state in memory as this exact
// struct (see register.go), and the packed view reproduces the same
// layout explicitly, so the two stay bit-compatible.
//
//	shift   bits  0-31: xorshift32 scrambling register
//	carry   bits 32-39: base-210 multiply-with-carry generator
//	current bits 40-47: same generator
//	prev    bits 48-55: same generator
//	linear  bits 56-63: full-period 8-bit counter (phase selector and
//	                    escape-hatch entropy source)
type stableState struct {
	shift   uint32
	carry   uint8
	current uint8
	prev    uint8
	linear  uint8
}

// The base-210 generator has modulus p = 210*256^2 - 1 = 29 * 474571.
// Its exceptional short cycles are the four 7-cycles of the
// 474571-divisible residue class. spliceChain lists one state from each
// of those cycles plus a final landing state on a full-period cycle
// (residue 3141592); whenever the generator reaches a listed state it is
// moved to the next entry, stitching the short cycles into one chain
// that exits onto a full-period cycle.
var spliceChain = [5]struct{ prev, current, carry uint8 }{
	{203, 61, 7},
	{150, 123, 14},
	{44, 247, 28},
	{88, 238, 57},
	{216, 239, 47},
}

// startCarries lists the carry values whose start state (prev and
// current both zero) lies outside the full-period residue class: zero
// and the multiples of 29 below 210. A generator still at its start
// state walks this table to its end and is then seeded from the first
// splice entry.
var startCarries = [8]uint8{0, 29, 58, 87, 116, 145, 174, 203}

// nextLinear advances the 8-bit linear counter and returns its new
// value. The recurrence x*73 + 29 has full period 256 (multiplier is
// 1 mod 4, addend is odd).
func nextLinear(s *stableState) uint8 {
	s.linear = s.linear*73 + 29
	return s.linear
}

// stableRandom produces one 8-bit output and advances the sub-state.
// It is the only code that reads or writes the five fields.
func stableRandom(s *stableState) uint8 {
	// A zero scrambling register would stay zero forever; refill it
	// from the linear counter one byte at a time.
	if s.shift == 0 {
		for i := 0; i < 4; i++ {
			s.shift = s.shift<<8 | uint32(nextLinear(s))
		}
	}
	s.shift ^= s.shift >> 8
	s.shift ^= s.shift << 9
	s.shift ^= s.shift >> 23

	if s.prev == 0 && s.current == 0 {
		escapeStartState(s)
	} else {
		escapeShortCycle(s)
	}

	if s.carry >= 210 {
		s.carry -= 210
	}

	// The multiply-with-carry step has two absorbing states: all three
	// fields zero, and all three at their maximum (sum 719). Reseed
	// from the linear counter if either is reached.
	sum := uint32(s.carry) + uint32(s.prev) + uint32(s.current)
	if sum == 0 || sum == 719 {
		s.prev = nextLinear(s)
		s.carry = nextLinear(s)
		s.current = nextLinear(s)
	}

	value := 210*uint32(s.prev) + uint32(s.carry)
	s.prev = s.current
	s.current = uint8(value)
	s.carry = uint8(value >> 8)

	nextLinear(s)

	// Mix one byte of the scrambling register, at a phase chosen by the
	// linear counter, with the generator output; two more counter bits
	// choose among four combining operators.
	mixed := uint8(s.shift >> ((s.linear >> 3) & 24))
	switch (s.linear >> 4) & 3 {
	case 0:
		return mixed + s.current
	case 1:
		return mixed ^ s.current
	case 2:
		return mixed - s.current
	default:
		return s.current - mixed
	}
}

// escapeStartState walks the start-table while the generator is still at
// a start state (prev and current both zero). Carries not in the table
// are left alone; listed carries walk to the table's end, where the
// triple is seeded from the first splice entry and the linear counter
// advances once.
func escapeStartState(s *stableState) {
	for s.prev == 0 && s.current == 0 {
		index := -1
		for i, c := range startCarries {
			if s.carry == c {
				index = i
				break
			}
		}
		if index < 0 {
			return
		}
		if index+1 < len(startCarries) {
			s.carry = startCarries[index+1]
			continue
		}
		s.prev = spliceChain[0].prev
		s.current = spliceChain[0].current
		s.carry = spliceChain[0].carry
		nextLinear(s)
	}
}

// escapeShortCycle relocates the generator when it lands on a known
// short-cycle state, replacing it with the next entry in the splice
// chain. The last entry is a landing point only and is never matched.
func escapeShortCycle(s *stableState) {
	for i := 0; i < len(spliceChain)-1; i++ {
		e := spliceChain[i]
		if s.prev == e.prev && s.current == e.current && s.carry == e.carry {
			next := spliceChain[i+1]
			s.prev = next.prev
			s.current = next.current
			s.carry = next.carry
			return
		}
	}
}
