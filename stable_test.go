package srng

import "testing"

// packState builds a register from explicit sub-state fields through
// the portable encoding.
func packState(s stableState) uint64 {
	return uint64(s.shift) |
		uint64(s.carry)<<32 |
		uint64(s.current)<<40 |
		uint64(s.prev)<<48 |
		uint64(s.linear)<<56
}

// The four exceptional 7-cycles of the base-210 generator, as
// (prev, current, carry) triples in step order. The splice escape must
// prevent the generator from staying on any of them.
var shortCycles = [4][7][3]uint8{
	{{203, 61, 7}, {61, 141, 166}, {141, 176, 50}, {176, 220, 115}, {220, 211, 144}, {211, 8, 181}, {8, 203, 173}},
	{{150, 123, 14}, {123, 26, 123}, {26, 97, 101}, {97, 185, 21}, {185, 167, 79}, {167, 17, 152}, {17, 150, 137}},
	{{44, 247, 28}, {247, 52, 36}, {52, 194, 202}, {194, 114, 43}, {114, 79, 159}, {79, 35, 94}, {35, 44, 65}},
	{{88, 238, 57}, {238, 105, 72}, {105, 132, 195}, {132, 229, 86}, {229, 158, 108}, {158, 70, 188}, {70, 88, 130}},
}

func inShortCycle(prev, current, carry uint8) bool {
	for _, cycle := range shortCycles {
		for _, triple := range cycle {
			if prev == triple[0] && current == triple[1] && carry == triple[2] {
				return true
			}
		}
	}
	return false
}

// The linear counter must visit all 256 values before repeating.
func TestLinearCounterFullPeriod(t *testing.T) {
	s := stableState{}
	seen := make(map[uint8]bool, 256)
	for i := 0; i < 256; i++ {
		v := nextLinear(&s)
		if seen[v] {
			t.Fatalf("counter repeated value %d after %d steps", v, i)
		}
		seen[v] = true
	}
	if nextLinear(&s) != 29 {
		t.Error("counter did not wrap back to its first value")
	}
}

// Starting inside any of the documented short cycles, the generator must
// leave the short-cycle family within the length of the splice chain and
// stay out.
func TestShortCycleEscape(t *testing.T) {
	for ci := range shortCycles {
		start := shortCycles[ci][3]
		state := packState(stableState{
			shift:   0x12345678,
			carry:   start[2],
			current: start[1],
			prev:    start[0],
			linear:  99,
		})

		const draws = 64
		inside := 0
		lastInside := -1
		for i := 0; i < draws; i++ {
			s := stableState{
				carry:   uint8(state >> 32),
				current: uint8(state >> 40),
				prev:    uint8(state >> 48),
			}
			if inShortCycle(s.prev, s.current, s.carry) {
				inside++
				lastInside = i
			}
			randomCombined(&state)
		}
		// At most the whole splice chain (4 cycles of 7) plus the
		// starting position may lie inside.
		if inside > 29 {
			t.Errorf("cycle %d: %d of %d states inside the short-cycle family", ci, inside, draws)
		}
		if lastInside >= draws-20 {
			t.Errorf("cycle %d: still inside the family at step %d", ci, lastInside)
		}
	}
}

// Each listed short-cycle state must be replaced by the next splice
// entry; unlisted states pass through.
func TestSpliceChainOrder(t *testing.T) {
	for i := 0; i < len(spliceChain)-1; i++ {
		s := stableState{prev: spliceChain[i].prev, current: spliceChain[i].current, carry: spliceChain[i].carry}
		escapeShortCycle(&s)
		next := spliceChain[i+1]
		if s.prev != next.prev || s.current != next.current || s.carry != next.carry {
			t.Errorf("entry %d spliced to (%d, %d, %d), want (%d, %d, %d)",
				i, s.prev, s.current, s.carry, next.prev, next.current, next.carry)
		}
	}

	// The landing entry and ordinary states are left alone.
	landing := spliceChain[len(spliceChain)-1]
	s := stableState{prev: landing.prev, current: landing.current, carry: landing.carry}
	escapeShortCycle(&s)
	if s.prev != landing.prev || s.current != landing.current || s.carry != landing.carry {
		t.Error("landing entry was spliced")
	}
	s = stableState{prev: 1, current: 2, carry: 3}
	escapeShortCycle(&s)
	if s.prev != 1 || s.current != 2 || s.carry != 3 {
		t.Error("ordinary state was spliced")
	}
}

// A start state with a listed carry walks the table to its end and is
// seeded from the first splice entry with one extra counter step; start
// states with unlisted carries are untouched.
func TestStartStateWalk(t *testing.T) {
	for _, carry := range startCarries {
		s := stableState{carry: carry, linear: 7}
		escapeStartState(&s)
		first := spliceChain[0]
		if s.prev != first.prev || s.current != first.current || s.carry != first.carry {
			t.Errorf("carry %d: walked to (%d, %d, %d), want first splice entry", carry, s.prev, s.current, s.carry)
		}
		stepped := stableState{linear: 7}
		nextLinear(&stepped)
		if s.linear != stepped.linear {
			t.Errorf("carry %d: linear = %d, want %d (one counter step)", carry, s.linear, stepped.linear)
		}
	}

	s := stableState{carry: 42, linear: 7}
	escapeStartState(&s)
	if s.prev != 0 || s.current != 0 || s.carry != 42 || s.linear != 7 {
		t.Error("unlisted start carry was modified")
	}
}

// All listed start carries with identical shift and counter collapse
// onto one stream; an unlisted carry keeps its own.
func TestStartCarryCollapse(t *testing.T) {
	reference := uint64(0)
	var refBytes [8]uint8
	for i := range refBytes {
		refBytes[i] = randomCombined(&reference)
	}

	for _, carry := range startCarries[1:] {
		state := uint64(carry) << 32
		for i, want := range refBytes {
			if got := randomCombined(&state); got != want {
				t.Fatalf("carry %d: byte %d = %d, want %d", carry, i, got, want)
			}
		}
		if state != reference {
			t.Errorf("carry %d: final state = %016X, want %016X", carry, state, reference)
		}
	}

	distinct := uint64(42) << 32
	same := true
	for _, want := range refBytes {
		if randomCombined(&distinct) != want {
			same = false
			break
		}
	}
	if same {
		t.Error("unlisted start carry collapsed onto the zero-carry stream")
	}
}

// The all-maximum absorbing state (sum 719) must not absorb: successive
// draws keep moving the state.
func TestAbsorbingStateEscape(t *testing.T) {
	state := packState(stableState{
		shift:   0xCAFEBABE,
		carry:   209,
		current: 255,
		prev:    255,
		linear:  11,
	})
	previous := state
	for i := 0; i < 16; i++ {
		randomCombined(&state)
		if state == previous {
			t.Fatalf("state stuck at %016X after draw %d", state, i)
		}
		s := stableState{carry: uint8(state >> 32), current: uint8(state >> 40), prev: uint8(state >> 48)}
		if s.prev == 255 && s.current == 255 && s.carry == 209 {
			t.Fatalf("draw %d returned to the absorbing state", i)
		}
		previous = state
	}
}
