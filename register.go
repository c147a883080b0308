package srng

import "unsafe"

// registerView adapts the opaque 64-bit state to the byte generator's
// sub-state. Two implementations exist: packedView, which unpacks and
// repacks the five fields through the fixed bit offsets and is correct
// everywhere, and overlayView, which reinterprets the state in place and
// is used only after init verifies it produces the identical mapping.
// The choice is a performance detail and never observable in output.
type registerView interface {
	random(state *uint64) uint8
}

// packedView is the portable encoding: five explicit shifts in, five
// explicit shifts out.
type packedView struct{}

func (packedView) random(state *uint64) uint8 {
	s := stableState{
		shift:   uint32(*state),
		carry:   uint8(*state >> 32),
		current: uint8(*state >> 40),
		prev:    uint8(*state >> 48),
		linear:  uint8(*state >> 56),
	}
	result := stableRandom(&s)
	*state = uint64(s.shift) |
		uint64(s.carry)<<32 |
		uint64(s.current)<<40 |
		uint64(s.prev)<<48 |
		uint64(s.linear)<<56
	return result
}

// overlayView reinterprets the state's memory directly as a stableState.
// Valid only when the struct layout and host byte order reproduce the
// packed encoding, which overlayCompatible verifies at init.
type overlayView struct{}

func (overlayView) random(state *uint64) uint8 {
	return stableRandom((*stableState)(unsafe.Pointer(state)))
}

// overlayCompatible reports whether the in-place reinterpretation yields
// the same field mapping as the packed encoding on this platform.
func overlayCompatible() bool {
	if unsafe.Sizeof(stableState{}) != unsafe.Sizeof(uint64(0)) {
		return false
	}
	probe := uint64(0x0123456789ABCDEF)
	s := (*stableState)(unsafe.Pointer(&probe))
	return s.shift == 0x89ABCDEF &&
		s.carry == 0x67 &&
		s.current == 0x45 &&
		s.prev == 0x23 &&
		s.linear == 0x01
}

// activeView is selected once; both implementations are bit-identical
// wherever overlayView is usable at all.
var activeView registerView = pickView()

func pickView() registerView {
	if overlayCompatible() {
		return overlayView{}
	}
	return packedView{}
}

// randomCombined draws one byte from the generator, advancing *state.
func randomCombined(state *uint64) uint8 {
	return activeView.random(state)
}

// byteCount is the width argument of randomMultibyte. Widths above 8
// would overflow the result; keeping the type unexported with fixed
// constants makes that case unrepresentable rather than checked.
type byteCount int

const (
	halfwordBytes byteCount = 2
	seedBytes     byteCount = 8
)

// randomMultibyte concatenates width generator bytes big-endian: the
// first byte drawn becomes the most significant.
func randomMultibyte(state *uint64, width byteCount) uint64 {
	var result uint64
	for ; width > 0; width-- {
		result = result<<8 | uint64(randomCombined(state))
	}
	return result
}
