// Package u16math provides saturating and clamping arithmetic on the
// uint16 sample domain shared by the axis core, the reference effects,
// and the CLI.
package u16math

import "math"

// SatAdd returns a + b, saturating at math.MaxUint16 instead of wrapping.
func SatAdd(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > math.MaxUint16 {
		return math.MaxUint16
	}

	return uint16(sum)
}

// SatSub returns a - b, saturating at 0 instead of wrapping.
func SatSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}

	return a - b
}

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi uint16) uint16 {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// AbsDiff returns |a - b| without wrapping.
func AbsDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}

	return b - a
}

// FloorClamp floors x and clamps the result into the uint16 domain.
// NaN maps to 0.
func FloorClamp(x float64) uint16 {
	if math.IsNaN(x) {
		return 0
	}

	f := math.Floor(x)
	if f <= 0 {
		return 0
	}

	if f >= math.MaxUint16 {
		return math.MaxUint16
	}

	return uint16(f)
}
