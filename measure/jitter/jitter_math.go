//go:build !fastmath

package jitter

import "math"

// mathSqrt computes sqrt(x) using standard library math.
func mathSqrt(x float64) float64 {
	return math.Sqrt(x)
}

// mathLog10 computes log10(x) using standard library math.
func mathLog10(x float64) float64 {
	return math.Log10(x)
}
