package effects

import (
	"fmt"
	"math"
)

// Lerp smooths samples by linear interpolation toward each new input:
// an exponential (one-pole) low-pass with blend factor in [0, 1].
//
// The first sample seeds the state unsmoothed; each further sample moves the
// smoothed value by factor times the remaining distance, so the error toward
// a constant target decays geometrically by (1-factor) per call.
type Lerp struct {
	smoothed float32
	factor   float32
	seeded   bool
}

// NewLerp creates a Lerp with the given blend factor in [0, 1].
// Factor 0 freezes on the first sample; factor 1 passes input through.
func NewLerp(factor float32) (Lerp, error) {
	f := float64(factor)
	if f < 0 || f > 1 || math.IsNaN(f) {
		return Lerp{}, fmt.Errorf("lerp factor must be in [0, 1]: %f", factor)
	}

	return Lerp{factor: factor}, nil
}

// Update advances the smoothed value toward input and returns its floor.
func (l *Lerp) Update(input uint16) uint16 {
	x := float32(input)
	if !l.seeded {
		l.smoothed = x
		l.seeded = true

		return input
	}

	l.smoothed += (x - l.smoothed) * l.factor

	// Conversion truncates toward zero, which is floor on this
	// non-negative domain.
	return uint16(l.smoothed)
}
