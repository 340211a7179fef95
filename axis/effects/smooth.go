package effects

import "github.com/cwbudde/algo-axis/internal/u16math"

// Smooth rises toward the most recent target at a fixed rate per call.
//
// Each update stores the input as the new target, advances the current
// output by speed (saturating, never wrapping), then clamps it to at most
// the target. A target reduction therefore clamps the output down in the
// same call; only the rise is rate-limited.
type Smooth struct {
	current uint16
	target  uint16
	speed   uint16
}

// NewSmooth creates a Smooth with the given per-call increment.
func NewSmooth(speed uint16) Smooth {
	return Smooth{speed: speed}
}

// Update sets the target and returns the rate-limited output.
func (s *Smooth) Update(target uint16) uint16 {
	s.target = target

	s.current = u16math.SatAdd(s.current, s.speed)
	if s.current > s.target {
		s.current = s.target
	}

	return s.current
}
