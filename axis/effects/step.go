package effects

import "github.com/cwbudde/algo-axis/internal/u16math"

// Step suppresses fluctuations smaller than a fixed sensitivity threshold:
// a dead-zone/noise-gate on the sample stream.
//
// An input is accepted, and becomes the new baseline, when its absolute
// distance from the last accepted value reaches the sensitivity; anything
// closer returns the baseline unchanged. Sensitivity 0 accepts everything.
type Step struct {
	last        uint16
	sensitivity uint16
}

// NewStep creates a Step with the given sensitivity threshold.
func NewStep(sensitivity uint16) Step {
	return Step{sensitivity: sensitivity}
}

// Update returns input if it differs from the last accepted value by at
// least the sensitivity, otherwise the last accepted value.
func (s *Step) Update(input uint16) uint16 {
	if u16math.AbsDiff(input, s.last) >= s.sensitivity {
		s.last = input
	}

	return s.last
}
