package axis

import (
	"fmt"

	"github.com/cwbudde/algo-axis/internal/u16math"
)

// Axis conditions one physical input axis. It owns the working value, an
// optional built-in dead-zone stage, and the range projection; the effect
// chain itself is caller-owned and passed into each [Axis.Update] call, so
// the lifetime and composition of the chain stay decoupled from the axis.
//
// Two phases per sampling cycle: Update ingests a raw reading, Output
// projects the working value into a requested range. Output is pure and may
// be called any number of times between updates.
type Axis struct {
	// Deadzone is the hysteresis threshold applied to raw readings before
	// the effect chain. Raw changes smaller than Deadzone are suppressed;
	// zero disables the stage.
	Deadzone uint16

	min      uint16
	max      uint16
	reversed bool
	lastRaw  uint16
	value    uint16
}

// New creates an axis with the given calibrated range and orientation.
// The range must satisfy min <= max.
func New(min, max uint16, reversed bool) (*Axis, error) {
	if min > max {
		return nil, fmt.Errorf("axis range is inverted: min %d > max %d", min, max)
	}

	return &Axis{
		min:      min,
		max:      max,
		reversed: reversed,
		lastRaw:  min,
		value:    min,
	}, nil
}

// Min returns the lower bound of the calibrated range.
func (a *Axis) Min() uint16 { return a.min }

// Max returns the upper bound of the calibrated range.
func (a *Axis) Max() uint16 { return a.max }

// Reversed reports whether read-out reflects the value about the range.
func (a *Axis) Reversed() bool { return a.reversed }

// Value returns the current working value (post-chain, pre-rescale).
func (a *Axis) Value() uint16 { return a.value }

// Update ingests one raw reading: the built-in dead-zone first, then each
// handle of chain in order, each stage consuming the previous stage's
// output. The chain is borrowed for the duration of the call only; handle
// state mutates in place.
func (a *Axis) Update(raw uint16, chain []Inline) {
	v := a.deadzone(raw)
	for i := range chain {
		v = chain[i].Update(v)
	}

	a.value = v
}

// Output projects the working value into [rangeMin, rangeMax]: clamp into
// the calibrated range, reflect if the axis is reversed, then rescale
// linearly and floor. Every 16-bit input maps to a well-defined in-range
// result; a degenerate calibration (min == max) yields rangeMin.
func (a *Axis) Output(rangeMin, rangeMax uint16) uint16 {
	if a.min == a.max {
		return rangeMin
	}

	scale := (float64(rangeMax) - float64(rangeMin)) / float64(a.max-a.min)
	out := float64(rangeMin) + float64(a.ranged()-a.min)*scale

	return u16math.Clamp(u16math.FloorClamp(out), rangeMin, rangeMax)
}

// deadzone suppresses raw changes below the Deadzone threshold, tracking
// the last accepted reading. Identical in algorithm to effects.Step.
func (a *Axis) deadzone(raw uint16) uint16 {
	if a.Deadzone == 0 {
		return raw
	}

	if u16math.AbsDiff(raw, a.lastRaw) >= a.Deadzone {
		a.lastRaw = raw
		return raw
	}

	return a.lastRaw
}

// ranged clamps the working value into the calibrated range and applies the
// reversed reflection. Reflection saturates on the low side by construction.
func (a *Axis) ranged() uint16 {
	v := u16math.Clamp(a.value, a.min, a.max)
	if a.reversed {
		v = u16math.Clamp(u16math.SatSub(a.max, v-a.min), a.min, a.max)
	}

	return v
}
