// Package axis conditions raw 16-bit sensor readings (joystick, pedal,
// potentiometer axes) through an ordered chain of stateful effects and
// projects the result into an arbitrary output range.
//
// The chain mechanism is allocation-free: [Wrap] stores any concrete
// [Effect] inline in a fixed-capacity [Inline] handle, so one []Inline can
// host arbitrarily different effect types without heap allocation, runtime
// reflection, or a closed enumeration of known effect kinds. Concrete
// effects must fit [MaxEffectSize] bytes; violating that is a programming
// error and panics at wrap time, never per call.
//
// An [Axis] owns the per-cycle state machine: ingest a raw reading (through
// an optional built-in dead-zone and the caller-supplied chain), then read
// out the working value rescaled into any requested range. Reference
// effects live in the effects subpackage.
//
// Neither Axis nor Inline is safe for concurrent use; each axis and its
// chain have a single logical owner.
package axis
