// Package effects provides reference effects for axis chains.
//
//   - Lerp: exponential smoothing (one-pole low-pass on samples).
//   - Smooth: ramp-limited rise toward the most recent target.
//   - Step: threshold/hysteresis filtering of small fluctuations.
//   - Median3: three-sample sliding median for single-sample despiking.
//   - Kalman: scalar predict/correct smoother.
//
// Every effect is a plain pointer-free value that fits the axis package's
// inline footprint budget, so it can be wrapped with axis.Wrap and hosted
// in a heterogeneous chain without heap allocation.
package effects
