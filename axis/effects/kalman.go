package effects

import (
	"fmt"
	"math"
)

// Kalman is a scalar predict/correct smoother: each update inflates the
// estimation error covariance by the process noise q, computes the gain
// against the measurement noise r, and corrects the estimate toward the
// measurement.
//
// Low q with high r smooths hard and follows slowly; high q with low r
// tracks the measurement closely. State is four float32 values, exactly at
// the inline footprint budget.
type Kalman struct {
	q float32 // process noise covariance
	r float32 // measurement noise covariance
	p float32 // estimation error covariance
	x float32 // current estimate
}

// NewKalman creates a Kalman with the given process and measurement noise
// covariances, both of which must be positive and finite.
func NewKalman(q, r float32) (Kalman, error) {
	if qf := float64(q); qf <= 0 || math.IsNaN(qf) || math.IsInf(qf, 0) {
		return Kalman{}, fmt.Errorf("kalman process noise must be > 0 and finite: %f", q)
	}

	if rf := float64(r); rf <= 0 || math.IsNaN(rf) || math.IsInf(rf, 0) {
		return Kalman{}, fmt.Errorf("kalman measurement noise must be > 0 and finite: %f", r)
	}

	return Kalman{q: q, r: r, p: 1}, nil
}

// Update runs one predict/correct cycle and returns the floored estimate.
func (k *Kalman) Update(input uint16) uint16 {
	k.p += k.q

	gain := k.p / (k.p + k.r)
	k.x += gain * (float32(input) - k.x)
	k.p *= 1 - gain

	return uint16(k.x)
}
