package effects

// Median3 returns the median of the last three samples, suppressing
// single-sample spikes without the lag of an averaging filter. The first
// sample fills the whole window so startup is transparent.
type Median3 struct {
	window [3]uint16
	seeded bool
}

// NewMedian3 creates an empty three-sample median filter.
func NewMedian3() Median3 {
	return Median3{}
}

// Update shifts input into the window and returns the window median.
func (m *Median3) Update(input uint16) uint16 {
	if !m.seeded {
		m.window = [3]uint16{input, input, input}
		m.seeded = true

		return input
	}

	m.window[0] = m.window[1]
	m.window[1] = m.window[2]
	m.window[2] = input

	return median3(m.window[0], m.window[1], m.window[2])
}

func median3(a, b, c uint16) uint16 {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}

	switch {
	case c < lo:
		return lo
	case c > hi:
		return hi
	default:
		return c
	}
}
