package jitter

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-axis/internal/u16math"
)

const (
	minFFTSize = 16
	maxFFTSize = 1 << 16

	fullScale = float64(math.MaxUint16)
)

// ErrNoSamples is returned when the capture window is empty.
var ErrNoSamples = errors.New("no samples to analyze")

// Option mutates analysis parameters.
type Option func(*config) error

type config struct {
	sampleRate float64
	fftSize    int
}

// WithSampleRate sets the capture rate in Hz and enables the spectral pass.
func WithSampleRate(hz float64) Option {
	return func(cfg *config) error {
		if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("sample rate must be > 0 and finite: %f", hz)
		}

		cfg.sampleRate = hz

		return nil
	}
}

// WithFFTSize overrides the FFT size for the spectral pass. The size must be
// a power of two in [16, 65536]; by default the smallest power of two that
// covers the capture window is used. A size smaller than the window
// truncates the spectral pass to the first n samples; the time-domain
// statistics always cover the whole window.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < minFFTSize || n > maxFFTSize || n&(n-1) != 0 {
			return fmt.Errorf("fft size must be a power of two in [%d, %d]: %d", minFFTSize, maxFFTSize, n)
		}

		cfg.fftSize = n

		return nil
	}
}

// Result holds idle-noise statistics for one capture window.
type Result struct {
	Samples    int
	Mean       float64
	StdDev     float64
	Min        uint16
	Max        uint16
	PeakToPeak uint16

	// Spectral readout, populated only when a sample rate was provided.
	DominantHz      float64
	DominantLevelDB float64 // dB relative to full scale, -Inf without a spectrum
}

// Analyze computes idle-noise statistics over a capture window of raw
// readings. The window should be recorded while the axis is physically at
// rest, so that all variation is sensor noise.
func Analyze(samples []uint16, opts ...Option) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrNoSamples
	}

	var cfg config

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return Result{}, err
		}
	}

	res := timeStats(samples)

	if cfg.sampleRate > 0 {
		if err := spectralStats(&res, samples, cfg); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

// RecommendDeadzone suggests a built-in dead-zone threshold: three standard
// deviations of the measured noise, at least 1 whenever any noise was seen.
func (r Result) RecommendDeadzone() uint16 {
	if r.PeakToPeak == 0 {
		return 0
	}

	s := math.Ceil(3 * r.StdDev)
	if s < 1 {
		s = 1
	}

	return u16math.FloorClamp(s)
}

// RecommendStepSensitivity suggests a step-filter sensitivity: one count
// above half the observed peak-to-peak excursion, never below the dead-zone
// recommendation.
func (r Result) RecommendStepSensitivity() uint16 {
	if r.PeakToPeak == 0 {
		return 0
	}

	s := u16math.SatAdd(r.PeakToPeak/2, 1)
	if dz := r.RecommendDeadzone(); s < dz {
		s = dz
	}

	return s
}

// timeStats runs the single-pass Welford recurrence for mean and variance
// alongside the min/max scan.
func timeStats(samples []uint16) Result {
	res := Result{
		Samples:         len(samples),
		Min:             samples[0],
		Max:             samples[0],
		DominantLevelDB: math.Inf(-1),
	}

	var mean, m2 float64

	for i, s := range samples {
		x := float64(s)

		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		if s < res.Min {
			res.Min = s
		}

		if s > res.Max {
			res.Max = s
		}
	}

	res.Mean = mean
	res.StdDev = mathSqrt(m2 / float64(len(samples)))
	res.PeakToPeak = res.Max - res.Min

	return res
}

// spectralStats fills the dominant-frequency readout: mean removal, Hann
// window, zero-padded FFT, peak bin search over the positive frequencies.
func spectralStats(res *Result, samples []uint16, cfg config) error {
	fftSize := cfg.fftSize
	if fftSize == 0 {
		fftSize = fitFFTSize(len(samples))
	}

	n := len(samples)
	if n > fftSize {
		n = fftSize
	}

	centered := make([]float64, n)
	for i := 0; i < n; i++ {
		centered[i] = float64(samples[i]) - res.Mean
	}

	win := hann(n)
	vecmath.MulBlockInPlace(centered, win)

	var winSum float64
	for _, w := range win {
		winSum += w
	}

	in := make([]complex128, fftSize)
	for i, x := range centered {
		in[i] = complex(x, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return fmt.Errorf("jitter: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return fmt.Errorf("jitter: fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	peakBin := 1
	for i := 2; i < bins; i++ {
		if mag[i] > mag[peakBin] {
			peakBin = i
		}
	}

	res.DominantHz = float64(peakBin) * cfg.sampleRate / float64(fftSize)

	if winSum > 0 && mag[peakBin] > 0 {
		amplitude := 2 * mag[peakBin] / winSum
		res.DominantLevelDB = 20 * mathLog10(amplitude/fullScale)
	}

	return nil
}

// fitFFTSize returns the smallest valid FFT size covering n samples.
func fitFFTSize(n int) int {
	size := minFFTSize
	for size < n && size < maxFFTSize {
		size <<= 1
	}

	return size
}

// hann generates a symmetric Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1

		return w
	}

	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}

	return w
}
