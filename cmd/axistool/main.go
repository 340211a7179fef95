// Command axistool runs raw axis samples through a configurable effect
// chain and prints the staged outputs, or characterizes idle noise.
//
// Usage:
//
//	axistool [flags] [sample ...]
//
// Samples are raw 16-bit readings given as arguments; with -gen N a
// synthetic noisy ramp is generated instead.
//
// Examples:
//
//	axistool -lerp 0.5 0 100 100 100 100
//	axistool -min 0 -max 1023 -deadzone 4 -smooth 8 -out-max 255 -gen 64
//	axistool -analyze -rate 1000 -gen 256
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-axis/axis"
	"github.com/cwbudde/algo-axis/axis/effects"
	"github.com/cwbudde/algo-axis/measure/jitter"
)

func main() {
	var (
		axisMin  = flag.Uint("min", 0, "calibrated axis minimum")
		axisMax  = flag.Uint("max", math.MaxUint16, "calibrated axis maximum")
		reversed = flag.Bool("reversed", false, "reflect output about the axis range")
		deadzone = flag.Uint("deadzone", 0, "built-in dead-zone threshold (0 disables)")

		lerp   = flag.Float64("lerp", 0, "lerp blend factor in [0, 1], 0 disables the stage")
		smooth = flag.Uint("smooth", 0, "ramp speed per sample (0 disables)")
		step   = flag.Uint("step", 0, "step-filter sensitivity (0 disables)")
		median = flag.Bool("median", false, "enable 3-sample median despike")
		kalman = flag.Bool("kalman", false, "enable scalar kalman smoother")
		kq     = flag.Float64("kalman-q", 0.05, "kalman process noise covariance")
		kr     = flag.Float64("kalman-r", 20, "kalman measurement noise covariance")

		outMin = flag.Uint("out-min", 0, "output range minimum")
		outMax = flag.Uint("out-max", math.MaxUint16, "output range maximum")

		gen   = flag.Int("gen", 0, "generate N synthetic samples instead of reading arguments")
		noise = flag.Uint("noise", 6, "synthetic noise amplitude in counts")
		seed  = flag.Int64("seed", 1, "synthetic noise seed")

		analyze = flag.Bool("analyze", false, "run idle-noise analysis instead of the chain")
		rate    = flag.Float64("rate", 0, "sample rate in Hz for spectral analysis")
	)

	flag.Parse()

	if *axisMin > math.MaxUint16 || *axisMax > math.MaxUint16 ||
		*deadzone > math.MaxUint16 || *smooth > math.MaxUint16 ||
		*step > math.MaxUint16 || *noise > math.MaxUint16 ||
		*outMin > math.MaxUint16 || *outMax > math.MaxUint16 {
		fatalf("flag values must fit the 16-bit sample domain")
	}

	samples, err := readSamples(flag.Args(), *gen, uint16(*axisMin), uint16(*axisMax), uint16(*noise), *seed)
	if err != nil {
		fatalf("%v", err)
	}

	if *analyze {
		runAnalysis(samples, *rate)

		return
	}

	a, err := axis.New(uint16(*axisMin), uint16(*axisMax), *reversed)
	if err != nil {
		fatalf("%v", err)
	}

	a.Deadzone = uint16(*deadzone)

	chain, err := buildChain(*lerp, uint16(*smooth), uint16(*step), *median, *kalman, *kq, *kr)
	if err != nil {
		fatalf("%v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\traw\tvalue\toutput")

	for i, raw := range samples {
		a.Update(raw, chain)
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", i, raw, a.Value(), a.Output(uint16(*outMin), uint16(*outMax)))
	}

	w.Flush()
}

// buildChain assembles the effect chain in fixed stage order: despike,
// hysteresis, exponential smoothing, kalman, ramp limit.
func buildChain(lerpFactor float64, smoothSpeed, stepSens uint16, median, kalman bool, kq, kr float64) ([]axis.Inline, error) {
	var chain []axis.Inline

	if median {
		chain = append(chain, axis.Wrap(effects.NewMedian3()))
	}

	if stepSens > 0 {
		chain = append(chain, axis.Wrap(effects.NewStep(stepSens)))
	}

	if lerpFactor > 0 {
		l, err := effects.NewLerp(float32(lerpFactor))
		if err != nil {
			return nil, err
		}

		chain = append(chain, axis.Wrap(l))
	}

	if kalman {
		k, err := effects.NewKalman(float32(kq), float32(kr))
		if err != nil {
			return nil, err
		}

		chain = append(chain, axis.Wrap(k))
	}

	if smoothSpeed > 0 {
		chain = append(chain, axis.Wrap(effects.NewSmooth(smoothSpeed)))
	}

	return chain, nil
}

// readSamples parses positional arguments, or generates a noisy ramp across
// the axis range when gen is positive.
func readSamples(args []string, gen int, min, max, noise uint16, seed int64) ([]uint16, error) {
	if gen > 0 {
		return generate(gen, min, max, noise, seed), nil
	}

	if len(args) == 0 {
		return nil, fmt.Errorf("no samples given (pass readings as arguments or use -gen)")
	}

	samples := make([]uint16, 0, len(args))

	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid sample %q: %w", arg, err)
		}

		samples = append(samples, uint16(v))
	}

	return samples, nil
}

func generate(n int, min, max, noise uint16, seed int64) []uint16 {
	rng := rand.New(rand.NewSource(seed))
	samples := make([]uint16, n)
	span := float64(max) - float64(min)

	for i := range samples {
		ramp := float64(min)
		if n > 1 {
			ramp += span * float64(i) / float64(n-1)
		}

		offset := 0.0
		if noise > 0 {
			offset = (rng.Float64()*2 - 1) * float64(noise)
		}

		v := ramp + offset
		if v < 0 {
			v = 0
		}

		if v > math.MaxUint16 {
			v = math.MaxUint16
		}

		samples[i] = uint16(v)
	}

	return samples
}

func runAnalysis(samples []uint16, rate float64) {
	var opts []jitter.Option
	if rate > 0 {
		opts = append(opts, jitter.WithSampleRate(rate))
	}

	res, err := jitter.Analyze(samples, opts...)
	if err != nil {
		fatalf("%v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", res.Samples)
	fmt.Fprintf(w, "mean\t%.2f\n", res.Mean)
	fmt.Fprintf(w, "std dev\t%.2f\n", res.StdDev)
	fmt.Fprintf(w, "min\t%d\n", res.Min)
	fmt.Fprintf(w, "max\t%d\n", res.Max)
	fmt.Fprintf(w, "peak-to-peak\t%d\n", res.PeakToPeak)

	if rate > 0 {
		fmt.Fprintf(w, "dominant\t%.1f Hz\n", res.DominantHz)
		fmt.Fprintf(w, "level\t%.1f dBFS\n", res.DominantLevelDB)
	}

	fmt.Fprintf(w, "recommended deadzone\t%d\n", res.RecommendDeadzone())
	fmt.Fprintf(w, "recommended step sensitivity\t%d\n", res.RecommendStepSensitivity())
	w.Flush()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "axistool: "+format+"\n", args...)
	os.Exit(1)
}
