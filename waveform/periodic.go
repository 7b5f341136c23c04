package waveform

import (
	"math"

	"github.com/anoesisaudio/anolib/constants"
)

// tau is one full turn in radians, in single precision.
var tau = 2 * constants.Pi()

// maxSamples caps every generator's output length.
const maxSamples = math.MaxInt32

// shapeFn maps a phase fraction in [0,1) to a unit-scale sample.
type shapeFn func(frac float64, cfg waveConfig) float64

func sineShape(frac float64, _ waveConfig) float64 {
	return math.Sin(float64(tau * float32(frac)))
}

func cosineShape(frac float64, _ waveConfig) float64 {
	return math.Cos(float64(tau * float32(frac)))
}

func sawtoothShape(frac float64, _ waveConfig) float64 {
	return 2*frac - 1
}

func squareShape(frac float64, cfg waveConfig) float64 {
	if frac < cfg.duty {
		return 1
	}
	return -1
}

// Sine renders a sine at freq Hz for the given duration.
func Sine(fs, seconds, freq float64, opts ...Option) ([]float32, error) {
	return render("Sine", fs, seconds, freq, sineShape, opts)
}

// Cosine renders a cosine at freq Hz for the given duration.
func Cosine(fs, seconds, freq float64, opts ...Option) ([]float32, error) {
	return render("Cosine", fs, seconds, freq, cosineShape, opts)
}

// Sawtooth renders a rising sawtooth (−1 → +1 per period).
func Sawtooth(fs, seconds, freq float64, opts ...Option) ([]float32, error) {
	return render("Sawtooth", fs, seconds, freq, sawtoothShape, opts)
}

// Square renders a ±1 square wave; WithDuty changes the high fraction.
func Square(fs, seconds, freq float64, opts ...Option) ([]float32, error) {
	return render("Square", fs, seconds, freq, squareShape, opts)
}

// TwoSines renders mag1·sin(2π·f1·t) + mag2·sin(2π·f2·t). Options apply to
// the sum, so WithAmplitude scales both components.
func TwoSines(fs, f1, f2, mag1, mag2, seconds float64, opts ...Option) ([]float32, error) {
	const method = "TwoSines"
	n, err := validateTimed(method, fs, seconds, f1)
	if err != nil {
		return nil, err
	}
	if err := validateFreq(method, fs, f2); err != nil {
		return nil, err
	}

	cfg := newWaveConfig(opts...)
	out := make([]float32, n)
	for i := range out {
		a := sineShape(cycleFrac(f1, fs, i), cfg)
		b := sineShape(cycleFrac(f2, fs, i), cfg)
		out[i] = float32(mag1*a + mag2*b)
	}
	cfg.finish(out)
	return out, nil
}

// Samples returns the number of samples a timed generator renders. The
// result is only meaningful while fs·seconds stays within the generator cap.
func Samples(fs, seconds float64) int {
	return int(math.Ceil(fs*seconds - 1e-9))
}

func render(method string, fs, seconds, freq float64, shape shapeFn, opts []Option) ([]float32, error) {
	n, err := validateTimed(method, fs, seconds, freq)
	if err != nil {
		return nil, err
	}

	cfg := newWaveConfig(opts...)
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(shape(cycleFrac(freq, fs, i), cfg))
	}
	cfg.finish(out)
	return out, nil
}

// cycleFrac returns the fractional cycle count freq·i/fs in [0,1).
func cycleFrac(freq, fs float64, i int) float64 {
	_, frac := math.Modf(freq * float64(i) / fs)
	return frac
}

func validateTimed(method string, fs, seconds, freq float64) (int, error) {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return 0, waveErrorf(method, ErrBadSampleRate, "fs=%g", fs)
	}
	if !(seconds > 0) || math.IsInf(seconds, 0) {
		return 0, waveErrorf(method, ErrBadDuration, "seconds=%g", seconds)
	}
	if fs*seconds > maxSamples {
		return 0, waveErrorf(method, ErrBadDuration, "seconds=%g at fs=%g exceeds %d samples", seconds, fs, maxSamples)
	}
	n := Samples(fs, seconds)
	if n < 1 {
		return 0, waveErrorf(method, ErrBadDuration, "seconds=%g renders no samples at fs=%g", seconds, fs)
	}
	if err := validateFreq(method, fs, freq); err != nil {
		return 0, err
	}
	return n, nil
}

func validateFreq(method string, fs, freq float64) error {
	if !(freq > 0) || freq > fs/2 {
		return waveErrorf(method, ErrBadFrequency, "freq=%g fs=%g", freq, fs)
	}
	return nil
}
