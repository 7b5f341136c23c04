package signals

import "fmt"

// DefaultLength is the sample count of the long-form test signals.
const DefaultLength = 500

// quarterLevel approximates sin(π/4), as tabulated in the reference inputs.
const quarterLevel = 0.707

var (
	dcFixture             = [8]float32{0, 1, 1, 1, 1, 1, 1, 1}
	nyquistFixture        = [8]float32{-1, 1, -1, 1, -1, 1, -1, 1}
	halfNyquistFixture    = [8]float32{0, 1, 0, -1, 0, 1, 0, -1}
	quarterNyquistFixture = [8]float32{0, quarterLevel, 1, quarterLevel, 0, -quarterLevel, -1, -quarterLevel}
	impulseFixture        = [8]float32{0, 1, 0, 0, 0, 0, 0, 0}
)

// DC returns the eight-sample DC step (0 followed by seven ones).
func DC() []float32 { return clone(dcFixture) }

// Nyquist returns eight samples alternating -1, +1 (frequency fs/2).
func Nyquist() []float32 { return clone(nyquistFixture) }

// HalfNyquist returns eight samples of a sinusoid at fs/4.
func HalfNyquist() []float32 { return clone(halfNyquistFixture) }

// QuarterNyquist returns eight samples of a sinusoid at fs/8.
func QuarterNyquist() []float32 { return clone(quarterNyquistFixture) }

// Impulse returns eight samples with a single unit sample at index 1.
func Impulse() []float32 { return clone(impulseFixture) }

func clone(src [8]float32) []float32 {
	out := make([]float32, len(src))
	copy(out, src[:])
	return out
}

// NyquistN returns n samples alternating +1 (even index) and -1 (odd index).
func NyquistN(n int) ([]float32, error) {
	if n < 1 {
		return nil, lengthError("NyquistN", n)
	}
	out := make([]float32, n)
	for i := range out {
		if i%2 == 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out, nil
}

// HalfNyquistN returns n samples repeating the 0, 1, 0, -1 cycle.
func HalfNyquistN(n int) ([]float32, error) {
	if n < 1 {
		return nil, lengthError("HalfNyquistN", n)
	}
	return cycle(halfNyquistFixture[:4], n), nil
}

// QuarterNyquistN returns n samples repeating the eight-sample fs/8 cycle;
// the final cycle is truncated when n is not a multiple of eight.
func QuarterNyquistN(n int) ([]float32, error) {
	if n < 1 {
		return nil, lengthError("QuarterNyquistN", n)
	}
	return cycle(quarterNyquistFixture[:], n), nil
}

// ImpulseN returns n zeros with a unit sample at index 1.
func ImpulseN(n int) ([]float32, error) {
	if n < 2 {
		return nil, lengthError("ImpulseN", n)
	}
	out := make([]float32, n)
	out[1] = 1
	return out, nil
}

// StepN returns a unit step: 0 at index 0, 1 everywhere after.
func StepN(n int) ([]float32, error) {
	if n < 1 {
		return nil, lengthError("StepN", n)
	}
	out := make([]float32, n)
	for i := 1; i < n; i++ {
		out[i] = 1
	}
	return out, nil
}

func cycle(period []float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = period[i%len(period)]
	}
	return out
}

// ByName resolves a signal by its CLI name. Eight-sample fixtures are
// returned for n <= 0; otherwise the length-n generator is used.
// Known names: dc, step, nyquist, half-nyquist, quarter-nyquist, impulse.
func ByName(name string, n int) ([]float32, error) {
	if n <= 0 {
		switch name {
		case "dc", "step":
			return DC(), nil
		case "nyquist":
			return Nyquist(), nil
		case "half-nyquist":
			return HalfNyquist(), nil
		case "quarter-nyquist":
			return QuarterNyquist(), nil
		case "impulse":
			return Impulse(), nil
		}
		return nil, fmt.Errorf("ByName: %q: %w", name, ErrUnknownSignal)
	}
	switch name {
	case "dc", "step":
		return StepN(n)
	case "nyquist":
		return NyquistN(n)
	case "half-nyquist":
		return HalfNyquistN(n)
	case "quarter-nyquist":
		return QuarterNyquistN(n)
	case "impulse":
		return ImpulseN(n)
	}
	return nil, fmt.Errorf("ByName: %q: %w", name, ErrUnknownSignal)
}
