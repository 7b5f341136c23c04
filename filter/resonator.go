package filter

import "math"

// ResonatorParams are the intermediate and final terms of the two-pole
// simple resonator. ThetaC is the centre frequency in radians/sample and
// BW the bandwidth in Hz (fc/q).
type ResonatorParams struct {
	ThetaC float64
	BW     float64
	A0     float64
	B1     float64
	B2     float64
}

// Coefficients maps the resonator onto a biquad section.
func (p ResonatorParams) Coefficients() Coefficients {
	return Coefficients{A0: p.A0, B1: p.B1, B2: p.B2}
}

// ResonatorCoefficients designs the simple resonator: poles at radius
// sqrt(b2) and angle ≈ θc, with a0 normalizing the peak gain to unity.
//
//	θc = 2π·fc/fs
//	b2 = e^(−2π·BW/fs)
//	b1 = (−4·b2 / (1+b2))·cos θc
//	a0 = (1 − b2)·sqrt(1 − b1²/(4·b2))
func ResonatorCoefficients(fs, fc, q float64) (ResonatorParams, error) {
	const method = "ResonatorCoefficients"
	if err := validate(method, fs, fc, q, true); err != nil {
		return ResonatorParams{}, err
	}

	theta := 2 * math.Pi * fc / fs
	bw := fc / q
	b2 := math.Exp(-2 * math.Pi * bw / fs)
	b1 := (-4 * b2 / (1 + b2)) * math.Cos(theta)
	a0 := (1 - b2) * math.Sqrt(1-(b1*b1)/(4*b2))

	return ResonatorParams{ThetaC: theta, BW: bw, A0: a0, B1: b1, B2: b2}, nil
}

// Resonate runs the simple resonator over x from zero state.
func Resonate(x []float32, fs, fc, q float64) ([]float32, error) {
	p, err := ResonatorCoefficients(fs, fc, q)
	if err != nil {
		return nil, err
	}
	return NewBiquad(p.Coefficients()).Process(x), nil
}

// LowpassCoefficients designs the second-order low-pass from the classic
// bilinear "kLPF2" recipe:
//
//	θc    = 2π·fc/fs,  d = 1/q
//	β     = ½ · (1 − (d/2)·sin θc) / (1 + (d/2)·sin θc)
//	γ     = (½ + β)·cos θc
//	α     = (½ + β − γ) / 2
//	a0 = α, a1 = 2α, a2 = α, b1 = −2γ, b2 = 2β
func LowpassCoefficients(fs, fc, q float64) (Coefficients, error) {
	const method = "LowpassCoefficients"
	if err := validate(method, fs, fc, q, true); err != nil {
		return Coefficients{}, err
	}

	theta := 2 * math.Pi * fc / fs
	d := 1 / q
	half := (d / 2) * math.Sin(theta)
	beta := 0.5 * (1 - half) / (1 + half)
	gamma := (0.5 + beta) * math.Cos(theta)
	alpha := (0.5 + beta - gamma) / 2

	return Coefficients{
		A0: alpha,
		A1: 2 * alpha,
		A2: alpha,
		B1: -2 * gamma,
		B2: 2 * beta,
	}, nil
}

// SecondOrderLowpass runs the kLPF2 low-pass over x from zero state.
func SecondOrderLowpass(x []float32, fs, fc, q float64) ([]float32, error) {
	c, err := LowpassCoefficients(fs, fc, q)
	if err != nil {
		return nil, err
	}
	return NewBiquad(c).Process(x), nil
}

// validate applies the shared parameter checks in a fixed priority:
// sample rate, then cutoff, then (optionally) q.
func validate(method string, fs, fc, q float64, needQ bool) error {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return filterErrorf(method, ErrBadSampleRate, "fs=%g", fs)
	}
	if !(fc > 0) || fc >= fs/2 {
		return filterErrorf(method, ErrBadCutoff, "fc=%g fs=%g", fc, fs)
	}
	if needQ && (!(q > 0) || math.IsInf(q, 0)) {
		return filterErrorf(method, ErrBadQ, "q=%g", q)
	}
	return nil
}
