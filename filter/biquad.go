package filter

import (
	"math"
	"math/cmplx"
)

// Coefficients holds a normalized second-order section. First-order and
// one-pole designs leave the unused terms at zero.
//
//	H(z) = (A0 + A1·z⁻¹ + A2·z⁻²) / (1 + B1·z⁻¹ + B2·z⁻²)
type Coefficients struct {
	A0, A1, A2 float64
	B1, B2     float64
}

// Response evaluates H(e^{jω}) at frequency f (Hz) for sample rate fs.
func (c Coefficients) Response(f, fs float64) complex128 {
	w := 2 * math.Pi * f / fs
	z1 := cmplx.Exp(complex(0, -w)) // z⁻¹
	z2 := z1 * z1
	num := complex(c.A0, 0) + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	den := 1 + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	return num / den
}

// Magnitude returns |H| at frequency f (Hz) for sample rate fs.
func (c Coefficients) Magnitude(f, fs float64) float64 {
	return cmplx.Abs(c.Response(f, fs))
}

// Biquad is a direct-form-I second-order section with persistent state.
// The zero value is a silent filter (all coefficients zero); use NewBiquad.
type Biquad struct {
	c              Coefficients
	x1, x2, y1, y2 float64
}

// NewBiquad returns a Biquad with the given coefficients and cleared state.
func NewBiquad(c Coefficients) *Biquad {
	return &Biquad{c: c}
}

// Coefficients returns the section's current coefficients.
func (b *Biquad) Coefficients() Coefficients { return b.c }

// SetCoefficients swaps coefficients without clearing state, so a filter
// can be retuned mid-stream.
func (b *Biquad) SetCoefficients(c Coefficients) { b.c = c }

// Reset clears the delay line.
func (b *Biquad) Reset() {
	b.x1, b.x2, b.y1, b.y2 = 0, 0, 0, 0
}

// ProcessSample filters one sample and advances the delay line.
func (b *Biquad) ProcessSample(x float32) float32 {
	xn := float64(x)
	yn := b.c.A0*xn + b.c.A1*b.x1 + b.c.A2*b.x2 - b.c.B1*b.y1 - b.c.B2*b.y2
	b.x2, b.x1 = b.x1, xn
	b.y2, b.y1 = b.y1, yn
	return float32(yn)
}

// Process filters x into a new slice, continuing from the current state.
func (b *Biquad) Process(x []float32) []float32 {
	out := make([]float32, len(x))
	for i, xn := range x {
		out[i] = b.ProcessSample(xn)
	}
	return out
}
