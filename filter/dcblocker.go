package filter

import "math"

// DefaultDCPole is the DC blocker's default pole radius. At 44.1 kHz it puts
// the -3 dB point near 35 Hz, well below the audible band of interest.
const DefaultDCPole = 0.995

// DCBlocker removes the DC component of a stream with the one-zero,
// one-pole high-pass y[n] = x[n] − x[n-1] + R·y[n-1].
//
// The zero value is not ready for use; call NewDCBlocker.
type DCBlocker struct {
	pole   float64
	x1, y1 float64
}

// NewDCBlocker returns a blocker with pole DefaultDCPole and cleared state.
func NewDCBlocker() *DCBlocker {
	return &DCBlocker{pole: DefaultDCPole}
}

// Pole returns the current pole radius R.
func (d *DCBlocker) Pole() float64 { return d.pole }

// SetPole sets R. Values with |R| >= 1 (or NaN) would make the recursion
// unstable and are rejected with ErrBadPole; state is left untouched.
func (d *DCBlocker) SetPole(r float64) error {
	if math.IsNaN(r) || math.Abs(r) >= 1 {
		return filterErrorf("SetPole", ErrBadPole, "pole=%g", r)
	}
	d.pole = r
	return nil
}

// Reset clears the filter state and restores the default pole.
func (d *DCBlocker) Reset() {
	d.pole = DefaultDCPole
	d.x1, d.y1 = 0, 0
}

// ProcessSample filters one sample.
func (d *DCBlocker) ProcessSample(x float32) float32 {
	xn := float64(x)
	y := xn - d.x1 + d.pole*d.y1
	d.x1, d.y1 = xn, y
	return float32(y)
}

// Process filters x into a new slice. State carries over between calls,
// so feeding a stream in chunks gives the same result as one long call.
func (d *DCBlocker) Process(x []float32) []float32 {
	out := make([]float32, len(x))
	for i, xn := range x {
		out[i] = d.ProcessSample(xn)
	}
	return out
}
