// SPDX-License-Identifier: MIT
// Package: anolib/waveform
//
// impl_chirp.go — deterministic linear chirp.
//
// Contract:
//   • Chirp(n, f0, f1, opts...) returns n samples or an error; never panics.
//   • O(n) time, O(n) memory. No global state.
//   • Frequencies are in cycles/sample and must lie in (0, 0.5].

package waveform

// Chirp returns a length-n linear sweep from f0 to f1 (cycles/sample).
// Model:
//   - fᵢ   = f0 + (f1 − f0)·i/(n−1)
//   - θᵢ₊₁ = θᵢ + 2π·fᵢ   (phase accumulator, wrapped to one turn)
//   - yᵢ   = sin(θᵢ₊₁)    then amplitude, trend and noise
func Chirp(n int, f0, f1 float64, opts ...Option) ([]float32, error) {
	const method = "Chirp"
	if n < 1 || n > maxSamples {
		return nil, waveErrorf(method, ErrBadSize, "n=%d", n)
	}
	for _, f := range []float64{f0, f1} {
		if !(f > 0) || f > 0.5 {
			return nil, waveErrorf(method, ErrBadFrequency, "f=%g cycles/sample", f)
		}
	}

	cfg := newWaveConfig(opts...)
	out := make([]float32, n)

	// Accumulate in turns (cycles) rather than radians; wrapping at 1 keeps
	// the single-precision phase accurate.
	var turns, t float64
	for i := range out {
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		turns += f0 + (f1-f0)*t
		if turns >= 1 {
			turns -= float64(int(turns))
		}
		out[i] = float32(sineShape(turns, cfg))
	}
	cfg.finish(out)
	return out, nil
}
