// SPDX-License-Identifier: MIT
// Package: anolib/waveform
//
// impl_pulse.go — deterministic rectangular/triangular pulse train.
//
// Contract:
//   • Pulse(n, f0, opts...) returns n samples in [0, A] (before trend/noise).
//   • Rectangular: A while the phase fraction < duty, 0 otherwise.
//   • Triangular:  A·(1 − |2·frac − 1|), no trig.
//   • O(n) time, O(n) memory; never panics.

package waveform

import "math"

// Triangle envelope: 1 − |2·frac − 1|.
const (
	triDouble = 2.0
	triCenter = 1.0
)

// Pulse returns a length-n pulse train at f0 cycles/sample.
func Pulse(n int, f0 float64, opts ...Option) ([]float32, error) {
	const method = "Pulse"
	if n < 1 || n > maxSamples {
		return nil, waveErrorf(method, ErrBadSize, "n=%d", n)
	}
	if !(f0 > 0) || f0 > 0.5 {
		return nil, waveErrorf(method, ErrBadFrequency, "f0=%g cycles/sample", f0)
	}

	cfg := newWaveConfig(opts...)
	out := make([]float32, n)
	for i := range out {
		frac := math.Mod(float64(i)*f0, 1)
		switch {
		case cfg.triangular:
			out[i] = float32(triCenter - math.Abs(triDouble*frac-triCenter))
		case frac < cfg.duty:
			out[i] = 1
		}
	}
	cfg.finish(out)
	return out, nil
}
