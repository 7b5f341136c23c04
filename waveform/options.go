// SPDX-License-Identifier: MIT
// Package: anolib/waveform
//
// options.go — functional options shared by every generator.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Generators themselves never panic.
//   • Noise is deterministic: the source is always seeded.

package waveform

// Option customizes a generator by mutating its waveConfig.
type Option func(*waveConfig)

// WithAmplitude scales the waveform by A (> 0). Panics if A <= 0.
func WithAmplitude(A float64) Option {
	if !(A > 0) {
		panic("waveform: WithAmplitude(A<=0)")
	}
	return func(c *waveConfig) {
		c.amplitude = A
	}
}

// WithTrend adds k·i to sample i. Any real k is accepted.
func WithTrend(k float64) Option {
	return func(c *waveConfig) {
		c.trend = k
	}
}

// WithNoise adds Gaussian noise with standard deviation sigma (>= 0).
// Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) {
		panic("waveform: WithNoise(sigma<0)")
	}
	return func(c *waveConfig) {
		c.sigma = sigma
	}
}

// WithSeed seeds the noise source. The same seed reproduces the same noise.
func WithSeed(seed int64) Option {
	return func(c *waveConfig) {
		c.seed = seed
	}
}

// WithDuty sets the high fraction of each period for Square and Pulse.
// Panics unless 0 <= d <= 1.
func WithDuty(d float64) Option {
	if !(d >= 0 && d <= 1) {
		panic("waveform: WithDuty(d outside [0,1])")
	}
	return func(c *waveConfig) {
		c.duty = d
	}
}

// WithTriangular switches Pulse to a triangular 0..A envelope.
func WithTriangular() Option {
	return func(c *waveConfig) {
		c.triangular = true
	}
}
