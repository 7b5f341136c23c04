package waveform

import "math/rand"

// waveConfig aggregates every generator knob. Passed by value.
type waveConfig struct {
	amplitude  float64
	trend      float64
	sigma      float64
	seed       int64
	duty       float64
	triangular bool
}

const (
	defaultAmplitude = 1.0
	defaultDuty      = 0.5
	defaultSeed      = int64(1)
)

// newWaveConfig applies opts over the defaults in order.
func newWaveConfig(opts ...Option) waveConfig {
	cfg := waveConfig{
		amplitude: defaultAmplitude,
		duty:      defaultDuty,
		seed:      defaultSeed,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// finish applies amplitude, trend and noise to a unit-scale shape in place.
// Noise is drawn only when sigma > 0, so noiseless output never touches
// the RNG.
func (c waveConfig) finish(out []float32) {
	var rng *rand.Rand
	if c.sigma > 0 {
		rng = rand.New(rand.NewSource(c.seed))
	}
	for i, v := range out {
		val := c.amplitude * float64(v)
		val += c.trend * float64(i)
		if rng != nil {
			val += c.sigma * rng.NormFloat64()
		}
		out[i] = float32(val)
	}
}
