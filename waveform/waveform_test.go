package waveform_test

import (
	"math"
	"testing"

	"github.com/anoesisaudio/anolib/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(x []float32) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}

// TestPeriodic_Shapes checks one period of each timed generator.
func TestPeriodic_Shapes(t *testing.T) {
	r := math.Sqrt2 / 2

	sine, err := waveform.Sine(8, 1, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, r, 1, r, 0, -r, -1, -r}, f64(sine), 1e-6)

	cosine, err := waveform.Cosine(8, 1, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, r, 0, -r, -1, -r, 0, r}, f64(cosine), 1e-6)

	saw, err := waveform.Sawtooth(4, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{-1, -0.5, 0, 0.5}, saw)

	sq, err := waveform.Square(4, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, -1, -1}, sq)

	narrow, err := waveform.Square(4, 1, 1, waveform.WithDuty(0.25))
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -1, -1, -1}, narrow)
}

// TestPeriodic_Length follows ceil(fs·seconds).
func TestPeriodic_Length(t *testing.T) {
	out, err := waveform.Sine(48000, 1, 220)
	require.NoError(t, err)
	assert.Len(t, out, 48000)

	out, err = waveform.Sine(10, 0.25, 1)
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, 3, waveform.Samples(10, 0.25))
}

// TestPeriodic_NoDrift verifies phase stays accurate deep into a long render.
func TestPeriodic_NoDrift(t *testing.T) {
	out, err := waveform.Sine(48000, 10, 1000)
	require.NoError(t, err)
	// 1000 Hz at 48 kHz: every 48th sample sits on a zero crossing.
	for _, i := range []int{0, 48, 240000, 479952} {
		assert.InDelta(t, 0.0, float64(out[i]), 1e-6, "sample %d", i)
	}
}

// TestOptions_AmplitudeTrendNoise covers post-processing and determinism.
func TestOptions_AmplitudeTrendNoise(t *testing.T) {
	sq, err := waveform.Square(4, 1, 1, waveform.WithAmplitude(0.5), waveform.WithTrend(1))
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1.5, 1.5, 2.5}, sq)

	a, err := waveform.Sine(100, 1, 5, waveform.WithNoise(0.1), waveform.WithSeed(7))
	require.NoError(t, err)
	b, err := waveform.Sine(100, 1, 5, waveform.WithNoise(0.1), waveform.WithSeed(7))
	require.NoError(t, err)
	c, err := waveform.Sine(100, 1, 5, waveform.WithNoise(0.1), waveform.WithSeed(8))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce")
	assert.NotEqual(t, a, c, "different seeds should differ")
}

// TestOptions_Panics checks option constructors reject nonsense early.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { waveform.WithAmplitude(0) })
	assert.Panics(t, func() { waveform.WithNoise(-1) })
	assert.Panics(t, func() { waveform.WithDuty(1.5) })
	assert.NotPanics(t, func() { waveform.WithDuty(0) })
}

// TestTwoSines reduces to Sine when the second magnitude is zero.
func TestTwoSines(t *testing.T) {
	want, err := waveform.Sine(1000, 0.1, 50)
	require.NoError(t, err)
	got, err := waveform.TwoSines(1000, 50, 120, 1, 0, 0.1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, f64(want), f64(got), 1e-7)

	_, err = waveform.TwoSines(1000, 50, 900, 1, 1, 0.1)
	assert.ErrorIs(t, err, waveform.ErrBadFrequency, "f2 above Nyquist")
}

// TestPulse_Shapes covers rectangular and triangular envelopes.
func TestPulse_Shapes(t *testing.T) {
	rect, err := waveform.Pulse(8, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 0, 0, 1, 1, 0, 0}, rect)

	tri, err := waveform.Pulse(4, 0.25, waveform.WithTriangular(), waveform.WithAmplitude(2))
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 2, 1}, tri)
}

// TestChirp_Bounds checks length, first sample and amplitude envelope.
func TestChirp_Bounds(t *testing.T) {
	out, err := waveform.Chirp(256, 0.02, 0.25)
	require.NoError(t, err)
	require.Len(t, out, 256)
	assert.InDelta(t, math.Sin(2*math.Pi*0.02), float64(out[0]), 1e-6)
	for i, v := range out {
		require.LessOrEqual(t, math.Abs(float64(v)), 1.0+1e-6, "sample %d", i)
	}

	single, err := waveform.Chirp(1, 0.1, 0.2)
	require.NoError(t, err)
	assert.Len(t, single, 1)
}

// TestErrors covers validation priority and sentinels.
func TestErrors(t *testing.T) {
	_, err := waveform.Sine(0, 0, 0)
	assert.ErrorIs(t, err, waveform.ErrBadSampleRate)
	_, err = waveform.Sine(100, 0, 0)
	assert.ErrorIs(t, err, waveform.ErrBadDuration)
	_, err = waveform.Sine(48000, 1e12, 440)
	assert.ErrorIs(t, err, waveform.ErrBadDuration, "too many samples")
	_, err = waveform.TwoSines(1e300, 50, 120, 1, 1, 1e300)
	assert.ErrorIs(t, err, waveform.ErrBadDuration, "fs·seconds overflows int")
	_, err = waveform.Sawtooth(100, 1, 0)
	assert.ErrorIs(t, err, waveform.ErrBadFrequency)
	_, err = waveform.Square(100, 1, 51)
	assert.ErrorIs(t, err, waveform.ErrBadFrequency)
	_, err = waveform.Chirp(0, 0.1, 0.2)
	assert.ErrorIs(t, err, waveform.ErrBadSize)
	_, err = waveform.Chirp(math.MaxInt, 0.1, 0.2)
	assert.ErrorIs(t, err, waveform.ErrBadSize)
	_, err = waveform.Chirp(10, 0.1, 0.6)
	assert.ErrorIs(t, err, waveform.ErrBadFrequency)
	_, err = waveform.Pulse(-3, 0.1)
	assert.ErrorIs(t, err, waveform.ErrBadSize)
	_, err = waveform.Pulse(math.MaxInt, 0.1)
	assert.ErrorIs(t, err, waveform.ErrBadSize)
	_, err = waveform.Pulse(3, 0)
	assert.ErrorIs(t, err, waveform.ErrBadFrequency)
}
