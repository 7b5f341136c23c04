package filter_test

import (
	"math"
	"testing"

	"github.com/anoesisaudio/anolib/filter"
	"github.com/anoesisaudio/anolib/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDCBlocker_ImpulseResponse pins the first samples for the default pole.
func TestDCBlocker_ImpulseResponse(t *testing.T) {
	d := filter.NewDCBlocker()
	assert.Equal(t, filter.DefaultDCPole, d.Pole())

	got := d.Process(signals.Impulse())
	want := []float64{0, 1, -0.005, -0.004975, -0.004950125}
	assert.InDeltaSlice(t, want, toF64(got[:5]), 1e-7)
}

// TestDCBlocker_RemovesDC drives a constant offset and expects decay to zero.
func TestDCBlocker_RemovesDC(t *testing.T) {
	step, err := signals.StepN(signals.DefaultLength * 10)
	require.NoError(t, err)

	out := filter.NewDCBlocker().Process(step)
	assert.InDelta(t, 0.0, float64(out[len(out)-1]), 1e-6)
}

// TestDCBlocker_StateAcrossCalls checks chunked processing and Reset.
func TestDCBlocker_StateAcrossCalls(t *testing.T) {
	in, err := signals.HalfNyquistN(40)
	require.NoError(t, err)

	whole := filter.NewDCBlocker().Process(in)

	d := filter.NewDCBlocker()
	chunked := append(d.Process(in[:13]), d.Process(in[13:])...)
	assert.Equal(t, whole, chunked)

	require.NoError(t, d.SetPole(0.9))
	d.Reset()
	assert.Equal(t, filter.DefaultDCPole, d.Pole(), "Reset restores the default pole")
	assert.Equal(t, whole, d.Process(in))
}

// TestDCBlocker_SetPole rejects unstable poles and keeps the old one.
func TestDCBlocker_SetPole(t *testing.T) {
	d := filter.NewDCBlocker()
	require.NoError(t, d.SetPole(0.9))
	assert.Equal(t, 0.9, d.Pole())

	for _, bad := range []float64{1, -1, 1.5, math.NaN()} {
		assert.ErrorIs(t, d.SetPole(bad), filter.ErrBadPole)
	}
	assert.Equal(t, 0.9, d.Pole())
}
