package signals_test

import (
	"testing"

	"github.com/anoesisaudio/anolib/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixtures_Values pins every eight-sample fixture.
func TestFixtures_Values(t *testing.T) {
	cases := []struct {
		name string
		got  []float32
		want []float32
	}{
		{"dc", signals.DC(), []float32{0, 1, 1, 1, 1, 1, 1, 1}},
		{"nyquist", signals.Nyquist(), []float32{-1, 1, -1, 1, -1, 1, -1, 1}},
		{"half", signals.HalfNyquist(), []float32{0, 1, 0, -1, 0, 1, 0, -1}},
		{"quarter", signals.QuarterNyquist(), []float32{0, 0.707, 1, 0.707, 0, -0.707, -1, -0.707}},
		{"impulse", signals.Impulse(), []float32{0, 1, 0, 0, 0, 0, 0, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

// TestFixtures_AreCopies ensures mutating a returned slice does not leak.
func TestFixtures_AreCopies(t *testing.T) {
	a := signals.Impulse()
	a[1] = 42
	assert.Equal(t, float32(1), signals.Impulse()[1])
}

// TestGenerators_Lengths checks the long-form generators at the default length.
func TestGenerators_Lengths(t *testing.T) {
	gens := map[string]func(int) ([]float32, error){
		"nyquist": signals.NyquistN,
		"half":    signals.HalfNyquistN,
		"quarter": signals.QuarterNyquistN,
		"impulse": signals.ImpulseN,
		"step":    signals.StepN,
	}
	for name, gen := range gens {
		out, err := gen(signals.DefaultLength)
		require.NoError(t, err, name)
		assert.Len(t, out, signals.DefaultLength, name)
	}
}

// TestGenerators_Shapes spot-checks sample values.
func TestGenerators_Shapes(t *testing.T) {
	nyq, err := signals.NyquistN(4)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -1, 1, -1}, nyq)

	half, err := signals.HalfNyquistN(6)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 0, -1, 0, 1}, half)

	quarter, err := signals.QuarterNyquistN(signals.DefaultLength)
	require.NoError(t, err)
	// 500 = 62*8 + 4: the tail is the first half of a cycle.
	assert.Equal(t, []float32{0, 0.707, 1, 0.707}, quarter[496:])

	imp, err := signals.ImpulseN(3)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 0}, imp)

	step, err := signals.StepN(3)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 1, 1}, step)
}

// TestGenerators_BadLength verifies ErrBadLength on degenerate sizes.
func TestGenerators_BadLength(t *testing.T) {
	_, err := signals.NyquistN(0)
	assert.ErrorIs(t, err, signals.ErrBadLength)
	_, err = signals.StepN(-1)
	assert.ErrorIs(t, err, signals.ErrBadLength)
	_, err = signals.ImpulseN(1)
	assert.ErrorIs(t, err, signals.ErrBadLength, "impulse needs room for index 1")
}

// TestByName resolves fixtures and generators by name.
func TestByName(t *testing.T) {
	out, err := signals.ByName("impulse", 0)
	require.NoError(t, err)
	assert.Equal(t, signals.Impulse(), out)

	out, err = signals.ByName("step", 10)
	require.NoError(t, err)
	assert.Len(t, out, 10)

	_, err = signals.ByName("pink-noise", 0)
	assert.ErrorIs(t, err, signals.ErrUnknownSignal)
}
