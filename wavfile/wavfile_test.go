package wavfile_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/anoesisaudio/anolib/waveform"
	"github.com/anoesisaudio/anolib/wavfile"
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

// TestWriteRead_StereoRoundTrip writes two cosines and reads them back
// within 16-bit quantization error.
func TestWriteRead_StereoRoundTrip(t *testing.T) {
	left, err := waveform.Cosine(48000, 0.1, 220)
	require.NoError(t, err)
	right, err := waveform.Cosine(48000, 0.1, 360)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, wavfile.Write(&buf, 48000, [][]float32{left, right}))
	assert.Equal(t, 44+len(left)*4, buf.Len())

	audio, err := wavfile.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 48000, audio.SampleRate)
	require.Len(t, audio.Channels, 2)
	assert.Equal(t, len(left), audio.Frames())
	assert.InDelta(t, 0.1, audio.Duration(), 1e-9)

	for i := range left {
		require.InDelta(t, left[i], audio.Channels[0][i], 1.0/32767, "left %d", i)
		require.InDelta(t, right[i], audio.Channels[1][i], 1.0/32767, "right %d", i)
	}
}

// TestWrite_Clamps saturates out-of-range samples and zeroes NaN.
func TestWrite_Clamps(t *testing.T) {
	var buf bytes.Buffer
	nan := float32(math.NaN())
	require.NoError(t, wavfile.Write(&buf, 8000, [][]float32{{2, -3, nan}}))

	audio, err := wavfile.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -1, 0}, audio.Channels[0])
}

// TestWrite_Errors covers argument validation.
func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, wavfile.Write(&buf, 0, [][]float32{{0}}), wavfile.ErrBadSampleRate)
	assert.ErrorIs(t, wavfile.Write(&buf, 8000, nil), wavfile.ErrNoChannels)
	assert.ErrorIs(t, wavfile.Write(&buf, 8000, [][]float32{{}}), wavfile.ErrNoChannels)
	assert.ErrorIs(t, wavfile.Write(&buf, 8000, [][]float32{{0, 1}, {0}}), wavfile.ErrChannelLength)
	assert.Zero(t, buf.Len(), "nothing written on validation failure")
}

// TestRead_FloatWithExtraChunk decodes a hand-built float32 file that
// carries a LIST chunk before the data.
func TestRead_FloatWithExtraChunk(t *testing.T) {
	samples := []float32{0.25, -0.5, 1}

	var body bytes.Buffer
	le := binary.LittleEndian
	body.WriteString("WAVE")
	body.WriteString("fmt ")
	_ = binary.Write(&body, le, uint32(16))
	_ = binary.Write(&body, le, []uint16{3, 1})
	_ = binary.Write(&body, le, []uint32{44100, 44100 * 4})
	_ = binary.Write(&body, le, []uint16{4, 32})
	body.WriteString("LIST")
	_ = binary.Write(&body, le, uint32(3))
	body.Write([]byte{'a', 'b', 'c', 0}) // odd size + pad byte
	body.WriteString("data")
	_ = binary.Write(&body, le, uint32(len(samples)*4))
	_ = binary.Write(&body, le, samples)

	var file bytes.Buffer
	file.WriteString("RIFF")
	_ = binary.Write(&file, le, uint32(body.Len()))
	file.Write(body.Bytes())

	audio, err := wavfile.Read(&file)
	require.NoError(t, err)
	assert.Equal(t, 44100, audio.SampleRate)
	assert.Equal(t, [][]float32{samples}, audio.Channels)
}

// TestRead_DataSizeMismatch decodes what is present when the data chunk
// size is the streaming placeholder or larger than the file.
func TestRead_DataSizeMismatch(t *testing.T) {
	samples := []float32{0.5, -0.5, 0.25, -0.25}
	var buf bytes.Buffer
	require.NoError(t, wavfile.Write(&buf, 8000, [][]float32{samples}))
	file := buf.Bytes()

	streamed := bytes.Clone(file)
	binary.LittleEndian.PutUint32(streamed[4:8], 0xFFFFFFFF)
	binary.LittleEndian.PutUint32(streamed[40:44], 0xFFFFFFFF)
	audio, err := wavfile.Read(bytes.NewReader(streamed))
	require.NoError(t, err)
	assert.InDeltaSlice(t, f64(samples), f64(audio.Channels[0]), 1.0/32767)

	// Five data bytes: two whole frames plus a partial one that is dropped.
	audio, err = wavfile.Read(bytes.NewReader(file[:len(file)-3]))
	require.NoError(t, err)
	assert.InDeltaSlice(t, f64(samples[:2]), f64(audio.Channels[0]), 1.0/32767)

	_, err = wavfile.Read(bytes.NewReader(file[:44]))
	assert.ErrorIs(t, err, wavfile.ErrBadHeader, "no frames at all")
}

// TestRead_Errors covers malformed and unsupported streams.
func TestRead_Errors(t *testing.T) {
	_, err := wavfile.Read(bytes.NewReader([]byte("RIFX")))
	assert.ErrorIs(t, err, wavfile.ErrBadHeader)

	_, err = wavfile.Read(bytes.NewReader([]byte("RIFF\x00\x00\x00\x00AVI ")))
	assert.ErrorIs(t, err, wavfile.ErrBadHeader)

	// 24-bit PCM header followed by an empty data chunk.
	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("RIFF")
	_ = binary.Write(&b, le, uint32(36))
	b.WriteString("WAVEfmt ")
	_ = binary.Write(&b, le, uint32(16))
	_ = binary.Write(&b, le, []uint16{1, 1})
	_ = binary.Write(&b, le, []uint32{8000, 24000})
	_ = binary.Write(&b, le, []uint16{3, 24})
	b.WriteString("data")
	_ = binary.Write(&b, le, uint32(0))

	_, err = wavfile.Read(&b)
	assert.ErrorIs(t, err, wavfile.ErrUnsupportedFormat)
}
