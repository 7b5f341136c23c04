package wavfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

const (
	formatPCM   = 1
	formatFloat = 3

	pcm16Scale = 32767
	headerSize = 44

	// maxDataSize keeps the RIFF size field within 32 bits.
	maxDataSize = math.MaxUint32 - (headerSize - 8)
)

// Audio is a decoded wave file.
type Audio struct {
	SampleRate int
	Channels   [][]float32
}

// Frames returns the number of samples per channel.
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}
	return len(a.Channels[0])
}

// Duration returns the length in seconds.
func (a *Audio) Duration() float64 {
	if a.SampleRate <= 0 {
		return 0
	}
	return float64(a.Frames()) / float64(a.SampleRate)
}

// fmtChunk mirrors the 16-byte WAVE "fmt " payload.
type fmtChunk struct {
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// Write encodes channels as 16-bit PCM at sampleRate. Samples outside
// [−1, 1] are clamped.
func Write(w io.Writer, sampleRate int, channels [][]float32) error {
	if sampleRate <= 0 || int64(sampleRate) > math.MaxUint32 {
		return fmt.Errorf("Write: rate=%d: %w", sampleRate, ErrBadSampleRate)
	}
	if len(channels) == 0 || len(channels[0]) == 0 {
		return fmt.Errorf("Write: %w", ErrNoChannels)
	}
	frames := len(channels[0])
	for c, ch := range channels {
		if len(ch) != frames {
			return fmt.Errorf("Write: channel %d has %d frames, want %d: %w", c, len(ch), frames, ErrChannelLength)
		}
	}

	nch := len(channels)
	blockAlign := nch * 2
	dataSize, err := pcmDataSize(frames, nch)
	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	bw := bufio.NewWriter(w)
	le := binary.LittleEndian
	hdr := make([]byte, headerSize)
	copy(hdr[0:4], "RIFF")
	le.PutUint32(hdr[4:8], headerSize-8+dataSize)
	copy(hdr[8:12], "WAVE")
	copy(hdr[12:16], "fmt ")
	le.PutUint32(hdr[16:20], 16)
	le.PutUint16(hdr[20:22], formatPCM)
	le.PutUint16(hdr[22:24], uint16(nch))
	le.PutUint32(hdr[24:28], uint32(sampleRate))
	le.PutUint32(hdr[28:32], uint32(sampleRate*blockAlign))
	le.PutUint16(hdr[32:34], uint16(blockAlign))
	le.PutUint16(hdr[34:36], 16)
	copy(hdr[36:40], "data")
	le.PutUint32(hdr[40:44], dataSize)
	if _, err := bw.Write(hdr); err != nil {
		return fmt.Errorf("Write: header: %w", err)
	}

	var buf [2]byte
	for i := 0; i < frames; i++ {
		for _, ch := range channels {
			le.PutUint16(buf[:], uint16(toPCM16(ch[i])))
			if _, err := bw.Write(buf[:]); err != nil {
				return fmt.Errorf("Write: frame %d: %w", i, err)
			}
		}
	}
	return bw.Flush()
}

// pcmDataSize returns the 16-bit data chunk size for frames×nch samples.
func pcmDataSize(frames, nch int) (uint32, error) {
	size := int64(frames) * int64(nch) * 2
	if nch > math.MaxUint16 || size > maxDataSize {
		return 0, fmt.Errorf("%d frames × %d channels: %w", frames, nch, ErrTooLarge)
	}
	return uint32(size), nil
}

func toPCM16(v float32) int16 {
	switch {
	case math.IsNaN(float64(v)):
		return 0
	case v >= 1:
		return pcm16Scale
	case v <= -1:
		return -pcm16Scale
	}
	return int16(math.Round(float64(v) * pcm16Scale))
}

// Read decodes a WAVE stream into per-channel float32 samples.
func Read(r io.Reader) (*Audio, error) {
	br := bufio.NewReader(r)
	var riff [12]byte
	if _, err := io.ReadFull(br, riff[:]); err != nil {
		return nil, fmt.Errorf("Read: riff header: %w", ErrBadHeader)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, fmt.Errorf("Read: not a RIFF/WAVE stream: %w", ErrBadHeader)
	}

	var (
		f      fmtChunk
		gotFmt bool
	)
	for {
		var ch [8]byte
		if _, err := io.ReadFull(br, ch[:]); err != nil {
			return nil, fmt.Errorf("Read: missing data chunk: %w", ErrBadHeader)
		}
		id := string(ch[0:4])
		size := int64(binary.LittleEndian.Uint32(ch[4:8]))

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("Read: fmt chunk of %d bytes: %w", size, ErrBadHeader)
			}
			if err := binary.Read(br, binary.LittleEndian, &f); err != nil {
				return nil, fmt.Errorf("Read: fmt chunk: %w", ErrBadHeader)
			}
			if err := skip(br, size-16+size%2); err != nil {
				return nil, err
			}
			gotFmt = true

		case "data":
			if !gotFmt {
				return nil, fmt.Errorf("Read: data before fmt: %w", ErrBadHeader)
			}
			return decode(br, f, size)

		default:
			// RIFF chunks are word aligned.
			if err := skip(br, size+size%2); err != nil {
				return nil, err
			}
		}
	}
}

func skip(r io.Reader, n int64) error {
	if _, err := io.CopyN(io.Discard, r, n); err != nil {
		return fmt.Errorf("Read: truncated chunk: %w", ErrBadHeader)
	}
	return nil
}

func decode(r io.Reader, f fmtChunk, size int64) (*Audio, error) {
	if f.Channels == 0 || f.SampleRate == 0 {
		return nil, fmt.Errorf("Read: channels=%d rate=%d: %w", f.Channels, f.SampleRate, ErrBadHeader)
	}
	var width int
	switch {
	case f.Format == formatPCM && f.BitsPerSample == 16:
		width = 2
	case f.Format == formatFloat && f.BitsPerSample == 32:
		width = 4
	default:
		return nil, fmt.Errorf("Read: format=%d bits=%d: %w", f.Format, f.BitsPerSample, ErrUnsupportedFormat)
	}

	// Streaming writers leave the size unset (0xFFFFFFFF) and files get
	// truncated, so only the bytes actually present count.
	raw, err := io.ReadAll(io.LimitReader(r, size))
	if err != nil {
		return nil, fmt.Errorf("Read: data: %w", err)
	}
	nch := int(f.Channels)
	frames := len(raw) / (width * nch)
	if frames == 0 {
		return nil, fmt.Errorf("Read: data chunk holds no complete frame: %w", ErrBadHeader)
	}

	out := &Audio{SampleRate: int(f.SampleRate), Channels: make([][]float32, nch)}
	for c := range out.Channels {
		out.Channels[c] = make([]float32, frames)
	}
	le := binary.LittleEndian
	for i := 0; i < frames; i++ {
		for c := 0; c < nch; c++ {
			off := (i*nch + c) * width
			if width == 2 {
				out.Channels[c][i] = float32(int16(le.Uint16(raw[off:]))) / pcm16Scale
			} else {
				out.Channels[c][i] = math.Float32frombits(le.Uint32(raw[off:]))
			}
		}
	}
	return out, nil
}
