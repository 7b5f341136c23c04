package wavfile

import "errors"

var (
	// ErrNoChannels indicates Write was given no channels or empty ones.
	ErrNoChannels = errors.New("wavfile: no audio channels")

	// ErrChannelLength indicates channels of differing lengths.
	ErrChannelLength = errors.New("wavfile: channels differ in length")

	// ErrBadSampleRate indicates a sample rate outside (0, 2^32).
	ErrBadSampleRate = errors.New("wavfile: invalid sample rate")

	// ErrBadHeader indicates a stream that is not a well-formed WAVE file.
	ErrBadHeader = errors.New("wavfile: malformed header")

	// ErrTooLarge indicates audio that does not fit a 32-bit RIFF size field.
	ErrTooLarge = errors.New("wavfile: audio exceeds 4 GiB")

	// ErrUnsupportedFormat indicates an encoding other than PCM16 or float32.
	ErrUnsupportedFormat = errors.New("wavfile: unsupported sample format")
)
