// SPDX-License-Identifier: MIT
// Package: anolib/waveform
//
// errors.go — sentinel errors for waveform generators.
//
// Priority when several arguments are wrong:
//   • ErrBadSampleRate → ErrBadDuration → ErrBadFrequency (timed generators)
//   • ErrBadSize       → ErrBadFrequency                  (Chirp/Pulse)

package waveform

import (
	"errors"
	"fmt"
)

// ErrBadSampleRate indicates fs <= 0.
var ErrBadSampleRate = errors.New("waveform: sample rate must be > 0")

// ErrBadDuration indicates a duration that renders no samples.
var ErrBadDuration = errors.New("waveform: duration must be > 0")

// ErrBadFrequency indicates a frequency <= 0 or above Nyquist.
var ErrBadFrequency = errors.New("waveform: frequency out of range")

// ErrBadSize indicates n < 1 for the sample-count generators.
var ErrBadSize = errors.New("waveform: invalid size")

// waveErrorf prefixes a sentinel with generator context.
func waveErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
