// SPDX-License-Identifier: MIT
// Package: anolib/filter
//
// errors.go — sentinel errors for the filter package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach context with %w via filterErrorf.
//   • Processing never fails: once coefficients exist, Process cannot error.

package filter

import (
	"errors"
	"fmt"
)

// ErrBadSampleRate indicates a sample rate that is not strictly positive.
var ErrBadSampleRate = errors.New("filter: sample rate must be > 0")

// ErrBadCutoff indicates a cutoff outside the open interval (0, fs/2).
var ErrBadCutoff = errors.New("filter: cutoff must lie in (0, fs/2)")

// ErrBadQ indicates a quality factor that is not strictly positive.
var ErrBadQ = errors.New("filter: q must be > 0")

// ErrUnknownKind indicates a Kind value or name Design does not know.
var ErrUnknownKind = errors.New("filter: unknown filter kind")

// ErrBadPole indicates a DC blocker pole with |R| >= 1 (unstable) or NaN.
var ErrBadPole = errors.New("filter: pole magnitude must be < 1")

// filterErrorf prefixes a sentinel with method context: "<method>: <msg>: <err>".
func filterErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
