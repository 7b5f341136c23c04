// Package constants exposes the numeric constants shared across anolib.
//
// Today it holds a single value, π in single precision, computed once at
// package initialization from the identity atan(1) = π/4:
//
//	PI = 4 · atan(1) ≈ 3.1415927
//
// The value is reached through the Pi accessor rather than an exported
// variable, so importers can read it but never reassign it.
//
// ⚙️ Usage:
//
//	import "github.com/anoesisaudio/anolib/constants"
//
//	theta := 2 * constants.Pi() * freq / fs
//
// Concurrency: the value is written during package init, before any
// importer runs, and never again. Any number of goroutines may read it
// without synchronization.
package constants
