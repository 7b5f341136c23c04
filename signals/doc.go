// Package signals provides the canonical test inputs used to probe filters.
//
// Two families are offered:
//
//   - Eight-sample fixtures (DC, Nyquist, HalfNyquist, QuarterNyquist,
//     Impulse). Short enough to check a filter's response by hand.
//   - Length-n generators (NyquistN, HalfNyquistN, QuarterNyquistN,
//     ImpulseN, StepN) for longer runs; DefaultLength is 500.
//
// Every function returns a freshly allocated slice, so callers may mutate
// the result freely.
//
// Quick reference (first eight samples):
//
//	DC             0  1  1  1  1  1  1  1
//	Nyquist       -1  1 -1  1 -1  1 -1  1
//	HalfNyquist    0  1  0 -1  0  1  0 -1
//	QuarterNyquist 0 .707 1 .707 0 -.707 -1 -.707
//	Impulse        0  1  0  0  0  0  0  0
package signals
