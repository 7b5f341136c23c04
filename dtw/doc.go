// Package dtw measures how closely two audio signals match when one may
// lag, lead or be locally stretched relative to the other, using Dynamic
// Time Warping.
//
// anolib uses it to compare a filter's output against a reference without
// penalizing the phase delay every causal filter introduces.
//
// ✨ Features:
//   - FullMatrix mode: O(N·M) memory, optional alignment path
//   - TwoRows mode: O(M) memory, distance only
//   - Sakoe–Chiba band (|i−j| ≤ Window) to bound the warp
//   - SlopePenalty added to every non-diagonal step
//
// ⚙️ Usage:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 32
//	opts.ReturnPath = true
//	dist, path, err := dtw.Distance(ref, got, &opts)
//
// Complexity: O(N·M) time (O(N·W) with a window).
package dtw
