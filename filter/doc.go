// Package filter implements the first- and second-order IIR filters used
// throughout anolib: one-zero and one-pole sections, a two-pole resonator,
// the classic second-order low-pass, a general biquad with a coefficient
// designer, and a DC blocker.
//
// 🚀 Difference equations (x = input, y = output, n = sample index):
//
//	one-zero   y[n] = a0·x[n] + a1·x[n-1]
//	one-pole   y[n] = a0·x[n] − b1·y[n-1]
//	biquad     y[n] = a0·x[n] + a1·x[n-1] + a2·x[n-2] − b1·y[n-1] − b2·y[n-2]
//	DC blocker y[n] = x[n] − x[n-1] + R·y[n-1]
//
// The feedback coefficients are named b1/b2 and always SUBTRACTED, so a
// designed low-pass has b1 < 0. Numerators use a0..a2.
//
// ✨ Designed responses (see Kind):
//
//	OnePoleLowpass, OnePoleHighpass, Lowpass1P1Z, Highpass1P1Z,
//	Lowpass, Highpass, Bandpass, Notch, Peak,
//	LowShelf, HighShelf, LowShelf1st, HighShelf1st,
//	Allpass, Allpass1st
//
// ⚙️ Usage:
//
//	c, err := filter.Design(filter.Lowpass, 1000, 48000, 0.707, 0)
//	if err != nil { ... }
//	bq := filter.NewBiquad(c)
//	out := bq.Process(in)
//
// Samples are float32; coefficients and filter state are carried in
// float64 so long runs do not accumulate single-precision error.
//
// Processors (Biquad, DCBlocker) are stateful and NOT safe for concurrent
// use; give each goroutine its own instance.
package filter
