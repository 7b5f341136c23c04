// Package waveform synthesizes deterministic test waveforms as float32
// sample slices.
//
// 🚀 Generators:
//
//	Sine, Cosine, Sawtooth, Square   periodic tones at freq Hz for a duration
//	TwoSines                         sum of two weighted sines
//	Chirp                            linear sweep f0 → f1 (cycles/sample)
//	Pulse                            rectangular or triangular pulse train
//
// Timed generators render ceil(seconds·fs) samples at t = i/fs. Phase is
// reduced to one cycle in double precision before being scaled by
// 2·constants.Pi(), so long renders do not drift.
//
// Conventions:
//   - Sawtooth rises linearly from −1 to +1 over each period.
//   - Square is +1 while the phase fraction is below the duty (default ½),
//     −1 otherwise.
//
// ⚙️ Options (functional, last wins):
//
//	WithAmplitude(A)   scale, A > 0                    (default 1)
//	WithTrend(k)       add k·i to sample i              (default 0)
//	WithNoise(sigma)   add Gaussian noise, sigma ≥ 0   (default 0)
//	WithSeed(seed)     seed the noise source            (default 1)
//	WithDuty(d)        square/pulse duty in [0,1]       (default ½)
//	WithTriangular()   triangular pulse shape
//
// Option constructors panic on meaningless values; generators never panic
// and report invalid arguments through the sentinels in errors.go.
package waveform
