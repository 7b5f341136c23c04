// Package anolib is a small audio DSP test bench: a shared constant, the
// canonical test signals, periodic waveforms, first/second order filters,
// signal alignment and WAV I/O.
//
// 🚀 Packages:
//
//	constants/ — π in single precision (4·atan(1)), read via constants.Pi()
//	signals/   — DC, Nyquist, half/quarter Nyquist, impulse and step inputs
//	waveform/  — sine, cosine, sawtooth, square, two-sine, chirp and pulse
//	filter/    — one-zero, one-pole, resonator, kLPF2, biquad designer, DC blocker
//	dtw/       — Dynamic Time Warping distance between two signals
//	wavfile/   — 16-bit PCM / float32 RIFF-WAVE reader and writer
//
// The anolib command (cmd/anolib) wraps these for the shell: render tones,
// run filters over test signals, and compare recordings.
//
// Quick example:
//
//	in := signals.Impulse()
//	out := filter.OnePole(in, 0.5, 0.5)
//	// out = [0 0.5 -0.25 0.125 -0.0625 0.03125 -0.015625 0.0078125]
//
//	go get github.com/anoesisaudio/anolib
package anolib
