// Package wavfile reads and writes RIFF/WAVE audio files.
//
// Write always produces 16-bit PCM with interleaved channels. Read accepts
// 16-bit PCM and 32-bit IEEE float, skipping chunks it does not need
// (LIST, fact, ...). Samples are exchanged as float32 in [−1, 1], one slice
// per channel.
package wavfile
