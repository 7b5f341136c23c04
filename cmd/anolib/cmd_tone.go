package main

import (
	"fmt"
	"os"

	"github.com/anoesisaudio/anolib/waveform"
	"github.com/anoesisaudio/anolib/wavfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type generator func(fs, seconds, freq float64, opts ...waveform.Option) ([]float32, error)

var generators = map[string]generator{
	"sine":     waveform.Sine,
	"cosine":   waveform.Cosine,
	"sawtooth": waveform.Sawtooth,
	"square":   waveform.Square,
}

func newToneCmd() *cobra.Command {
	var (
		wave       string
		freq       float64
		stereoFreq float64
		seconds    float64
		rate       int
		out        string
	)
	cmd := &cobra.Command{
		Use:   "tone",
		Short: "Render a test waveform to a 16-bit WAV file",
		Long: `Renders sine, cosine, sawtooth or square waves. With --stereo-freq a
second channel is rendered at that frequency.

Example:
  anolib tone --wave cosine --freq 220 --stereo-freq 360 --seconds 3 --out stereo.wav`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := generators[wave]
			if !ok {
				return fmt.Errorf("unknown wave %q (want sine, cosine, sawtooth or square)", wave)
			}
			if rate <= 0 {
				rate = cfg.SampleRate
			}
			amp := waveform.WithAmplitude(cfg.Amplitude)

			channels := make([][]float32, 0, 2)
			for _, f := range []float64{freq, stereoFreq} {
				if f == 0 && len(channels) > 0 {
					continue
				}
				samples, err := gen(float64(rate), seconds, f, amp)
				if err != nil {
					return err
				}
				channels = append(channels, samples)
			}

			fh, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer fh.Close()

			if err := wavfile.Write(fh, rate, channels); err != nil {
				return err
			}
			logger.Info("Rendered tone",
				zap.String("wave", wave),
				zap.Float64("freq", freq),
				zap.Int("channels", len(channels)),
				zap.Int("frames", len(channels[0])),
				zap.String("out", out))
			return fh.Close()
		},
	}
	cmd.Flags().StringVar(&wave, "wave", "sine", "waveform: sine, cosine, sawtooth, square")
	cmd.Flags().Float64Var(&freq, "freq", 440, "frequency in Hz")
	cmd.Flags().Float64Var(&stereoFreq, "stereo-freq", 0, "second channel frequency in Hz (0 = mono)")
	cmd.Flags().Float64Var(&seconds, "seconds", 1, "duration in seconds")
	cmd.Flags().IntVar(&rate, "rate", 0, "sample rate in Hz (0 = config sample_rate)")
	cmd.Flags().StringVarP(&out, "out", "o", "tone.wav", "output file")
	return cmd
}
