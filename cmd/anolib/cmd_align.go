package main

import (
	"fmt"
	"os"

	"github.com/anoesisaudio/anolib/dtw"
	"github.com/anoesisaudio/anolib/wavfile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newAlignCmd() *cobra.Command {
	var window int
	cmd := &cobra.Command{
		Use:   "align <reference.wav> <test.wav>",
		Short: "DTW distance between the first channels of two WAV files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("window") {
				window = cfg.AlignWindow
			}

			ref, err := readFirstChannel(args[0])
			if err != nil {
				return err
			}
			test, err := readFirstChannel(args[1])
			if err != nil {
				return err
			}

			opts := dtw.DefaultOptions()
			opts.Window = window
			opts.MemoryMode = dtw.TwoRows
			dist, _, err := dtw.Distance(ref, test, &opts)
			if err != nil {
				return err
			}
			logger.Info("Aligned",
				zap.String("reference", args[0]),
				zap.String("test", args[1]),
				zap.Int("window", window),
				zap.Float64("distance", dist))

			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", dist)
			return nil
		},
	}
	cmd.Flags().IntVar(&window, "window", -1, "Sakoe-Chiba band half-width, -1 = unlimited (default from config)")
	return cmd
}

func readFirstChannel(path string) ([]float32, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer fh.Close()

	audio, err := wavfile.Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return audio.Channels[0], nil
}
