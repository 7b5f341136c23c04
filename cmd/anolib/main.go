// Command anolib renders test tones, runs filters over canonical signals and
// compares wave files from the command line.
//
// Usage:
//
//	anolib pi
//	anolib tone --wave sine --freq 220 --seconds 1 --out tone.wav
//	anolib filter --kind lp --fc 1000 --input impulse
//	anolib align ref.wav test.wav
//	anolib config init
package main

import (
	"fmt"
	"os"

	"github.com/anoesisaudio/anolib/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Resolved in PersistentPreRunE
	logger *zap.Logger
	cfg    *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "anolib",
		Short: "anolib - audio DSP test bench",
		Long: `anolib renders deterministic test waveforms, designs and runs
first/second order filters over canonical test signals, and measures how
closely two recordings align.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			level, err := zapcore.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("failed to parse log level: %w", err)
			}
			if verbose {
				level = zapcore.DebugLevel
			}
			zcfg := zap.NewProductionConfig()
			zcfg.Level = zap.NewAtomicLevelAt(level)
			zcfg.OutputPaths = []string{"stderr"}
			logger, err = zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Debug("Config loaded",
				zap.String("path", configPath),
				zap.Int("sample_rate", cfg.SampleRate))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "anolib.yaml", "path to YAML config")

	root.AddCommand(newPiCmd(), newToneCmd(), newFilterCmd(), newAlignCmd(), newConfigCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
