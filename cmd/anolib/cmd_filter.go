package main

import (
	"fmt"
	"strings"

	"github.com/anoesisaudio/anolib/filter"
	"github.com/anoesisaudio/anolib/signals"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Filters that are not Design kinds.
const (
	kindOneZero   = "one-zero"
	kindOnePole   = "one-pole"
	kindResonator = "resonator"
	kindKLPF2     = "klpf2"
	kindDCBlocker = "dc-blocker"
)

type filterFlags struct {
	kind   string
	fc     float64
	q      float64
	gainDB float64
	rate   float64
	input  string
	n      int
	a0     float32
	a1     float32
	b1     float32
	pole   float64
}

func newFilterCmd() *cobra.Command {
	var (
		ff   filterFlags
		list bool
	)
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Run a filter over a canonical test signal and print the output",
		Long: `Runs one filter over a test signal (dc, step, nyquist, half-nyquist,
quarter-nyquist, impulse) and prints one sample per line.

Kinds: one-zero, one-pole, resonator, klpf2, dc-blocker, or any biquad
design kind (see --list).

Example:
  anolib filter --kind one-pole --a0 0.5 --b1 0.5 --input impulse
  anolib filter --kind peak --fc 1000 --q 2 --gain 6 --input impulse --n 64`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				names := []string{kindOneZero, kindOnePole, kindResonator, kindKLPF2, kindDCBlocker}
				for _, k := range filter.Kinds() {
					names = append(names, k.String())
				}
				fmt.Fprintln(out, strings.Join(names, "\n"))
				return nil
			}

			if !cmd.Flags().Changed("q") {
				ff.q = cfg.DefaultQ
			}
			if !cmd.Flags().Changed("pole") {
				ff.pole = cfg.DCBlockerPole
			}
			if ff.rate <= 0 {
				ff.rate = float64(cfg.SampleRate)
			}

			in, err := signals.ByName(ff.input, ff.n)
			if err != nil {
				return err
			}
			y, err := runFilter(ff, in)
			if err != nil {
				return err
			}
			logger.Debug("Filtered signal",
				zap.String("kind", ff.kind),
				zap.String("input", ff.input),
				zap.Int("samples", len(y)))

			for _, v := range y {
				fmt.Fprintf(out, "%.6f\n", v)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&ff.kind, "kind", "lp", "filter kind")
	f.Float64Var(&ff.fc, "fc", 1000, "cutoff / centre frequency in Hz")
	f.Float64Var(&ff.q, "q", 0.7071, "quality factor (default from config)")
	f.Float64Var(&ff.gainDB, "gain", 0, "peak/shelf gain in dB")
	f.Float64Var(&ff.rate, "rate", 0, "sample rate in Hz (0 = config sample_rate)")
	f.StringVar(&ff.input, "input", "impulse", "test signal name")
	f.IntVar(&ff.n, "n", 0, "signal length (0 = 8-sample fixture)")
	f.Float32Var(&ff.a0, "a0", 0.5, "one-zero/one-pole a0")
	f.Float32Var(&ff.a1, "a1", 0.5, "one-zero a1")
	f.Float32Var(&ff.b1, "b1", 0.5, "one-pole b1")
	f.Float64Var(&ff.pole, "pole", filter.DefaultDCPole, "DC blocker pole (default from config)")
	f.BoolVar(&list, "list", false, "list filter kinds and exit")
	return cmd
}

func runFilter(ff filterFlags, in []float32) ([]float32, error) {
	switch ff.kind {
	case kindOneZero:
		return filter.OneZero(in, ff.a0, ff.a1), nil
	case kindOnePole:
		return filter.OnePole(in, ff.a0, ff.b1), nil
	case kindResonator:
		return filter.Resonate(in, ff.rate, ff.fc, ff.q)
	case kindKLPF2:
		return filter.SecondOrderLowpass(in, ff.rate, ff.fc, ff.q)
	case kindDCBlocker:
		d := filter.NewDCBlocker()
		if err := d.SetPole(ff.pole); err != nil {
			return nil, err
		}
		return d.Process(in), nil
	}

	kind, err := filter.ParseKind(ff.kind)
	if err != nil {
		return nil, err
	}
	c, err := filter.Design(kind, ff.fc, ff.rate, ff.q, ff.gainDB)
	if err != nil {
		return nil, err
	}
	logger.Debug("Designed biquad",
		zap.Stringer("kind", kind),
		zap.Float64("a0", c.A0), zap.Float64("a1", c.A1), zap.Float64("a2", c.A2),
		zap.Float64("b1", c.B1), zap.Float64("b2", c.B2))
	return filter.NewBiquad(c).Process(in), nil
}
