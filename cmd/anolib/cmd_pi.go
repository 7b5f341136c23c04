package main

import (
	"fmt"
	"math"

	"github.com/anoesisaudio/anolib/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPiCmd() *cobra.Command {
	var bits bool
	cmd := &cobra.Command{
		Use:   "pi",
		Short: "Print the single-precision pi constant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := constants.Pi()
			logger.Debug("Reading constant", zap.Float32("pi", p))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%.7f\n", p)
			if bits {
				fmt.Fprintf(out, "0x%08x\n", math.Float32bits(p))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&bits, "bits", false, "also print the IEEE-754 bit pattern")
	return cmd
}
