package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ja7ad/breakeven/pkg/curve"
)

func newRootCmd(r curve.Renderer) *cobra.Command {
	o := defaultOptions(r)

	cmd := &cobra.Command{
		Use:   "breakeven --size GB --cf RATIO --bandwidth MBPS [flags]",
		Short: "Compression energy break-even calculator",
		Long: `breakeven estimates whether compressing a corpus before sending it over a
constrained link saves energy overall. It compares the energy of a one-off
compression pass plus the shorter transfer against sending the corpus raw,
and reports the break-even compression factor, savings and energy ROI.

Examples:
  breakeven --size 75 --cf 9.375 --bandwidth 1
  breakeven --size 0.5 --cf 4 --bandwidth 0.05 --transmit-power 0.1 --compress-time 0.5
  breakeven --size 75 --cf 9.375 --bandwidth 1 --plot --plot-file out/curve.png -o json`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.Context(), cmd.OutOrStdout(), o.logger(cmd.ErrOrStderr()))
		},
	}

	o.Bind(cmd.Flags())
	for _, name := range []string{"size", "cf", "bandwidth"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// execute runs cmd and, when it fails, prints the usage of the failing
// command on its error stream. The error itself is left to the caller.
func execute(cmd *cobra.Command) error {
	c, err := cmd.ExecuteC()
	if err != nil {
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
	}
	return err
}
