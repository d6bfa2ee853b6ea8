package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/hamgrid/cycle"
)

// newValidateCmd checks every even size in a range against the cycle invariants.
func newValidateCmd(c *cli) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Build and validate the cycle for every even size in a range",
		Long: `Builds the cycle for each even n in [from, to] and checks that it has
n² steps, never repeats a cell and closes back on its first step.

Example:
  hamgrid validate --from 2 --to 400`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if from < cycle.MinSize {
				from = cycle.MinSize
			}
			if from%2 != 0 {
				from++
			}
			if to < from {
				return fmt.Errorf("empty range: from=%d to=%d", from, to)
			}

			checked := 0
			for n := from; n <= to; n += 2 {
				if _, err := cycle.Build(n, cycle.WithLogger(c.logger)); err != nil {
					c.logger.Error("size failed", zap.Int("n", n), zap.Error(err))
					fmt.Fprintf(out, "n=%d: %v\n", n, err)
					return err
				}
				checked++
			}
			fmt.Fprintf(out, "ok: %d sizes from %d to %d\n", checked, from, to)
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", cycle.MinSize, "smallest size to check")
	cmd.Flags().IntVar(&to, "to", 64, "largest size to check")

	return cmd
}
