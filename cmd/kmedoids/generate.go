package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TrevorS/kmedoids"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <source> <file>",
		Short: "Write the points of a source to a point file",
		Long: `Materialize a generator expression into a point file. The file name
selects the encoding: a .bin suffix writes packed binary records, anything
else writes text, and a trailing .zst or .lz4 compresses the stream.

Example:
  kmedoids generate "gaussian(5000, 7, 3)" points.bin.zst`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := kmedoids.ParseSource(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			points, err := kmedoids.Load(src)
			if err != nil {
				return err
			}
			if err := kmedoids.WritePoints(args[1], points); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d points to %s\n", len(points), args[1])
			return nil
		},
	}
}
