package main

import (
	"log/slog"

	"github.com/oriumgames/nbtsync"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var in, out fileFlags

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode an NBT file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inOpts, err := in.options()
			if err != nil {
				return err
			}
			outOpts, err := out.options()
			if err != nil {
				return err
			}

			bag, err := nbtsync.ReadFile(args[0], inOpts)
			if err != nil {
				return err
			}
			if err := nbtsync.WriteFile(args[1], bag, outOpts); err != nil {
				return err
			}
			slog.Info("nbtsync: converted",
				"in", args[0],
				"out", args[1],
				"gzip", outOpts.Compress.String())
			return nil
		},
	}
	in.register(cmd, "in-")
	out.register(cmd, "out-")
	return cmd
}
