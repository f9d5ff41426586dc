package main

import (
	"log/slog"
	"os"

	"github.com/oriumgames/nbtsync"
	"github.com/spf13/cobra"
)

// fileFlags are the flags describing how one NBT file is stored.
type fileFlags struct {
	encoding string
	gzip     string
}

func (f *fileFlags) register(cmd *cobra.Command, prefix string) {
	cmd.Flags().StringVar(&f.encoding, prefix+"encoding", "big", "NBT encoding: big, little or network")
	cmd.Flags().StringVar(&f.gzip, prefix+"gzip", "auto", "gzip compression: auto, on or off")
}

func (f *fileFlags) options() (nbtsync.FileOptions, error) {
	enc, err := nbtsync.ParseEncoding(f.encoding)
	if err != nil {
		return nbtsync.FileOptions{}, err
	}
	c, err := nbtsync.ParseCompression(f.gzip)
	if err != nil {
		return nbtsync.FileOptions{}, err
	}
	return nbtsync.FileOptions{Encoding: enc, Compress: c}, nil
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "nbtsync",
		Short:        "Inspect and convert NBT files",
		Version:      nbtsync.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newDumpCmd(), newConvertCmd())
	return root
}
