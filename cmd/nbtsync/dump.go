package main

import (
	"fmt"
	"io"
	"log/slog"

	jsoniter "github.com/json-iterator/go"
	"github.com/oriumgames/nbtsync"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newDumpCmd() *cobra.Command {
	var (
		in     fileFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print an NBT file as JSON or YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := in.options()
			if err != nil {
				return err
			}
			bag, err := nbtsync.ReadFile(args[0], opts)
			if err != nil {
				return err
			}
			slog.Debug("nbtsync: decoded file", "path", args[0], "keys", len(bag))
			return render(cmd.OutOrStdout(), bag, format)
		},
	}
	in.register(cmd, "")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

// render writes bag to w in the given format.
func render(w io.Writer, bag nbtsync.Bag, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(map[string]any(bag), "", "  ")
		if err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(bag)); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}
