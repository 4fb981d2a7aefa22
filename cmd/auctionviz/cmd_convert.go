package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudx-io/auctionviz/replay"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a recording between JSON and CBOR",
		Long: `Convert a recording. The formats follow the file extensions: .cbor is CBOR,
anything else is JSON.

Examples:
  auctionviz convert game.json game.cbor`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := replay.LoadFile(args[0])
			if err != nil {
				return err
			}
			if err := replay.WriteFile(args[1], rec); err != nil {
				return err
			}
			a.logger.Info("recording converted",
				"from", args[0],
				"to", args[1],
				"format", replay.FormatFromPath(args[1]),
				"snapshots", len(rec.History),
			)
			if a.format == "json" {
				return writeJSON(a.out, map[string]any{"out": args[1], "snapshots": len(rec.History)})
			}
			_, err = fmt.Fprintf(a.out, "wrote %d snapshots to %s\n", len(rec.History), args[1])
			return err
		},
	}
}
