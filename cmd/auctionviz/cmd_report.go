package main

import (
	"github.com/spf13/cobra"

	"github.com/cloudx-io/auctionviz/replay"
	"github.com/cloudx-io/auctionviz/vizapi"
)

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report <recording>",
		Short: "Chart a whole recorded game",
		Long: `Build the renderer frame for a complete recording: score and income charts
sampled once per phase, the score line of the last snapshot, the status panel
and, when the game is over, the final results.

Examples:
  auctionviz report game.json
  auctionviz report game.cbor --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := replay.LoadFile(args[0])
			if err != nil {
				return err
			}

			frame, err := vizapi.BuildFrame(rec.History, a.cfg.ScoreLineOptions(), a.cfg.ScoreLine.Palette)
			if err != nil {
				return err
			}
			if frame.Warning != "" {
				a.logger.Warn("malformed history", "file", args[0], "error", frame.Warning)
			}
			a.logger.Debug("report built", "file", args[0], "snapshots", len(rec.History), "hash", frame.HistoryHash)

			if a.format == "json" {
				return writeJSON(a.out, frame)
			}
			writeFrameText(a.out, frame)
			return nil
		},
	}
}
