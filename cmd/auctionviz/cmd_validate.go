package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cloudx-io/auctionviz/replay"
	"github.com/cloudx-io/auctionviz/validation"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <recording>",
		Short: "Check a recording against the history ordering contract",
		Long: `Validate a recorded history.

This command checks for:
  - Phases going backwards
  - Rounds going backwards inside a phase
  - Player count or player order changing between snapshots
  - Phases without exactly one phase-start snapshot
  - Waiting for the human outside an auction
  - Snapshots after game over

Exits 1 when any check fails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := replay.LoadFile(args[0])
			if err != nil {
				return err
			}

			result, err := validation.ValidateHistory(rec.History)
			if err != nil {
				return err
			}
			a.logger.Debug("history validated", "file", args[0], "valid", result.IsValid())

			if a.format == "json" {
				if err := writeJSON(a.out, result); err != nil {
					return err
				}
			} else {
				writeValidationText(a.out, result)
			}

			if !result.IsValid() {
				return &exitCodeError{code: exitInvalid, err: errors.New("validation failed")}
			}
			return nil
		},
	}
}
