package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cloudx-io/auctionviz/config"
	"github.com/cloudx-io/auctionviz/controller"
	"github.com/cloudx-io/auctionviz/core"
	"github.com/cloudx-io/auctionviz/replay"
	"github.com/cloudx-io/auctionviz/vizapi"
)

func newReplayCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <recording>",
		Short: "Drive a recording through the step controller",
		Long: `Replay a recorded game one step, one round or one phase at a time.

Single steps that wait for the human submit the --decision bid; round and
phase skips always pass. Replay stops after --count iterations, at game over,
or at the end of an unfinished recording.

Decisions:
  pass       submit (0,0,0)
  suggest    submit the current highest bid
  r,g,b      submit a fixed bid, e.g. 2,0,1

Examples:
  auctionviz replay game.json --mode phase
  auctionviz replay game.json --mode step --count 20 --decision suggest`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := a.cfg.Replay.Mode
			if cmd.Flags().Changed("mode") {
				mode, _ = cmd.Flags().GetString("mode")
			}
			count := a.cfg.Replay.Count
			if cmd.Flags().Changed("count") {
				count, _ = cmd.Flags().GetInt("count")
			}
			if count < 0 {
				return fmt.Errorf("count must be non-negative, got %d", count)
			}

			var source controller.DecisionSource = controller.StaticDecision(a.cfg.ReplayDecision())
			if cmd.Flags().Changed("decision") {
				raw, _ := cmd.Flags().GetString("decision")
				parsed, err := parseDecision(raw)
				if err != nil {
					return err
				}
				source = parsed
			}

			rec, err := replay.LoadFile(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			gateway := replay.NewGateway(rec)
			ctrl := controller.New(gateway,
				controller.WithLogger(a.logger),
				controller.WithDecisionSource(source),
			)
			if err := ctrl.Initialize(ctx, rec.PlayerCount(), rec.PlayerKinds()); err != nil {
				return err
			}
			a.logger.Info("replay started",
				"session", ctrl.SessionID(),
				"game", gateway.GameID(),
				"mode", mode,
				"count", count,
			)

			var progress io.Writer = io.Discard
			if a.format == "text" {
				progress = a.out
			}
			track := vizapi.NewMarkerTrack()
			opts := a.cfg.ScoreLineOptions()
			iterations, err := runReplay(ctx, ctrl, mode, count, func(i int, s *core.Snapshot) {
				view := vizapi.NewScoreLineView(core.LayoutScoreLine(s.Players, opts), a.cfg.ScoreLine.Palette)
				moved := 0
				for _, m := range track.Apply(view) {
					if m.Moves > 0 {
						moved++
					}
				}
				p := core.ProgressOf(s)
				fmt.Fprintf(progress, "[%d] phase %s round %s turn %d\n", i, p.PhaseFraction(), p.RoundFraction(), s.Turn)
				a.logger.Debug("replay iteration", "iteration", i, "phase", s.Phase, "round", s.Round, "markers_moved", moved)
			})
			if err != nil {
				return err
			}
			a.logger.Info("replay finished",
				"session", ctrl.SessionID(),
				"iterations", iterations,
				"decisions", len(gateway.Decisions()),
				"remaining", gateway.Remaining(),
			)

			history, err := ctrl.History(ctx)
			if err != nil {
				return err
			}
			frame, err := vizapi.BuildFrame(history, opts, a.cfg.ScoreLine.Palette)
			if err != nil {
				return err
			}
			if a.format == "json" {
				return writeJSON(a.out, frame)
			}
			fmt.Fprintln(a.out)
			writeFrameText(a.out, frame)
			return nil
		},
	}

	cmd.Flags().String("mode", config.ModeStep, "Iteration size: step, round, or phase")
	cmd.Flags().Int("count", 0, "Number of iterations (0 = until the game or recording ends)")
	cmd.Flags().String("decision", "pass", "Human decision for single steps: pass, suggest, or r,g,b")

	return cmd
}

// runReplay repeats the operation selected by mode until count iterations ran, the game is
// over, or the recording ends. onStep sees every snapshot reached.
func runReplay(ctx context.Context, ctrl *controller.StepController, mode string, count int, onStep func(int, *core.Snapshot)) (int, error) {
	var op func(context.Context) (*core.Snapshot, error)
	switch mode {
	case config.ModeStep:
		op = ctrl.Step
	case config.ModeRound:
		op = ctrl.SkipUntilRoundChange
	case config.ModePhase:
		op = ctrl.SkipUntilPhaseChange
	default:
		return 0, fmt.Errorf("invalid mode: %s (must be step, round, or phase)", mode)
	}

	iterations := 0
	for count == 0 || iterations < count {
		state, err := op(ctx)
		if state != nil {
			iterations++
			onStep(iterations, state)
		}
		if err != nil {
			if errors.Is(err, replay.ErrEndOfRecording) {
				return iterations, nil
			}
			return iterations, err
		}
		if state.IsGameOver {
			break
		}
	}
	return iterations, nil
}

// parseDecision reads a --decision value.
func parseDecision(raw string) (controller.DecisionSource, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pass":
		return controller.StaticDecision(core.Pass), nil
	case "suggest":
		return controller.SuggestedDecision{}, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != core.ResourceKinds {
		return nil, fmt.Errorf("invalid decision %q: want pass, suggest, or r,g,b", raw)
	}
	var d core.Resources
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid decision %q: %w", raw, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("invalid decision %q: values must be non-negative", raw)
		}
		d[i] = v
	}
	return controller.StaticDecision(d), nil
}
