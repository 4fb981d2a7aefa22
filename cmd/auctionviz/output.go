package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cloudx-io/auctionviz/validation"
	"github.com/cloudx-io/auctionviz/vizapi"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func writeFrameText(w io.Writer, frame *vizapi.Frame) {
	fmt.Fprintln(w, "Jewel Auction Report")
	fmt.Fprintln(w, "====================")
	fmt.Fprintln(w)

	status := frame.Status
	fmt.Fprintf(w, "Phase: %s   Round: %s   Turn: %d\n", status.Phase, status.Round, status.Turn)
	if status.AuctionMax != nil {
		fmt.Fprintf(w, "Highest bid: %s\n", formatTuple(status.AuctionMax[:]))
	}
	if status.WaitingHuman {
		fmt.Fprintf(w, "Waiting for the human (suggested bid %s)\n", formatTuple(status.SuggestedBid[:]))
	}
	if frame.Warning != "" {
		fmt.Fprintf(w, "WARNING: %s\n", frame.Warning)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Players:")
	for _, p := range status.Players {
		flags := make([]string, 0, 3)
		if p.IsTurn {
			flags = append(flags, "turn")
		}
		if p.IsHighestBidder {
			flags = append(flags, "highest")
		}
		if p.HasPassed {
			flags = append(flags, "passed")
		}
		fmt.Fprintf(w, "  #%d %-12s rank %d  score %3d  coins %s  income %s  %s\n",
			p.Index, p.Name, p.Rank, p.Score, formatTuple(p.Coins[:]), formatTuple(p.Income[:]), strings.Join(flags, ","))
	}

	writeChartText(w, "Score vs mean", frame.ScoreChart)
	writeChartText(w, "Income per phase", frame.IncomeChart)

	if len(frame.ScoreLine.Markers) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Score line:")
		for _, tick := range frame.ScoreLine.Ticks {
			fmt.Fprintf(w, "  tick %s at %.2f%%\n", tick.Label, tick.Left)
		}
		for _, m := range frame.ScoreLine.Markers {
			fmt.Fprintf(w, "  %s %s at %.2f%% / %.0f%% %s\n", m.ID, m.Text, m.Left, m.Top, m.Color)
		}
	}

	if frame.Results != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Final results:")
		for _, r := range frame.Results.Rows {
			fmt.Fprintf(w, "  %d. %-12s score %3d  coins %d\n", r.Rank, r.Name, r.Score, r.CoinTotal)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "History hash: %s\n", frame.HistoryHash)
}

func writeChartText(w io.Writer, title string, chart vizapi.ChartData) {
	if len(chart.Labels) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s (%s):\n", title, strings.Join(chart.Labels, " "))
	for _, ds := range chart.Datasets {
		values := make([]string, len(ds.Data))
		for i, v := range ds.Data {
			values[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		fmt.Fprintf(w, "  %-9s %s\n", ds.Label, strings.Join(values, " "))
	}
}

func writeValidationText(w io.Writer, result *validation.HistoryValidationResult) {
	fmt.Fprintln(w, "Auction History Validator")
	fmt.Fprintln(w, "=========================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "  Snapshots:               %d\n", result.SnapshotCount)
	fmt.Fprintf(w, "  Phase Order Valid:       %v\n", result.PhaseOrderValid)
	fmt.Fprintf(w, "  Round Order Valid:       %v\n", result.RoundOrderValid)
	fmt.Fprintf(w, "  Player Count Valid:      %v\n", result.PlayerCountValid)
	fmt.Fprintf(w, "  Player Index Valid:      %v\n", result.PlayerIndexValid)
	fmt.Fprintf(w, "  Phase Start Valid:       %v\n", result.PhaseStartValid)
	fmt.Fprintf(w, "  Waiting State Valid:     %v\n", result.WaitingValid)
	fmt.Fprintf(w, "  Terminal Valid:          %v\n", result.TerminalValid)
	fmt.Fprintf(w, "  History Hash:            %s\n", result.HistoryHash)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Details:")
	for _, detail := range result.ValidationDetails {
		fmt.Fprintf(w, "  - %s\n", detail)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=========================")
	if result.IsValid() {
		fmt.Fprintln(w, "VALIDATION: ✓ PASSED")
	} else {
		fmt.Fprintln(w, "VALIDATION: ✗ FAILED")
	}
}

func formatTuple(v []int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(x)
	}
	return "(" + strings.Join(parts, ",") + ")"
}
