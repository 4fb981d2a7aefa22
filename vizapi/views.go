package vizapi

import (
	"fmt"
	"strconv"

	"github.com/cloudx-io/auctionviz/core"
)

// MarkerID is the element id of a player's score marker.
func MarkerID(playerIndex int) string {
	return fmt.Sprintf("score-marker-%d", playerIndex)
}

// DatasetLabel names a player's chart line.
func DatasetLabel(playerIndex int) string {
	return fmt.Sprintf("Player %d", playerIndex)
}

// Color returns the palette entry for a colour slot, cycling when the palette is shorter
// than the slot range. An empty palette yields "".
func Color(palette []string, slot int) string {
	if len(palette) == 0 {
		return ""
	}
	return palette[slot%len(palette)]
}

// NewScoreChart converts the mean-centred score series into chart data.
func NewScoreChart(series *core.Series, palette []string) ChartData {
	chart := newChart(series)
	for p, scores := range series.Scores {
		chart.Datasets = append(chart.Datasets, ChartDataset{
			Label:       DatasetLabel(p),
			PlayerIndex: p,
			Color:       Color(palette, p),
			Data:        append([]float64(nil), scores...),
		})
	}
	return chart
}

// NewIncomeChart converts the per-phase income series into chart data.
func NewIncomeChart(series *core.Series, palette []string) ChartData {
	chart := newChart(series)
	for p, incomes := range series.Incomes {
		data := make([]float64, len(incomes))
		for i, v := range incomes {
			data[i] = float64(v)
		}
		chart.Datasets = append(chart.Datasets, ChartDataset{
			Label:       DatasetLabel(p),
			PlayerIndex: p,
			Color:       Color(palette, p),
			Data:        data,
		})
	}
	return chart
}

func newChart(series *core.Series) ChartData {
	return ChartData{
		Labels:   append([]string{}, series.Labels...),
		Datasets: make([]ChartDataset, 0, series.PlayerCount()),
	}
}

// NewScoreLineView converts a score-line layout into renderer coordinates.
func NewScoreLineView(line *core.ScoreLine, palette []string) ScoreLineView {
	view := ScoreLineView{
		Ticks:   make([]TickView, 0, len(line.Ticks)),
		Markers: make([]MarkerView, 0, len(line.Markers)),
	}
	for _, tick := range line.Ticks {
		view.Ticks = append(view.Ticks, TickView{
			Label: strconv.Itoa(tick.Value),
			Left:  tick.HorizontalPercent,
		})
	}
	for _, m := range line.Markers {
		view.Markers = append(view.Markers, MarkerView{
			ID:          MarkerID(m.PlayerIndex),
			PlayerIndex: m.PlayerIndex,
			Text:        strconv.Itoa(m.Score),
			Left:        m.HorizontalPercent,
			Top:         m.VerticalOffsetPercent,
			Color:       Color(palette, m.ColorSlot),
		})
	}
	return view
}

// NewStatusView builds the status panel for a snapshot.
//
// Ranks are recomputed from scores and coins rather than read from the snapshot, so
// recordings without ranks still render them.
func NewStatusView(s *core.Snapshot) StatusView {
	progress := core.ProgressOf(s)
	view := StatusView{
		Phase:   progress.PhaseFraction(),
		Round:   progress.RoundFraction(),
		Players: make([]PlayerRow, 0),
	}
	if s == nil {
		return view
	}

	view.Turn = s.Turn
	view.JewelPoint = s.Jewel.Point
	view.JewelIncome = s.Jewel.Income
	view.WaitingHuman = s.IsWaitingForHuman
	view.SuggestedBid = s.SuggestedBid()
	view.GameOver = s.IsGameOver
	highestBidder := -1
	if s.HasActiveAuction() {
		maxValue := s.ActiveAuction.MaxValue
		view.AuctionMax = &maxValue
		highestBidder = s.ActiveAuction.MaxPlayer
	}

	ranks := core.RanksByIndex(core.RankPlayers(s.Players))
	coinBars := core.ResourceBars(s.Players, core.Coins)
	incomeBars := core.ResourceBars(s.Players, core.Incomes)
	for i, p := range s.Players {
		view.Players = append(view.Players, PlayerRow{
			Index:           p.Index,
			Name:            p.Name,
			Rank:            ranks[p.Index],
			Score:           p.Score,
			Coins:           p.Resources,
			CoinBars:        coinBars[i].Percent,
			Income:          p.Income,
			IncomeBars:      incomeBars[i].Percent,
			CurrentBid:      p.CurrentBid,
			HasPassed:       p.HasPassed,
			IsHighestBidder: p.Index == highestBidder,
			IsTurn:          s.HasActiveAuction() && p.Index == s.Turn,
		})
	}
	return view
}

// NewResultsView builds the final results table from standings.
func NewResultsView(standings []core.PlayerRank) *ResultsView {
	view := &ResultsView{Rows: make([]ResultRow, 0, len(standings))}
	for _, r := range standings {
		view.Rows = append(view.Rows, ResultRow{
			Rank:        r.Rank,
			PlayerIndex: r.PlayerIndex,
			Name:        r.Name,
			Score:       r.Score,
			CoinTotal:   r.CoinTotal,
		})
	}
	return view
}

// BuildFrame renders a whole history into one frame.
//
// Processing flow:
//  1. Run the analytics report (sampling, series, standings, fingerprint)
//  2. Convert the series into score and income charts
//  3. Lay out the score track and status panel for the latest snapshot
//  4. Attach the results table once the game is over
//
// A malformed phase order is carried in Frame.Warning; other report failures are returned.
func BuildFrame(history core.History, opts core.ScoreLineOptions, palette []string) (*Frame, error) {
	// Step 1: Analytics
	report, err := core.BuildReport(history)
	if err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}

	// Step 2: Charts
	frame := &Frame{
		HistoryHash: report.HistoryHash,
		ScoreChart:  NewScoreChart(report.Series, palette),
		IncomeChart: NewIncomeChart(report.Series, palette),
	}
	if report.OrderErr != nil {
		frame.Warning = report.OrderErr.Error()
	}

	// Step 3: Latest snapshot
	last := history.Last()
	frame.Status = NewStatusView(last)
	var players []core.PlayerView
	if last != nil {
		players = last.Players
	}
	frame.ScoreLine = NewScoreLineView(core.LayoutScoreLine(players, opts), palette)

	// Step 4: Results
	if report.Standings != nil {
		frame.Results = NewResultsView(report.Standings)
	}

	return frame, nil
}
