// Package vizapi defines the payloads handed to the rendering collaborator.
// Every type here is plain data with JSON tags; the renderer paints it as-is.
package vizapi

import "github.com/cloudx-io/auctionviz/core"

// DefaultPalette holds the eight marker and dataset colours, indexed by colour slot.
var DefaultPalette = []string{
	"#E53E3E",
	"#2B6CB0",
	"#38A169",
	"#D69E2E",
	"#805AD5",
	"#ED8936",
	"#319795",
	"#D53F8C",
}

// ChartDataset is one player's line on a chart.
type ChartDataset struct {
	Label       string    `json:"label"`
	PlayerIndex int       `json:"player_index"`
	Color       string    `json:"color"`
	Data        []float64 `json:"data"`
}

// ChartData is a line chart: one label per sample and one dataset per player.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// TickView is a labelled mark on the score track.
type TickView struct {
	Label string  `json:"label"`
	Left  float64 `json:"left"` // percent
}

// MarkerView is one player's marker on the score track.
type MarkerView struct {
	// ID is stable for a player across frames so the renderer can move the same element
	ID          string  `json:"id"`
	PlayerIndex int     `json:"player_index"`
	Text        string  `json:"text"`
	Left        float64 `json:"left"` // percent
	Top         float64 `json:"top"`  // percent
	Color       string  `json:"color"`
}

// ScoreLineView is the score track for one snapshot.
type ScoreLineView struct {
	Ticks   []TickView   `json:"ticks"`
	Markers []MarkerView `json:"markers"`
}

// PlayerRow is one line of the status table.
type PlayerRow struct {
	Index           int                         `json:"index"`
	Name            string                      `json:"name"`
	Rank            int                         `json:"rank"`
	Score           int                         `json:"score"`
	Coins           core.Resources              `json:"coins"`
	CoinBars        [core.ResourceKinds]float64 `json:"coin_bars"`
	Income          core.Resources              `json:"income"`
	IncomeBars      [core.ResourceKinds]float64 `json:"income_bars"`
	CurrentBid      []int                       `json:"current_bid,omitempty"`
	HasPassed       bool                        `json:"has_passed"`
	IsHighestBidder bool                        `json:"is_highest_bidder"`
	IsTurn          bool                        `json:"is_turn"`
}

// StatusView is the game status panel.
type StatusView struct {
	Phase        string          `json:"phase"` // "3/10"
	Round        string          `json:"round"` // "5/12"
	Turn         int             `json:"turn"`
	JewelPoint   int             `json:"jewel_point"`
	JewelIncome  core.Resources  `json:"jewel_income"`
	AuctionMax   *core.Resources `json:"auction_max,omitempty"`
	WaitingHuman bool            `json:"waiting_human"`
	SuggestedBid core.Resources  `json:"suggested_bid"`
	GameOver     bool            `json:"game_over"`
	Players      []PlayerRow     `json:"players"`
}

// ResultRow is one line of the final results table.
type ResultRow struct {
	Rank        int    `json:"rank"`
	PlayerIndex int    `json:"player_index"`
	Name        string `json:"name"`
	Score       int    `json:"score"`
	CoinTotal   int    `json:"coin_total"`
}

// ResultsView is the final results table, in standings order.
type ResultsView struct {
	Rows []ResultRow `json:"rows"`
}

// Frame is everything the renderer needs after one controller operation.
type Frame struct {
	// HistoryHash changes whenever the history does; renderers may skip identical frames
	HistoryHash string        `json:"history_hash"`
	Status      StatusView    `json:"status"`
	ScoreLine   ScoreLineView `json:"score_line"`
	ScoreChart  ChartData     `json:"score_chart"`
	IncomeChart ChartData     `json:"income_chart"`
	Results     *ResultsView  `json:"results,omitempty"`

	// Warning carries a malformed-history report; the frame is still usable
	Warning string `json:"warning,omitempty"`
}
