package core

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// FinalLabel labels the trailing game-over sample instead of a phase number.
const FinalLabel = "Final"

// Series holds the per-player time series derived from phase samples.
// Scores and Incomes are indexed [player][sample]; Labels is indexed [sample].
type Series struct {
	Labels  []string
	Scores  [][]float64
	Incomes [][]int
}

// Len returns the number of samples.
func (s *Series) Len() int {
	return len(s.Labels)
}

// PlayerCount returns the number of per-player series.
func (s *Series) PlayerCount() int {
	return len(s.Scores)
}

// IsEmpty reports the "nothing to plot" case.
func (s *Series) IsEmpty() bool {
	return s.Len() == 0
}

// BuildSeries turns phase samples into score and income series.
//
// Scores are centred on each sample's mean so players can be compared without the absolute
// score level, which drifts upward every phase. Incomes collapse the three resource kinds into
// one scalar per sample. An empty input yields an empty Series; it is not an error.
//
// Every sample must carry the same number of players as the first one; otherwise
// ErrMalformedHistory is returned.
func BuildSeries(samples Samples) (*Series, error) {
	series := &Series{
		Labels:  make([]string, 0, len(samples)),
		Scores:  make([][]float64, 0),
		Incomes: make([][]int, 0),
	}
	if len(samples) == 0 {
		return series, nil
	}

	playerCount := len(samples[0].Players)
	for i, s := range samples {
		if len(s.Players) != playerCount {
			return nil, fmt.Errorf("%w: sample %d has %d players, expected %d",
				ErrMalformedHistory, i, len(s.Players), playerCount)
		}
	}

	series.Scores = make([][]float64, playerCount)
	series.Incomes = make([][]int, playerCount)
	for p := 0; p < playerCount; p++ {
		series.Scores[p] = make([]float64, len(samples))
		series.Incomes[p] = make([]int, len(samples))
	}

	for i, s := range samples {
		series.Labels = append(series.Labels, sampleLabel(s))

		mean := MeanScore(s.Players)
		for p, player := range s.Players {
			// Use decimal arithmetic so the centred values of one sample sum to zero
			centred := decimal.NewFromInt(int64(player.Score)).Sub(mean)
			series.Scores[p][i] = centred.InexactFloat64()
			series.Incomes[p][i] = player.Income.Sum()
		}
	}

	return series, nil
}

// MeanScore returns the average score across players, or zero for no players.
func MeanScore(players []PlayerView) decimal.Decimal {
	if len(players) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, p := range players {
		sum = sum.Add(decimal.NewFromInt(int64(p.Score)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(players))))
}

func sampleLabel(s Snapshot) string {
	if s.IsGameOver {
		return FinalLabel
	}
	return strconv.Itoa(s.Phase)
}
