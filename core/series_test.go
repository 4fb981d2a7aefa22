package core

import (
	"errors"
	"math"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestBuildSeries_Empty(t *testing.T) {
	series, err := BuildSeries(nil)

	assert.NoError(t, err)
	check.True(t, series.IsEmpty())
	check.Equal(t, 0, series.Len())
	check.Equal(t, 0, series.PlayerCount())
	check.Equal(t, []string{}, series.Labels)
}

func TestBuildSeries_MeanCentredScores(t *testing.T) {
	samples := Samples{
		phaseStart(1, playersWithScores(0, 0)),
		phaseStart(2, playersWithScores(6, 2)),
	}

	series, err := BuildSeries(samples)

	assert.NoError(t, err)
	check.Equal(t, 2, series.PlayerCount())
	check.Equal(t, []float64{0, 2}, series.Scores[0])
	check.Equal(t, []float64{0, -2}, series.Scores[1])
}

func TestBuildSeries_CentredScoresSumToZero(t *testing.T) {
	samples := Samples{
		phaseStart(1, playersWithScores(3, 0, 1)),
		phaseStart(2, playersWithScores(10, 7, 7, 1)[:3]),
		phaseStart(3, playersWithScores(-5, 13, 2)),
	}

	series, err := BuildSeries(samples)
	assert.NoError(t, err)

	for i := 0; i < series.Len(); i++ {
		sum := 0.0
		for p := 0; p < series.PlayerCount(); p++ {
			sum += series.Scores[p][i]
		}
		check.True(t, math.Abs(sum) < 1e-9)
	}
}

func TestBuildSeries_IncomeSums(t *testing.T) {
	players := playersWithScores(0, 0)
	players[0].Income = Resources{1, 2, 3}
	players[1].Income = Resources{0, 5, 0}

	later := playersWithScores(4, 1)
	later[0].Income = Resources{1, 2, 3}
	later[1].Income = Resources{2, 5, 4}

	series, err := BuildSeries(Samples{phaseStart(1, players), phaseStart(2, later)})

	assert.NoError(t, err)
	check.Equal(t, []int{6, 6}, series.Incomes[0])
	check.Equal(t, []int{5, 11}, series.Incomes[1])
}

func TestBuildSeries_Labels(t *testing.T) {
	p := playersWithScores(1, 2)
	samples := Samples{phaseStart(1, p), phaseStart(2, p), phaseStart(10, p), gameOver(11, p)}

	series, err := BuildSeries(samples)

	assert.NoError(t, err)
	check.Equal(t, []string{"1", "2", "10", FinalLabel}, series.Labels)
}

func TestBuildSeries_PlayerCountMismatch(t *testing.T) {
	samples := Samples{
		phaseStart(1, playersWithScores(1, 2)),
		phaseStart(2, playersWithScores(1, 2, 3)),
	}

	series, err := BuildSeries(samples)

	check.Nil(t, series)
	check.True(t, errors.Is(err, ErrMalformedHistory))
}

func TestMeanScore(t *testing.T) {
	check.True(t, MeanScore(nil).IsZero())
	check.Equal(t, "2.5", MeanScore(playersWithScores(1, 4)).String())
	check.Equal(t, "-1", MeanScore(playersWithScores(-3, 1)).String())
}
