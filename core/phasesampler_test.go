package core

import (
	"errors"
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"
)

func TestSamplePhases_EmptyHistory(t *testing.T) {
	samples, err := SamplePhases(nil)

	check.NoError(t, err)
	check.NotNil(t, samples)
	check.Equal(t, 0, len(samples))
	check.False(t, samples.HasFinal())
}

func TestSamplePhases_OnePerPhasePlusFinal(t *testing.T) {
	p := playersWithScores(0, 0, 0)
	history := History{
		auctionSnapshot(1, 1, p), // initial snapshot is not a phase start
		phaseStart(1, p),
		auctionSnapshot(1, 1, p),
		auctionSnapshot(1, 2, p),
		phaseStart(2, playersWithScores(3, 0, 1)),
		auctionSnapshot(2, 1, p),
		phaseStart(3, playersWithScores(5, 2, 1)),
		auctionSnapshot(3, 9, p),
		gameOver(4, playersWithScores(8, 2, 4)),
	}

	samples, err := SamplePhases(history)

	check.NoError(t, err)
	assert.Equal(t, 4, len(samples))
	check.Equal(t, 1, samples[0].Phase)
	check.Equal(t, 2, samples[1].Phase)
	check.Equal(t, 3, samples[2].Phase)
	check.True(t, samples[3].IsGameOver)
	check.True(t, samples.HasFinal())
	check.Equal(t, 3, samples[1].Players[0].Score)
}

func TestSamplePhases_DuplicatePhaseStartKeepsFirst(t *testing.T) {
	history := History{
		phaseStart(1, playersWithScores(1, 0)),
		phaseStart(1, playersWithScores(9, 9)), // producer emitted a duplicate
		phaseStart(2, playersWithScores(2, 0)),
	}

	samples, err := SamplePhases(history)

	check.NoError(t, err)
	assert.Equal(t, 2, len(samples))
	check.Equal(t, 1, samples[0].Players[0].Score)
	check.Equal(t, 2, samples[1].Phase)
}

func TestSamplePhases_FinalAppendedOnce(t *testing.T) {
	p := playersWithScores(4, 2)
	history := History{
		phaseStart(1, p),
		gameOver(2, playersWithScores(7, 2)),
		gameOver(2, playersWithScores(7, 2)), // the simulation repeats the terminal record on extra steps
	}

	samples, err := SamplePhases(history)

	check.NoError(t, err)
	assert.Equal(t, 2, len(samples))
	check.True(t, samples[1].IsGameOver)
	check.Equal(t, 7, samples[1].Players[0].Score)
}

func TestSamplePhases_FinalThatAlsoStartsPhase(t *testing.T) {
	final := gameOver(2, playersWithScores(1))
	final.IsPhaseStart = true
	history := History{phaseStart(1, playersWithScores(0)), final}

	samples, err := SamplePhases(history)

	check.NoError(t, err)
	// Once as the phase-2 sample and once more as the terminal sample
	assert.Equal(t, 3, len(samples))
	check.Equal(t, 2, samples[1].Phase)
	check.True(t, samples[2].IsGameOver)
}

func TestSamplePhases_NoPhaseStarts(t *testing.T) {
	p := playersWithScores(0, 0)
	history := History{auctionSnapshot(1, 1, p), auctionSnapshot(1, 2, p)}

	samples, err := SamplePhases(history)

	check.NoError(t, err)
	check.Equal(t, 0, len(samples))
}

func TestSamplePhases_Deterministic(t *testing.T) {
	history := History{
		phaseStart(1, playersWithScores(0, 0)),
		phaseStart(2, playersWithScores(3, 1)),
		gameOver(3, playersWithScores(6, 1)),
	}

	first, err1 := SamplePhases(history)
	second, err2 := SamplePhases(history)

	check.NoError(t, err1)
	check.NoError(t, err2)
	check.Equal(t, first, second)
}

func TestSamplePhases_PhaseGoesBackwards(t *testing.T) {
	history := History{
		phaseStart(1, playersWithScores(0)),
		phaseStart(3, playersWithScores(2)),
		phaseStart(2, playersWithScores(1)),
	}

	samples, err := SamplePhases(history)

	check.Error(t, err)
	check.True(t, errors.Is(err, ErrMalformedHistory))

	var histErr *HistoryError
	assert.True(t, errors.As(err, &histErr))
	check.Equal(t, 2, histErr.Index)
	check.Equal(t, 2, histErr.Phase)
	check.Equal(t, 3, histErr.PreviousPhase)

	// Reported, not patched: the samples are still produced and sorted by phase
	assert.Equal(t, 3, len(samples))
	check.Equal(t, 1, samples[0].Phase)
	check.Equal(t, 2, samples[1].Phase)
	check.Equal(t, 3, samples[2].Phase)
}

func TestCheckPhaseOrder(t *testing.T) {
	p := playersWithScores(0)

	check.NoError(t, CheckPhaseOrder(nil))
	check.NoError(t, CheckPhaseOrder(History{auctionSnapshot(1, 1, p), auctionSnapshot(1, 2, p), auctionSnapshot(2, 1, p)}))

	err := CheckPhaseOrder(History{auctionSnapshot(2, 1, p), auctionSnapshot(1, 1, p)})
	check.True(t, errors.Is(err, ErrMalformedHistory))
}
