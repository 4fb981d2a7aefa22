package core

import (
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestProgressOf(t *testing.T) {
	s := auctionSnapshot(3, 5, playersWithScores(0, 0, 0, 0))

	p := ProgressOf(&s)

	check.Equal(t, 3, p.Phase)
	check.Equal(t, 10, p.TotalPhases)
	check.Equal(t, 5, p.Round)
	check.Equal(t, 12, p.TotalRounds)
	check.Equal(t, "3/10", p.PhaseFraction())
	check.Equal(t, "5/12", p.RoundFraction())
}

func TestProgressOf_Nil(t *testing.T) {
	p := ProgressOf(nil)

	check.Equal(t, "0/10", p.PhaseFraction())
	check.Equal(t, "0/0", p.RoundFraction())
}

func TestResources(t *testing.T) {
	check.Equal(t, 6, Resources{1, 2, 3}.Sum())
	check.True(t, Pass.IsZero())
	check.False(t, Resources{0, 0, 1}.IsZero())
}
