package core

import "fmt"

const (
	// TotalPhases is the number of phases in a game.
	TotalPhases = 10
	// RoundsPerPlayer scales the rounds in a phase: each phase has RoundsPerPlayer * N rounds.
	RoundsPerPlayer = 3
)

// Progress tells how far a game has come.
type Progress struct {
	Phase       int
	TotalPhases int
	Round       int
	TotalRounds int
}

// ProgressOf derives the progress counters for a snapshot.
func ProgressOf(s *Snapshot) Progress {
	if s == nil {
		return Progress{TotalPhases: TotalPhases}
	}
	return Progress{
		Phase:       s.Phase,
		TotalPhases: TotalPhases,
		Round:       s.Round,
		TotalRounds: RoundsPerPlayer * len(s.Players),
	}
}

// PhaseFraction renders "phase/total", e.g. "3/10".
func (p Progress) PhaseFraction() string {
	return fmt.Sprintf("%d/%d", p.Phase, p.TotalPhases)
}

// RoundFraction renders "round/total", e.g. "5/12".
func (p Progress) RoundFraction() string {
	return fmt.Sprintf("%d/%d", p.Round, p.TotalRounds)
}
