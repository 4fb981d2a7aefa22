package core

import "sort"

// Samples is the PhaseSampler output: one snapshot per phase, plus the terminal snapshot if any.
type Samples []Snapshot

// HasFinal reports whether the trailing sample is the game-over snapshot.
func (s Samples) HasFinal() bool {
	return len(s) > 0 && s[len(s)-1].IsGameOver
}

// SamplePhases reduces a history to one representative snapshot per phase.
//
// For every distinct phase the first snapshot flagged IsPhaseStart is kept; later snapshots of
// the same phase are dropped even if they also claim to start it. The result is ordered by phase
// and, when the game has ended, the first game-over snapshot is appended once at the end.
//
// The samples are always computed. If the history contains a phase lower than one already seen,
// a *HistoryError wrapping ErrMalformedHistory is returned alongside them so the caller can
// report the producer bug.
func SamplePhases(history History) (Samples, error) {
	if len(history) == 0 {
		return Samples{}, nil
	}

	seen := make(map[int]bool)
	samples := make(Samples, 0)
	var final *Snapshot

	for i := range history {
		s := &history[i]
		if s.IsPhaseStart && !seen[s.Phase] {
			seen[s.Phase] = true
			samples = append(samples, *s)
		}
		if s.IsGameOver && final == nil {
			final = s
		}
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Phase < samples[j].Phase
	})

	if final != nil {
		samples = append(samples, *final)
	}

	return samples, CheckPhaseOrder(history)
}

// CheckPhaseOrder returns a *HistoryError for the first snapshot whose phase is lower than one
// seen before it, or nil when phases never decrease.
func CheckPhaseOrder(history History) error {
	if len(history) == 0 {
		return nil
	}
	maxPhase := history[0].Phase
	for i := 1; i < len(history); i++ {
		phase := history[i].Phase
		if phase < maxPhase {
			return &HistoryError{Index: i, Phase: phase, PreviousPhase: maxPhase, Reason: "phase went backwards"}
		}
		maxPhase = phase
	}
	return nil
}
