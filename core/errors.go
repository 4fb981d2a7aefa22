package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned when the controller is driven before a game exists.
	ErrNotInitialized = errors.New("simulation not initialized: start a game first")

	// ErrMalformedHistory marks a history that breaks the append-only ordering contract.
	// It signals a producer bug, not a recoverable condition.
	ErrMalformedHistory = errors.New("malformed history")
)

// HistoryError describes where a history broke its ordering contract.
type HistoryError struct {
	Index         int // position in the history
	Phase         int
	PreviousPhase int
	Reason        string
}

func (e *HistoryError) Error() string {
	return fmt.Sprintf("%s at snapshot %d: %s (phase %d after %d)",
		ErrMalformedHistory, e.Index, e.Reason, e.Phase, e.PreviousPhase)
}

// Unwrap lets errors.Is match ErrMalformedHistory.
func (e *HistoryError) Unwrap() error {
	return ErrMalformedHistory
}
