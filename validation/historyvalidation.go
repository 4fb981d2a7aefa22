package validation

import (
	"errors"
	"fmt"

	"github.com/cloudx-io/auctionviz/core"
)

// ErrEmptyHistory is returned when there is nothing to validate.
var ErrEmptyHistory = errors.New("history is empty")

// ValidateHistory checks a recorded history against the simulation's ordering contract:
// - Phases never decrease
// - Rounds never decrease within a phase
// - Every snapshot has the same, non-zero number of players
// - Players are listed in index order
// - Every phase has exactly one phase-start snapshot
// - The simulation only waits for the human while an auction is open
// - Game-over snapshots come last and carry no auction
//
// Returns:
//   - HistoryValidationResult with detailed results (call result.IsValid() to check overall status)
//   - error if validation cannot be performed (empty history, encoding failure)
func ValidateHistory(history core.History) (*HistoryValidationResult, error) {
	if len(history) == 0 {
		return nil, ErrEmptyHistory
	}

	hash, err := core.ComputeHistoryHash(history)
	if err != nil {
		return nil, fmt.Errorf("fingerprint history: %w", err)
	}

	result := &HistoryValidationResult{
		SnapshotCount: len(history),
		HistoryHash:   hash,
	}

	result.PhaseOrderValid = validatePhaseOrder(history, result)
	result.RoundOrderValid = validateRoundOrder(history, result)
	result.PlayerCountValid = validatePlayerCount(history, result)
	result.PlayerIndexValid = validatePlayerIndex(history, result)
	result.PhaseStartValid = validatePhaseStarts(history, result)
	result.WaitingValid = validateWaiting(history, result)
	result.TerminalValid = validateTerminal(history, result)

	return result, nil
}

func validatePhaseOrder(history core.History, result *HistoryValidationResult) bool {
	if err := core.CheckPhaseOrder(history); err != nil {
		result.ValidationDetails = append(result.ValidationDetails, fmt.Sprintf("Phase order invalid: %v", err))
		return false
	}
	result.ValidationDetails = append(result.ValidationDetails, "Phase order validation passed")
	return true
}

func validateRoundOrder(history core.History, result *HistoryValidationResult) bool {
	for i := 1; i < len(history); i++ {
		prev, cur := history[i-1], history[i]
		if cur.IsGameOver || prev.Phase != cur.Phase {
			continue
		}
		if cur.Round < prev.Round {
			result.ValidationDetails = append(result.ValidationDetails,
				fmt.Sprintf("Round order invalid at snapshot %d: round %d after %d in phase %d", i, cur.Round, prev.Round, cur.Phase))
			return false
		}
	}
	result.ValidationDetails = append(result.ValidationDetails, "Round order validation passed")
	return true
}

func validatePlayerCount(history core.History, result *HistoryValidationResult) bool {
	expected := len(history[0].Players)
	if expected == 0 {
		result.ValidationDetails = append(result.ValidationDetails, "Player count invalid: first snapshot has no players")
		return false
	}
	for i, s := range history {
		if len(s.Players) != expected {
			result.ValidationDetails = append(result.ValidationDetails,
				fmt.Sprintf("Player count invalid at snapshot %d: %d players, expected %d", i, len(s.Players), expected))
			return false
		}
	}
	result.ValidationDetails = append(result.ValidationDetails, fmt.Sprintf("Player count validation passed: %d players", expected))
	return true
}

func validatePlayerIndex(history core.History, result *HistoryValidationResult) bool {
	for i, s := range history {
		for pos, p := range s.Players {
			if p.Index != pos {
				result.ValidationDetails = append(result.ValidationDetails,
					fmt.Sprintf("Player index invalid at snapshot %d: position %d holds index %d", i, pos, p.Index))
				return false
			}
		}
	}
	result.ValidationDetails = append(result.ValidationDetails, "Player index validation passed")
	return true
}

func validatePhaseStarts(history core.History, result *HistoryValidationResult) bool {
	starts := make(map[int]int)
	phases := make([]int, 0)
	for _, s := range history {
		if s.IsGameOver {
			continue
		}
		if _, ok := starts[s.Phase]; !ok {
			starts[s.Phase] = 0
			phases = append(phases, s.Phase)
		}
		if s.IsPhaseStart {
			starts[s.Phase]++
		}
	}

	valid := true
	for _, phase := range phases {
		switch n := starts[phase]; {
		case n == 0:
			result.ValidationDetails = append(result.ValidationDetails, fmt.Sprintf("Phase %d has no phase-start snapshot", phase))
			valid = false
		case n > 1:
			result.ValidationDetails = append(result.ValidationDetails, fmt.Sprintf("Phase %d has %d phase-start snapshots", phase, n))
			valid = false
		}
	}
	if valid {
		result.ValidationDetails = append(result.ValidationDetails, fmt.Sprintf("Phase start validation passed: %d phases", len(phases)))
	}
	return valid
}

func validateWaiting(history core.History, result *HistoryValidationResult) bool {
	for i, s := range history {
		if s.IsWaitingForHuman && !s.HasActiveAuction() {
			result.ValidationDetails = append(result.ValidationDetails,
				fmt.Sprintf("Waiting state invalid at snapshot %d: waiting for the human without an open auction", i))
			return false
		}
	}
	result.ValidationDetails = append(result.ValidationDetails, "Waiting state validation passed")
	return true
}

func validateTerminal(history core.History, result *HistoryValidationResult) bool {
	firstOver := -1
	for i, s := range history {
		if s.IsGameOver {
			if firstOver < 0 {
				firstOver = i
			}
			if s.HasActiveAuction() {
				result.ValidationDetails = append(result.ValidationDetails,
					fmt.Sprintf("Terminal snapshot %d still has an open auction", i))
				return false
			}
			continue
		}
		if firstOver >= 0 {
			result.ValidationDetails = append(result.ValidationDetails,
				fmt.Sprintf("Snapshot %d continues the game after game over at snapshot %d", i, firstOver))
			return false
		}
	}

	if firstOver < 0 {
		result.ValidationDetails = append(result.ValidationDetails, "Terminal validation passed: game still running")
	} else {
		result.ValidationDetails = append(result.ValidationDetails, fmt.Sprintf("Terminal validation passed: game over at snapshot %d", firstOver))
	}
	return true
}
