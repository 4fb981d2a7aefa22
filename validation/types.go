package validation

// HistoryValidationResult contains the outcome of every history check
type HistoryValidationResult struct {
	SnapshotCount int
	HistoryHash   string

	PhaseOrderValid  bool
	RoundOrderValid  bool
	PlayerCountValid bool
	PlayerIndexValid bool
	PhaseStartValid  bool
	WaitingValid     bool
	TerminalValid    bool

	ValidationDetails []string
}

// IsValid returns true if all history checks passed
func (r *HistoryValidationResult) IsValid() bool {
	return r.PhaseOrderValid &&
		r.RoundOrderValid &&
		r.PlayerCountValid &&
		r.PlayerIndexValid &&
		r.PhaseStartValid &&
		r.WaitingValid &&
		r.TerminalValid
}
