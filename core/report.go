package core

// Report bundles the analytics derived from one history.
type Report struct {
	// Samples is the phase sampling the series were built from
	Samples Samples

	// Series holds the mean-centred score and per-phase income series
	Series *Series

	// Standings ranks the players of the terminal snapshot (nil while the game is running)
	Standings []PlayerRank

	// HistoryHash fingerprints the history the report was built from
	HistoryHash string

	// OrderErr is the MalformedHistory report from sampling, if any. The other fields are
	// still populated so the caller can show them next to the warning.
	OrderErr error
}

// BuildReport runs the analytics pipeline: sampling → series → standings → fingerprint.
//
// Processing flow:
//  1. Sample one snapshot per phase, plus the terminal snapshot
//  2. Build score and income series from the samples
//  3. Rank the players of the terminal snapshot, if the game is over
//  4. Fingerprint the history
//
// A phase-order violation does not abort the pipeline; it is carried in Report.OrderErr.
// Inconsistent player counts and encoding failures are returned as errors.
func BuildReport(history History) (*Report, error) {
	// Step 1: Sample phases
	samples, orderErr := SamplePhases(history)

	// Step 2: Build series
	series, err := BuildSeries(samples)
	if err != nil {
		return nil, err
	}

	// Step 3: Standings from the terminal sample
	var standings []PlayerRank
	if samples.HasFinal() {
		standings = FinalStandings(&samples[len(samples)-1])
	}

	// Step 4: Fingerprint
	hash, err := ComputeHistoryHash(history)
	if err != nil {
		return nil, err
	}

	return &Report{
		Samples:     samples,
		Series:      series,
		Standings:   standings,
		HistoryHash: hash,
		OrderErr:    orderErr,
	}, nil
}
