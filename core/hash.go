package core

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// snapshotEncMode encodes snapshots with Core Deterministic Encoding so equal snapshots
// always produce equal bytes.
var snapshotEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("core: invalid CBOR encoding options: %v", err))
	}
	return em
}()

// ComputeSnapshotHash fingerprints a single snapshot.
//
// Formula: SHA256(deterministic_cbor(snapshot))
func ComputeSnapshotHash(s Snapshot) (string, error) {
	data, err := snapshotEncMode.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash), nil
}

// ComputeHistoryHash fingerprints a whole history as a hash chain, so two histories share a
// hash only if they hold the same snapshots in the same order. Renderers use it to skip
// redraws when nothing was appended.
//
// Formula: h_0 = SHA256("")
//
//	h_i = SHA256(h_{i-1} + "|" + ComputeSnapshotHash(snapshot_i))
func ComputeHistoryHash(history History) (string, error) {
	chain := fmt.Sprintf("%x", sha256.Sum256(nil))
	for i := range history {
		snapshotHash, err := ComputeSnapshotHash(history[i])
		if err != nil {
			return "", fmt.Errorf("snapshot %d: %w", i, err)
		}
		data := fmt.Sprintf("%s|%s", chain, snapshotHash)
		chain = fmt.Sprintf("%x", sha256.Sum256([]byte(data)))
	}
	return chain, nil
}
