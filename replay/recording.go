// Package replay plays back a recorded game as a simulation gateway.
package replay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"

	"github.com/cloudx-io/auctionviz/core"
)

// Format is a recording encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// Recording is a recorded game: the agent kinds it was played with and every snapshot the
// simulation emitted, oldest first.
type Recording struct {
	GameID  string       `json:"game_id,omitempty"`
	Kinds   []string     `json:"kinds,omitempty"`
	History core.History `json:"history"`
}

// PlayerCount returns the number of players of the first snapshot.
func (r *Recording) PlayerCount() int {
	if len(r.History) == 0 {
		return 0
	}
	return len(r.History[0].Players)
}

// AgentKinds returns the recorded kinds, falling back to the distinct player names of the
// first snapshot.
func (r *Recording) AgentKinds() []string {
	if len(r.Kinds) > 0 {
		return append([]string(nil), r.Kinds...)
	}
	kinds := make([]string, 0)
	if len(r.History) == 0 {
		return kinds
	}
	seen := make(map[string]bool)
	for _, p := range r.History[0].Players {
		if !seen[p.Name] {
			seen[p.Name] = true
			kinds = append(kinds, p.Name)
		}
	}
	return kinds
}

// PlayerKinds returns one agent kind per player, as Initialize expects: the recorded kinds
// when there is one per player, otherwise the player names of the first snapshot.
func (r *Recording) PlayerKinds() []string {
	if len(r.Kinds) == r.PlayerCount() {
		return append([]string(nil), r.Kinds...)
	}
	kinds := make([]string, 0, r.PlayerCount())
	if len(r.History) > 0 {
		for _, p := range r.History[0].Players {
			kinds = append(kinds, p.Name)
		}
	}
	return kinds
}

// FormatFromPath picks the format from a file extension; anything but .cbor is JSON.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return FormatCBOR
	}
	return FormatJSON
}

// LoadFile reads and decodes a recording.
func LoadFile(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	rec, err := Decode(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rec, nil
}

// Decode parses a recording. Both a full Recording object and a bare snapshot array (the
// simulation's own history dump) are accepted.
func Decode(data []byte, format Format) (*Recording, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatCBOR:
		return decodeCBOR(data)
	default:
		return nil, fmt.Errorf("unknown recording format %q", format)
	}
}

func decodeJSON(data []byte) (*Recording, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty recording")
	}

	rec := &Recording{}
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &rec.History); err != nil {
			return nil, fmt.Errorf("parse history array: %w", err)
		}
		return rec, nil
	}
	if err := json.Unmarshal(trimmed, rec); err != nil {
		return nil, fmt.Errorf("parse recording: %w", err)
	}
	return rec, nil
}

func decodeCBOR(data []byte) (*Recording, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty recording")
	}

	rec := &Recording{}
	// Major type 4 (0x80-0x9f) is an array: a bare history
	if data[0]>>5 == 4 {
		if err := cbor.Unmarshal(data, &rec.History); err != nil {
			return nil, fmt.Errorf("parse history array: %w", err)
		}
		return rec, nil
	}
	if err := cbor.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("parse recording: %w", err)
	}
	return rec, nil
}

// Encode serialises a recording. CBOR output uses Core Deterministic Encoding.
func Encode(rec *Recording, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode recording: %w", err)
		}
		return data, nil
	case FormatCBOR:
		em, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return nil, fmt.Errorf("cbor encoder: %w", err)
		}
		data, err := em.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("encode recording: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown recording format %q", format)
	}
}

// WriteFile encodes a recording in the format implied by path.
func WriteFile(path string, rec *Recording) error {
	data, err := Encode(rec, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write recording: %w", err)
	}
	return nil
}
