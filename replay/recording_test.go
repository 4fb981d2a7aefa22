package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/cloudx-io/auctionviz/core"
)

// A history dump as the simulation writes it: capitalised keys, Auction null between
// auctions, CurrentBid optional.
const bareHistoryJSON = `[
  {"Phase": 1, "Round": 1, "Turn": 0, "PhaseStart": true, "GameOver": false, "WaitingHuman": false,
   "Jewel": {"Point": 2, "Income": [0, 1, 0]},
   "Auction": {"MaxPlayer": -1, "MaxValue": [0, 0, 0]},
   "Players": [
     {"Index": 0, "Name": "Human", "Rank": 1, "Score": 0, "Moneys": [5, 5, 5], "Income": [1, 1, 1], "HasPassed": false},
     {"Index": 1, "Name": "Greedy", "Rank": 1, "Score": 0, "Moneys": [5, 5, 5], "Income": [1, 1, 1], "CurrentBid": [1, 0, 0], "HasPassed": false}
   ]},
  {"Phase": 11, "Round": 1, "Turn": -1, "PhaseStart": false, "GameOver": true, "WaitingHuman": false,
   "Jewel": {"Point": 0, "Income": [0, 0, 0]},
   "Auction": null,
   "Players": [
     {"Index": 0, "Name": "Human", "Rank": 2, "Score": 4, "Moneys": [2, 3, 5], "Income": [1, 2, 1], "HasPassed": true},
     {"Index": 1, "Name": "Greedy", "Rank": 1, "Score": 7, "Moneys": [1, 0, 5], "Income": [2, 1, 1], "HasPassed": false}
   ]}
]`

func TestDecode_BareHistoryJSON(t *testing.T) {
	rec, err := Decode([]byte(bareHistoryJSON), FormatJSON)
	assert.NoError(t, err)

	assert.Equal(t, 2, len(rec.History))
	first := rec.History[0]
	check.True(t, first.IsPhaseStart)
	check.Equal(t, core.Resources{0, 1, 0}, first.Jewel.Income)
	assert.NotNil(t, first.ActiveAuction)
	check.Equal(t, -1, first.ActiveAuction.MaxPlayer)
	check.Equal(t, []int{1, 0, 0}, first.Players[1].CurrentBid)
	check.Nil(t, first.Players[0].CurrentBid)

	final := rec.History[1]
	check.True(t, final.IsGameOver)
	check.Nil(t, final.ActiveAuction)
	check.Equal(t, core.Resources{2, 3, 5}, final.Players[0].Resources)
	check.Equal(t, 2, rec.PlayerCount())
	check.Equal(t, []string{"Human", "Greedy"}, rec.AgentKinds())
	check.Equal(t, []string{"Human", "Greedy"}, rec.PlayerKinds())
}

func TestDecode_RecordingObjectJSON(t *testing.T) {
	data := `{"game_id": "g-1", "kinds": ["Human", "Random"], "history": ` + bareHistoryJSON + `}`

	rec, err := Decode([]byte(data), FormatJSON)
	assert.NoError(t, err)

	check.Equal(t, "g-1", rec.GameID)
	check.Equal(t, []string{"Human", "Random"}, rec.AgentKinds())
	check.Equal(t, []string{"Human", "Random"}, rec.PlayerKinds())
	check.Equal(t, 2, len(rec.History))
}

func TestDecode_CBOR(t *testing.T) {
	rec, err := Decode([]byte(bareHistoryJSON), FormatJSON)
	assert.NoError(t, err)
	rec.Kinds = []string{"Human", "Greedy"}

	data, err := Encode(rec, FormatCBOR)
	assert.NoError(t, err)

	decoded, err := Decode(data, FormatCBOR)
	assert.NoError(t, err)
	check.Equal(t, rec.Kinds, decoded.Kinds)
	check.Equal(t, rec.History[1].Players, decoded.History[1].Players)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode([]byte("   "), FormatJSON)
	check.Error(t, err)

	_, err = Decode([]byte(`[{"Phase": "one"}]`), FormatJSON)
	check.Error(t, err)

	_, err = Decode(nil, FormatCBOR)
	check.Error(t, err)

	_, err = Decode([]byte("{}"), Format("yaml"))
	check.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	check.Equal(t, FormatCBOR, FormatFromPath("game.cbor"))
	check.Equal(t, FormatCBOR, FormatFromPath("/tmp/GAME.CBOR"))
	check.Equal(t, FormatJSON, FormatFromPath("game.json"))
	check.Equal(t, FormatJSON, FormatFromPath("game"))
}

func TestWriteFileAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	rec, err := Decode([]byte(bareHistoryJSON), FormatJSON)
	assert.NoError(t, err)

	for _, name := range []string{"game.json", "game.cbor"} {
		path := filepath.Join(dir, name)
		assert.NoError(t, WriteFile(path, rec))

		loaded, err := LoadFile(path)
		assert.NoError(t, err)
		check.Equal(t, 2, len(loaded.History))
		check.True(t, loaded.History[1].IsGameOver)
	}

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	check.Error(t, err)
}

func TestLoadFile_BareCBORHistory(t *testing.T) {
	rec, err := Decode([]byte(bareHistoryJSON), FormatJSON)
	assert.NoError(t, err)

	data, err := cbor.Marshal(rec.History)
	assert.NoError(t, err)
	path := filepath.Join(t.TempDir(), "dump.cbor")
	assert.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadFile(path)
	assert.NoError(t, err)
	check.Equal(t, 2, len(loaded.History))
	check.Equal(t, 7, loaded.History[1].Players[1].Score)
}
