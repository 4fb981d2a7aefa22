package vizapi

import (
	"testing"

	"github.com/peterldowns/testy/assert"
	"github.com/peterldowns/testy/check"

	"github.com/cloudx-io/auctionviz/core"
)

func TestMarkerTrack_KeepsIdentityAcrossFrames(t *testing.T) {
	track := NewMarkerTrack()
	opts := core.DefaultScoreLineOptions()

	first := track.Apply(NewScoreLineView(core.LayoutScoreLine(players(0, 0), opts), DefaultPalette))
	assert.Equal(t, 2, len(first))
	check.Equal(t, "score-marker-1", first[1].ID)
	check.Equal(t, 66.0, first[1].Top)

	second := track.Apply(NewScoreLineView(core.LayoutScoreLine(players(0, 8), opts), DefaultPalette))
	assert.Equal(t, 2, len(second))

	// Same objects, moved in place
	check.True(t, first[0] == second[0])
	check.True(t, first[1] == second[1])
	check.Equal(t, 50.0, second[1].Top)
	check.Equal(t, "8", second[1].Text)
	check.Equal(t, 1, second[1].Moves)
	check.Equal(t, 2, track.Len())
}

func TestMarkerTrack_UnchangedFrameDoesNotMove(t *testing.T) {
	track := NewMarkerTrack()
	view := NewScoreLineView(core.LayoutScoreLine(players(3, 5), core.DefaultScoreLineOptions()), DefaultPalette)

	track.Apply(view)
	track.Apply(view)

	check.Equal(t, 0, track.Get(0).Moves)
	check.Nil(t, track.Get(7))
}
