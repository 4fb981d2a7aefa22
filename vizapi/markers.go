package vizapi

// Marker is a long-lived score marker. The same *Marker represents a player for the whole
// session; each frame only moves it.
type Marker struct {
	ID          string
	PlayerIndex int
	Text        string
	Left        float64
	Top         float64
	Color       string

	// Moves counts the frames in which the marker changed position
	Moves int
}

// MarkerTrack keeps one Marker per player index across frames.
// It is not safe for concurrent use.
type MarkerTrack struct {
	markers map[int]*Marker
}

// NewMarkerTrack creates an empty track.
func NewMarkerTrack() *MarkerTrack {
	return &MarkerTrack{markers: make(map[int]*Marker)}
}

// Apply updates the markers in place from a score-line view and returns them in view order.
// Markers for players seen for the first time are created.
func (t *MarkerTrack) Apply(view ScoreLineView) []*Marker {
	out := make([]*Marker, 0, len(view.Markers))
	for _, v := range view.Markers {
		m, ok := t.markers[v.PlayerIndex]
		if !ok {
			m = &Marker{ID: v.ID, PlayerIndex: v.PlayerIndex, Left: v.Left, Top: v.Top}
			t.markers[v.PlayerIndex] = m
		}
		if m.Left != v.Left || m.Top != v.Top {
			m.Moves++
		}
		m.Text = v.Text
		m.Left = v.Left
		m.Top = v.Top
		m.Color = v.Color
		out = append(out, m)
	}
	return out
}

// Get returns the marker of a player, or nil if none was created yet.
func (t *MarkerTrack) Get(playerIndex int) *Marker {
	return t.markers[playerIndex]
}

// Len returns the number of markers on the track.
func (t *MarkerTrack) Len() int {
	return len(t.markers)
}
