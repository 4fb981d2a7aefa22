package core

import "sort"

// ScoreLineOptions tunes the score-line layout. All positions are percentages of the track.
type ScoreLineOptions struct {
	// MinSpan is the narrowest score domain shown. Closer scores are widened around their midpoint.
	MinSpan float64
	// Padding is reserved on each edge so extreme markers never clip.
	Padding float64
	// Baseline is the vertical offset of the first marker at a given score.
	Baseline float64
	// StackStep is added to the vertical offset for each further player tied at that score.
	StackStep float64
	// PaletteSize is the number of colour slots markers cycle through.
	PaletteSize int
}

// DefaultScoreLineOptions returns the layout constants of the live score track.
func DefaultScoreLineOptions() ScoreLineOptions {
	return ScoreLineOptions{
		MinSpan:     40,
		Padding:     5,
		Baseline:    50,
		StackStep:   16,
		PaletteSize: 8,
	}
}

// ScoreDomain is the score range mapped onto the track.
type ScoreDomain struct {
	RawMin     int
	RawMax     int
	DisplayMin float64
	DisplayMax float64
}

// Range returns the displayed width of the domain.
func (d ScoreDomain) Range() float64 {
	return d.DisplayMax - d.DisplayMin
}

// MarkerPlacement positions one player's marker on the track.
type MarkerPlacement struct {
	PlayerIndex           int
	Score                 int
	HorizontalPercent     float64
	VerticalOffsetPercent float64
	ColorSlot             int
}

// ScoreTick is a labelled mark on the track.
type ScoreTick struct {
	Value             int
	HorizontalPercent float64
}

// ScoreLine is the full layout for one snapshot.
type ScoreLine struct {
	Domain  ScoreDomain
	Markers []MarkerPlacement
	// Ticks holds the true rawMin and rawMax, projected like any other score, so the scale shows
	// real extremes even when the domain was widened.
	Ticks []ScoreTick

	padding float64
}

// Project maps a score onto the track.
func (l *ScoreLine) Project(v float64) float64 {
	return projectScore(v, l.Domain, l.padding)
}

// SelectDomain picks the displayed domain for a set of scores.
// Spreads narrower than minSpan are centred on their midpoint and widened to exactly minSpan.
func SelectDomain(scores []int, minSpan float64) ScoreDomain {
	if len(scores) == 0 {
		return ScoreDomain{}
	}

	rawMin, rawMax := scores[0], scores[0]
	for _, s := range scores[1:] {
		rawMin = min(rawMin, s)
		rawMax = max(rawMax, s)
	}

	d := ScoreDomain{
		RawMin:     rawMin,
		RawMax:     rawMax,
		DisplayMin: float64(rawMin),
		DisplayMax: float64(rawMax),
	}
	if float64(rawMax-rawMin) < minSpan {
		mid := float64(rawMin+rawMax) / 2
		d.DisplayMin = mid - minSpan/2
		d.DisplayMax = mid + minSpan/2
	}
	return d
}

func projectScore(v float64, d ScoreDomain, padding float64) float64 {
	span := d.Range()
	if span <= 0 {
		// Only reachable with MinSpan <= 0 and every score equal
		return 50
	}
	return padding + (v-d.DisplayMin)/span*(100-2*padding)
}

// LayoutScoreLine computes marker placements for the live score track.
//
// Players sharing an exact score are stacked: ordered by player index, each further player sits
// one StackStep below the previous one, starting at Baseline. Markers come back in input order.
// The function is pure; keeping marker identity stable across frames is the caller's job.
func LayoutScoreLine(players []PlayerView, opts ScoreLineOptions) *ScoreLine {
	line := &ScoreLine{
		Markers: make([]MarkerPlacement, 0, len(players)),
		Ticks:   make([]ScoreTick, 0, 2),
		padding: opts.Padding,
	}
	if len(players) == 0 {
		return line
	}

	scores := make([]int, len(players))
	for i, p := range players {
		scores[i] = p.Score
	}
	line.Domain = SelectDomain(scores, opts.MinSpan)

	for _, v := range []int{line.Domain.RawMin, line.Domain.RawMax} {
		line.Ticks = append(line.Ticks, ScoreTick{
			Value:             v,
			HorizontalPercent: line.Project(float64(v)),
		})
	}

	order := stackOrder(players)
	for _, p := range players {
		line.Markers = append(line.Markers, MarkerPlacement{
			PlayerIndex:           p.Index,
			Score:                 p.Score,
			HorizontalPercent:     line.Project(float64(p.Score)),
			VerticalOffsetPercent: opts.Baseline + float64(order[p.Index])*opts.StackStep,
			ColorSlot:             colorSlot(p.Index, opts.PaletteSize),
		})
	}

	return line
}

// stackOrder returns each player's 0-based position within its group of equal scores,
// keyed by player index.
func stackOrder(players []PlayerView) map[int]int {
	groups := make(map[int][]int)
	for _, p := range players {
		groups[p.Score] = append(groups[p.Score], p.Index)
	}

	order := make(map[int]int, len(players))
	for _, members := range groups {
		sort.Ints(members)
		for ord, idx := range members {
			order[idx] = ord
		}
	}
	return order
}

func colorSlot(index, paletteSize int) int {
	if paletteSize <= 0 {
		return 0
	}
	return index % paletteSize
}
