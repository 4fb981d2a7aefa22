package core

// ResourceKinds is the number of coin colours (red, green, blue).
const ResourceKinds = 3

// Resources is a per-colour coin tuple: [red, green, blue].
type Resources [ResourceKinds]int

// Pass is the zero tuple. Submitting it as a decision means "drop out of this auction".
var Pass = Resources{}

// Sum collapses the tuple to a single scalar.
func (r Resources) Sum() int {
	return r[0] + r[1] + r[2]
}

// IsZero reports whether every component is zero.
func (r Resources) IsZero() bool {
	return r == Pass
}

// Jewel is the item being auctioned in the current round.
type Jewel struct {
	Point  int       `json:"Point"`
	Income Resources `json:"Income"`
}

// Auction is the open bidding sub-round. A nil *Auction on a Snapshot means no bidding is open.
type Auction struct {
	MaxPlayer int       `json:"MaxPlayer"` // -1 when nobody has bid yet
	MaxValue  Resources `json:"MaxValue"`
}

// PlayerView is one player's state inside a Snapshot.
// Index is stable for the whole game and matches the player's position in Snapshot.Players.
type PlayerView struct {
	Index      int       `json:"Index"`
	Name       string    `json:"Name"`
	Rank       int       `json:"Rank"`
	Score      int       `json:"Score"`
	Resources  Resources `json:"Moneys"`
	Income     Resources `json:"Income"`
	CurrentBid []int     `json:"CurrentBid,omitempty"`
	HasPassed  bool      `json:"HasPassed"`
}

// Snapshot is an immutable state record emitted by the simulation after each step.
// Field names on the wire follow the simulation's own state dump so recordings decode as-is.
type Snapshot struct {
	Phase             int          `json:"Phase"`
	Round             int          `json:"Round"`
	Turn              int          `json:"Turn"`
	IsPhaseStart      bool         `json:"PhaseStart"`
	IsGameOver        bool         `json:"GameOver"`
	IsWaitingForHuman bool         `json:"WaitingHuman"`
	Jewel             Jewel        `json:"Jewel"`
	ActiveAuction     *Auction     `json:"Auction"`
	Players           []PlayerView `json:"Players"`
}

// HasActiveAuction reports whether a bidding sub-round is open.
func (s *Snapshot) HasActiveAuction() bool {
	return s != nil && s.ActiveAuction != nil
}

// SuggestedBid is the value the human input is pre-filled with: the current highest bid,
// or Pass when no auction is open.
func (s *Snapshot) SuggestedBid() Resources {
	if !s.HasActiveAuction() {
		return Pass
	}
	return s.ActiveAuction.MaxValue
}

// History is the append-only, ordered log of every Snapshot produced so far.
type History []Snapshot

// Last returns the most recent snapshot, or nil for an empty history.
func (h History) Last() *Snapshot {
	if len(h) == 0 {
		return nil
	}
	return &h[len(h)-1]
}
