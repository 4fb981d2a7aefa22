package replay

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/cloudx-io/auctionviz/core"
)

var (
	// ErrEndOfRecording is returned when advancing past the last snapshot of an unfinished game.
	ErrEndOfRecording = errors.New("end of recording")

	// ErrDecisionRequired is returned by Advance while the recording waits for the human.
	ErrDecisionRequired = errors.New("recording is waiting for a human decision")

	// ErrNoDecisionPending is returned by SubmitDecision when nothing waits for the human.
	ErrNoDecisionPending = errors.New("no human decision pending")

	// ErrPlayerCountMismatch is returned by Initialize when the recording was played by a
	// different number of players.
	ErrPlayerCountMismatch = errors.New("player count does not match recording")
)

// Gateway plays a Recording back through the simulation gateway contract.
//
// Advance and SubmitDecision both move to the next recorded snapshot; the submitted decisions
// are kept for inspection but cannot change what was recorded. Once a finished game reaches
// its terminal snapshot, further mutations keep returning it.
type Gateway struct {
	mu        sync.RWMutex
	recording *Recording
	pos       int // -1 until Initialize
	gameID    string
	decisions []core.Resources
}

// NewGateway creates a gateway over rec. Initialize must be called before stepping.
func NewGateway(rec *Recording) *Gateway {
	return &Gateway{
		recording: rec,
		pos:       -1,
		decisions: make([]core.Resources, 0),
	}
}

// Initialize rewinds the recording to its first snapshot and starts a new game ID.
func (g *Gateway) Initialize(ctx context.Context, playerCount int, kinds []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(g.recording.History) == 0 {
		return fmt.Errorf("%w: recording holds no snapshots", ErrEndOfRecording)
	}
	if recorded := g.recording.PlayerCount(); recorded != playerCount {
		return fmt.Errorf("%w: recorded %d, requested %d", ErrPlayerCountMismatch, recorded, playerCount)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.pos = 0
	g.gameID = g.recording.GameID
	if g.gameID == "" {
		g.gameID = uuid.NewString()
	}
	g.decisions = make([]core.Resources, 0)
	return nil
}

// CurrentState returns the snapshot at the cursor.
func (g *Gateway) CurrentState(ctx context.Context) (*core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.pos < 0 {
		return nil, core.ErrNotInitialized
	}
	return g.snapshotAt(g.pos), nil
}

// Advance moves to the next snapshot unless the recording waits for the human.
func (g *Gateway) Advance(ctx context.Context) (*core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pos < 0 {
		return nil, core.ErrNotInitialized
	}
	if g.recording.History[g.pos].IsWaitingForHuman {
		return nil, ErrDecisionRequired
	}
	return g.next()
}

// SubmitDecision records the decision and moves to the next snapshot.
func (g *Gateway) SubmitDecision(ctx context.Context, decision core.Resources) (*core.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.pos < 0 {
		return nil, core.ErrNotInitialized
	}
	if !g.recording.History[g.pos].IsWaitingForHuman {
		return nil, ErrNoDecisionPending
	}
	g.decisions = append(g.decisions, decision)
	return g.next()
}

// History returns the snapshots visited so far, oldest first.
func (g *Gateway) History(ctx context.Context) (core.History, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.pos < 0 {
		return nil, core.ErrNotInitialized
	}
	return append(core.History(nil), g.recording.History[:g.pos+1]...), nil
}

// AvailableAgentKinds lists the agent kinds the recording was played with.
func (g *Gateway) AvailableAgentKinds(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.recording.AgentKinds(), nil
}

// GameID identifies the current playback; empty before Initialize.
func (g *Gateway) GameID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.gameID
}

// Decisions returns the decisions submitted since Initialize.
func (g *Gateway) Decisions() []core.Resources {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]core.Resources(nil), g.decisions...)
}

// Remaining returns how many recorded snapshots lie ahead of the cursor.
func (g *Gateway) Remaining() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.pos < 0 {
		return len(g.recording.History)
	}
	return len(g.recording.History) - 1 - g.pos
}

// next advances the cursor. Caller holds the write lock.
func (g *Gateway) next() (*core.Snapshot, error) {
	last := len(g.recording.History) - 1
	if g.pos == last {
		if g.recording.History[last].IsGameOver {
			return g.snapshotAt(last), nil
		}
		return nil, ErrEndOfRecording
	}
	g.pos++
	return g.snapshotAt(g.pos), nil
}

// snapshotAt returns a shallow copy of snapshot i.
func (g *Gateway) snapshotAt(i int) *core.Snapshot {
	s := g.recording.History[i]
	return &s
}
