package controller

import (
	"context"

	"github.com/cloudx-io/auctionviz/core"
)

// scriptedGateway walks through a fixed list of snapshots. Every mutation moves one entry
// forward; the last entry repeats once the script is exhausted.
type scriptedGateway struct {
	script []core.Snapshot
	pos    int // -1 until Initialize

	advances  int
	decisions []core.Resources
	inits     int

	// afterMutation runs after every Advance or SubmitDecision
	afterMutation func(mutations int)
	stateErr      error
}

func newScriptedGateway(script ...core.Snapshot) *scriptedGateway {
	return &scriptedGateway{script: script, pos: -1}
}

// started returns a gateway already positioned on the first scripted snapshot.
func started(script ...core.Snapshot) *scriptedGateway {
	g := newScriptedGateway(script...)
	g.pos = 0
	return g
}

func (g *scriptedGateway) Initialize(_ context.Context, _ int, _ []string) error {
	g.inits++
	g.pos = 0
	return nil
}

func (g *scriptedGateway) CurrentState(context.Context) (*core.Snapshot, error) {
	if g.stateErr != nil {
		return nil, g.stateErr
	}
	if g.pos < 0 {
		return nil, nil
	}
	s := g.script[g.pos]
	return &s, nil
}

func (g *scriptedGateway) Advance(context.Context) (*core.Snapshot, error) {
	g.advances++
	return g.move(), nil
}

func (g *scriptedGateway) SubmitDecision(_ context.Context, decision core.Resources) (*core.Snapshot, error) {
	g.decisions = append(g.decisions, decision)
	return g.move(), nil
}

func (g *scriptedGateway) History(context.Context) (core.History, error) {
	if g.pos < 0 {
		return nil, core.ErrNotInitialized
	}
	return append(core.History(nil), g.script[:g.pos+1]...), nil
}

func (g *scriptedGateway) AvailableAgentKinds(context.Context) ([]string, error) {
	return []string{"Human", "Random", "Greedy"}, nil
}

func (g *scriptedGateway) mutations() int {
	return g.advances + len(g.decisions)
}

func (g *scriptedGateway) move() *core.Snapshot {
	if g.pos+1 < len(g.script) {
		g.pos++
	}
	if g.afterMutation != nil {
		g.afterMutation(g.mutations())
	}
	s := g.script[g.pos]
	return &s
}

// turn is a mid-auction snapshot of a two-player game.
func turn(phase, round, t int) core.Snapshot {
	return core.Snapshot{
		Phase:         phase,
		Round:         round,
		Turn:          t,
		ActiveAuction: &core.Auction{MaxPlayer: 1, MaxValue: core.Resources{2, 0, 1}},
		Players: []core.PlayerView{
			{Index: 0, Name: "you", Score: 3},
			{Index: 1, Name: "cpu", Score: 5},
		},
	}
}

// waiting is a turn where the simulation waits for the human.
func waiting(phase, round, t int) core.Snapshot {
	s := turn(phase, round, t)
	s.IsWaitingForHuman = true
	return s
}

// noAuction is a snapshot between auctions.
func noAuction(phase, round int) core.Snapshot {
	s := turn(phase, round, -1)
	s.ActiveAuction = nil
	return s
}

// over is the terminal snapshot.
func over() core.Snapshot {
	s := noAuction(11, 1)
	s.IsGameOver = true
	return s
}
