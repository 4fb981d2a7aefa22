// Package controller drives an external auction simulation one step at a time.
package controller

import (
	"context"

	"github.com/cloudx-io/auctionviz/core"
)

// SimulationGateway is the capability the controller needs from the simulation.
// The simulation owns all game rules; the gateway only exposes its state machine.
type SimulationGateway interface {
	// Initialize starts a new game with one agent kind per player.
	Initialize(ctx context.Context, playerCount int, kinds []string) error

	// CurrentState returns the latest snapshot, or nil before a game was started.
	CurrentState(ctx context.Context) (*core.Snapshot, error)

	// Advance moves the simulation forward by one turn.
	Advance(ctx context.Context) (*core.Snapshot, error)

	// SubmitDecision resolves a pending human decision.
	SubmitDecision(ctx context.Context, decision core.Resources) (*core.Snapshot, error)

	// History returns every snapshot recorded so far, oldest first.
	History(ctx context.Context) (core.History, error)

	// AvailableAgentKinds lists the agent kinds Initialize accepts.
	AvailableAgentKinds(ctx context.Context) ([]string, error)
}

// DecisionSource supplies the human player's bid when the simulation is waiting for one.
// This interface enables dependency injection for UI-driven and scripted decisions.
type DecisionSource interface {
	Decide(ctx context.Context, state *core.Snapshot) (core.Resources, error)
}

// DecisionFunc adapts a plain function to DecisionSource.
type DecisionFunc func(ctx context.Context, state *core.Snapshot) (core.Resources, error)

// Decide calls f.
func (f DecisionFunc) Decide(ctx context.Context, state *core.Snapshot) (core.Resources, error) {
	return f(ctx, state)
}

// StaticDecision always answers with the same resources.
type StaticDecision core.Resources

// Decide returns the fixed decision.
func (d StaticDecision) Decide(context.Context, *core.Snapshot) (core.Resources, error) {
	return core.Resources(d), nil
}

// SuggestedDecision answers with the current highest bid, which is how the human input is
// pre-filled. It passes when no auction is running.
type SuggestedDecision struct{}

// Decide returns the active auction's maximum bid.
func (SuggestedDecision) Decide(_ context.Context, state *core.Snapshot) (core.Resources, error) {
	return state.SuggestedBid(), nil
}

// passDecision resolves waiting states during skips.
var passDecision DecisionSource = StaticDecision(core.Pass)
