package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cloudx-io/auctionviz/core"
)

var (
	// ErrInvalidPlayers is returned by Initialize when the agent kinds do not match the player count.
	ErrInvalidPlayers = errors.New("invalid player setup")

	// ErrNoSnapshot is returned when the gateway acknowledges a mutation without a snapshot.
	ErrNoSnapshot = errors.New("gateway returned no snapshot")
)

// StepController advances the simulation one turn, one round or one phase at a time.
//
// At most one gateway mutation is in flight per controller: Step, the skip operations and
// Initialize all hold a single worker slot while they run. Callers blocked on the slot give
// up when their context is done.
type StepController struct {
	gateway   SimulationGateway
	decisions DecisionSource
	logger    *slog.Logger
	sessionID string

	// slot is a one-element semaphore guarding gateway mutations
	slot chan struct{}
}

// Option configures a StepController.
type Option func(*StepController)

// WithDecisionSource sets where single steps get the human decision from.
// A nil source keeps the default, which passes.
func WithDecisionSource(source DecisionSource) Option {
	return func(c *StepController) {
		if source != nil {
			c.decisions = source
		}
	}
}

// WithLogger sets the structured logger. A nil logger keeps the default, which discards.
func WithLogger(logger *slog.Logger) Option {
	return func(c *StepController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a controller over gateway.
func New(gateway SimulationGateway, opts ...Option) *StepController {
	c := &StepController{
		gateway:   gateway,
		decisions: passDecision,
		logger:    slog.New(slog.DiscardHandler),
		sessionID: uuid.NewString(),
		slot:      make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionID identifies this controller in log lines.
func (c *StepController) SessionID() string {
	return c.sessionID
}

// Initialize starts a new game. kinds must hold one agent kind per player.
func (c *StepController) Initialize(ctx context.Context, playerCount int, kinds []string) error {
	if playerCount <= 0 {
		return fmt.Errorf("%w: player count must be positive, got %d", ErrInvalidPlayers, playerCount)
	}
	if len(kinds) != playerCount {
		return fmt.Errorf("%w: %d agent kinds for %d players", ErrInvalidPlayers, len(kinds), playerCount)
	}

	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()

	if err := c.gateway.Initialize(ctx, playerCount, kinds); err != nil {
		return fmt.Errorf("initialize simulation: %w", err)
	}
	c.logger.Info("game initialized", "session", c.sessionID, "players", playerCount, "kinds", kinds)
	return nil
}

// AvailableAgentKinds lists the agent kinds the simulation accepts.
func (c *StepController) AvailableAgentKinds(ctx context.Context) ([]string, error) {
	kinds, err := c.gateway.AvailableAgentKinds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agent kinds: %w", err)
	}
	return kinds, nil
}

// State returns the current snapshot, or core.ErrNotInitialized before a game was started.
func (c *StepController) State(ctx context.Context) (*core.Snapshot, error) {
	state, err := c.gateway.CurrentState(ctx)
	if err != nil {
		return nil, notInitialized(err, "read current state")
	}
	if state == nil {
		return nil, core.ErrNotInitialized
	}
	return state, nil
}

// History returns the recorded snapshots, oldest first.
func (c *StepController) History(ctx context.Context) (core.History, error) {
	history, err := c.gateway.History(ctx)
	if err != nil {
		return nil, notInitialized(err, "read history")
	}
	return history, nil
}

// Report builds the analytics report over the current history.
func (c *StepController) Report(ctx context.Context) (*core.Report, error) {
	history, err := c.History(ctx)
	if err != nil {
		return nil, err
	}
	return core.BuildReport(history)
}

// Step performs exactly one gateway mutation.
//
// If the simulation is waiting for the human, the configured DecisionSource is asked for a
// bid and it is submitted; otherwise the simulation is advanced. The resulting snapshot is
// returned.
func (c *StepController) Step(ctx context.Context) (*core.Snapshot, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()

	return c.step(ctx, c.decisions)
}

// SkipUntilRoundChange steps until the round differs from the round reached by the first
// step, or until no auction is active. Waiting states are resolved with core.Pass.
func (c *StepController) SkipUntilRoundChange(ctx context.Context) (*core.Snapshot, error) {
	return c.skip(ctx, "round", func(s *core.Snapshot) int { return s.Round })
}

// SkipUntilPhaseChange steps until the phase differs from the phase reached by the first
// step, or until no auction is active. Waiting states are resolved with core.Pass.
func (c *StepController) SkipUntilPhaseChange(ctx context.Context) (*core.Snapshot, error) {
	return c.skip(ctx, "phase", func(s *core.Snapshot) int { return s.Phase })
}

// skip runs the shared skip loop. If stepping fails or ctx is done part way, the last
// snapshot reached is returned together with the error.
func (c *StepController) skip(ctx context.Context, unit string, key func(*core.Snapshot) int) (*core.Snapshot, error) {
	if err := c.acquire(ctx); err != nil {
		return nil, err
	}
	defer c.release()

	state, err := c.step(ctx, passDecision)
	if err != nil {
		return nil, err
	}

	target := key(state)
	steps := 1
	for key(state) == target && state.HasActiveAuction() {
		if err := ctx.Err(); err != nil {
			c.logger.Info("skip interrupted", "session", c.sessionID, "until", unit, "steps", steps, "error", err)
			return state, err
		}
		next, err := c.step(ctx, passDecision)
		if err != nil {
			return state, err
		}
		state = next
		steps++
	}

	c.logger.Info("skip finished",
		"session", c.sessionID,
		"until", unit,
		"phase", state.Phase,
		"round", state.Round,
		"steps", steps,
	)
	return state, nil
}

// step is Step without the worker slot.
func (c *StepController) step(ctx context.Context, decisions DecisionSource) (*core.Snapshot, error) {
	state, err := c.gateway.CurrentState(ctx)
	if err != nil {
		return nil, notInitialized(err, "read current state")
	}
	if state == nil {
		return nil, core.ErrNotInitialized
	}

	var next *core.Snapshot
	if state.IsWaitingForHuman {
		decision, err := decisions.Decide(ctx, state)
		if err != nil {
			return nil, fmt.Errorf("decide: %w", err)
		}
		next, err = c.gateway.SubmitDecision(ctx, decision)
		if err != nil {
			return nil, fmt.Errorf("submit decision %v: %w", decision, err)
		}
		c.logger.Debug("decision submitted", "session", c.sessionID, "decision", decision[:])
	} else {
		next, err = c.gateway.Advance(ctx)
		if err != nil {
			return nil, fmt.Errorf("advance: %w", err)
		}
	}
	if next == nil {
		return nil, ErrNoSnapshot
	}

	c.logger.Debug("step",
		"session", c.sessionID,
		"phase", next.Phase,
		"round", next.Round,
		"turn", next.Turn,
		"waiting_human", next.IsWaitingForHuman,
		"game_over", next.IsGameOver,
	)
	return next, nil
}

// acquire takes the worker slot, giving up when ctx is done.
func (c *StepController) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case c.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *StepController) release() {
	<-c.slot
}

// notInitialized keeps core.ErrNotInitialized recognisable and wraps everything else.
func notInitialized(err error, op string) error {
	if errors.Is(err, core.ErrNotInitialized) {
		return core.ErrNotInitialized
	}
	return fmt.Errorf("%s: %w", op, err)
}
