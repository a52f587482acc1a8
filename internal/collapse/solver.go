// Package collapse implements a minimal wave-function-collapse solver: pick a
// minimum-entropy cell, collapse it, and narrow its immediate neighbours.
package collapse

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/tilewave/internal/telemetry"
	"github.com/samdwyer/tilewave/internal/world"
)

// DefaultRounds is smaller than the default 30x30 grid's cell count,
// so a default run leaves part of the grid unresolved.
const DefaultRounds = 600

// Outcome classifies how a run ended.
type Outcome int

const (
	// OutcomeCompleted means every round ran.
	OutcomeCompleted Outcome = iota
	// OutcomeStalled means no candidate cell was left to collapse.
	OutcomeStalled
	// OutcomeContradicted means a chosen cell had an empty possibility set.
	OutcomeContradicted
	// OutcomeAborted means the run stopped for any other reason (cancellation, picker failure).
	OutcomeAborted
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeStalled:
		return "stalled"
	case OutcomeContradicted:
		return "contradicted"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// OutcomeOf maps a run error to its outcome.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeCompleted
	case errors.Is(err, ErrSelectionExhausted):
		return OutcomeStalled
	case errors.Is(err, ErrContradiction):
		return OutcomeContradicted
	default:
		return OutcomeAborted
	}
}

// Step describes a single completed round.
type Step struct {
	Round   int
	Entropy int
	X, Y    int
	Kind    world.TileKind
	Edges   []Edge
}

// Result is the state of the grid after a run.
type Result struct {
	Grid    *world.Grid
	Rounds  int // rounds completed without error
	Outcome Outcome
	Counts  world.Counts
}

// Option configures a Solver.
type Option func(*Solver)

// WithRounds sets the fixed round budget.
func WithRounds(n int) Option {
	return func(s *Solver) { s.rounds = n }
}

// WithEdgeGuard selects how the top and left neighbours are guarded.
func WithEdgeGuard(g EdgeGuard) Option {
	return func(s *Solver) { s.guard = g }
}

// WithLogger sets the logger used for per-round and failure messages.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Solver) { s.log = log }
}

// WithTracer overrides the tracer used for the run span.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Solver) { s.tracer = tracer }
}

// WithObserver registers a callback invoked after every successful round.
func WithObserver(fn func(Step)) Option {
	return func(s *Solver) { s.observer = fn }
}

// Solver owns a grid and mutates it round by round. It is not safe for
// concurrent use.
type Solver struct {
	grid     *world.Grid
	picker   Picker
	rounds   int
	guard    EdgeGuard
	log      logrus.FieldLogger
	tracer   trace.Tracer
	observer func(Step)
}

// New creates a solver over grid drawing every random choice from picker.
func New(grid *world.Grid, picker Picker, opts ...Option) *Solver {
	s := &Solver{
		grid:   grid,
		picker: picker,
		rounds: DefaultRounds,
		guard:  GuardReference,
		log:    logrus.StandardLogger(),
		tracer: telemetry.Tracer("collapse"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns the grid being solved.
func (s *Solver) Grid() *world.Grid {
	return s.grid
}

// Seed forces one uniformly chosen cell to Wall. Nothing is propagated from it.
func (s *Solver) Seed() (int, int, error) {
	x, err := s.picker.Pick(s.grid.Width)
	if err != nil {
		return 0, 0, err
	}
	y, err := s.picker.Pick(s.grid.Height)
	if err != nil {
		return 0, 0, err
	}
	s.SeedAt(x, y)
	return x, y, nil
}

// SeedAt forces the cell at (x, y) to Wall.
func (s *Solver) SeedAt(x, y int) {
	s.grid.Set(x, y, world.NewCollapsedCell(x, y, world.Wall))
	s.log.WithFields(logrus.Fields{"x": x, "y": y}).Debug("seeded wall")
}

// Step runs one round: select a minimum-entropy cell, collapse it and
// propagate to its neighbours. Failures are returned as *RoundError.
func (s *Solver) Step(round int) (Step, error) {
	entropy := LowestEntropy(s.grid)

	cell, err := selectAt(s.grid, s.picker, entropy)
	if err != nil {
		return Step{}, &RoundError{Round: round, X: -1, Y: -1, Err: err}
	}

	kind, err := Collapse(s.grid, s.picker, cell.X, cell.Y)
	if err != nil {
		return Step{}, &RoundError{Round: round, X: cell.X, Y: cell.Y, Err: err}
	}

	step := Step{
		Round:   round,
		Entropy: entropy,
		X:       cell.X,
		Y:       cell.Y,
		Kind:    kind,
		Edges:   Propagate(s.grid, cell.X, cell.Y, kind, s.guard),
	}

	s.log.WithFields(logrus.Fields{
		"round":   round,
		"x":       cell.X,
		"y":       cell.Y,
		"kind":    kind.String(),
		"entropy": entropy,
	}).Debug("collapsed cell")

	if s.observer != nil {
		s.observer(step)
	}
	return step, nil
}

// Run executes the fixed round budget. It does not seed the grid; call Seed
// or SeedAt first. On failure the partial result is returned with the error.
func (s *Solver) Run(ctx context.Context) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "collapse.run")
	defer span.End()

	startTime := time.Now()
	result := &Result{Grid: s.grid}

	var runErr error
	for round := 0; round < s.rounds; round++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		if _, err := s.Step(round); err != nil {
			runErr = err
			break
		}
		result.Rounds = round + 1
	}

	result.Outcome = OutcomeOf(runErr)
	result.Counts = s.grid.Counts()

	span.SetAttributes(
		attribute.Int("grid.width", s.grid.Width),
		attribute.Int("grid.height", s.grid.Height),
		attribute.Int("collapse.rounds_planned", s.rounds),
		attribute.Int("collapse.rounds_done", result.Rounds),
		attribute.String("collapse.outcome", result.Outcome.String()),
		attribute.String("collapse.edge_guard", s.guard.String()),
		attribute.Int("cells.collapsed", result.Counts.Collapsed),
		attribute.Int("cells.constrained", result.Counts.Constrained),
		attribute.Int("cells.unconstrained", result.Counts.Unconstrained),
		attribute.Int("cells.contradicted", result.Counts.Contradicted),
		attribute.Int64("collapse.duration_ms", time.Since(startTime).Milliseconds()),
	)

	fields := logrus.Fields{
		"rounds":    result.Rounds,
		"outcome":   result.Outcome.String(),
		"collapsed": result.Counts.Collapsed,
	}
	if runErr != nil {
		span.RecordError(runErr)
		span.SetStatus(codes.Error, runErr.Error())
		s.log.WithFields(fields).WithError(runErr).Warn("generation failed")
		return result, runErr
	}

	s.log.WithFields(fields).Info("generation finished")
	return result, nil
}
