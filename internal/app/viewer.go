package app

import (
	"context"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/tilewave/internal/collapse"
	"github.com/samdwyer/tilewave/internal/tiledata"
	"github.com/samdwyer/tilewave/internal/ui"
	"github.com/samdwyer/tilewave/internal/world"
)

// Viewer shows generated grids on a terminal and regenerates on request.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	cfg      Config
	log      logrus.FieldLogger
	seeds    *rand.Rand
	grid     *world.Grid
	status   ui.Status
	state    State
	running  bool
}

// NewViewer opens the terminal and creates a viewer.
func NewViewer(cfg Config, log logrus.FieldLogger) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	tiles, err := tiledata.LoadTileSet()
	if err != nil {
		screen.Close()
		return nil, err
	}
	return NewViewerWithScreen(screen, tiles, cfg, log), nil
}

// NewViewerWithScreen creates a viewer drawing to an already initialized screen.
func NewViewerWithScreen(screen *ui.Screen, tiles *tiledata.TileSet, cfg Config, log logrus.FieldLogger) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, tiles),
		cfg:      cfg,
		log:      log,
		seeds:    rand.New(rand.NewSource(cfg.resolveSeed())),
		running:  true,
	}
}

// Run executes the viewer loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	v.regenerate(ctx)

	for v.running {
		v.renderer.Render(v.grid, v.status)
		v.handleInput(ctx)
	}

	v.screen.Close()
	return nil
}

// State returns what the viewer last generated.
func (v *Viewer) State() State {
	return v.state
}

// regenerate runs the solver once. The first run uses the configured seed,
// later runs draw seeds from the viewer's own source.
func (v *Viewer) regenerate(ctx context.Context) {
	cfg := v.cfg
	if v.grid != nil || cfg.Seed == 0 {
		cfg.Seed = v.seeds.Int63() + 1
	}

	gen, err := Generate(ctx, cfg, v.log)
	v.status = ui.Status{Seed: cfg.Seed, Err: err}

	if gen == nil {
		// Nothing ran; keep showing an empty grid of the right size.
		v.state = StateFailed
		v.status.Outcome = v.state.String()
		if v.grid == nil {
			v.grid, _ = world.NewGrid(max(cfg.Width, 1), max(cfg.Height, 1))
		}
		return
	}

	v.grid = gen.Result.Grid
	v.state = StateFor(gen.Result.Outcome)
	v.status.Rounds = gen.Result.Rounds
	v.status.Outcome = v.state.String()
}

// toggleEdgeGuard switches between the reference and exact edge guards.
func (v *Viewer) toggleEdgeGuard(ctx context.Context) {
	if v.cfg.EdgeGuard == collapse.GuardReference {
		v.cfg.EdgeGuard = collapse.GuardExact
	} else {
		v.cfg.EdgeGuard = collapse.GuardReference
	}
	v.log.WithField("edge_guard", v.cfg.EdgeGuard.String()).Info("edge guard changed")
	v.regenerate(ctx)
}

// handleInput processes a single input event.
func (v *Viewer) handleInput(ctx context.Context) {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// Screen finalized
		v.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'r', 'R':
			v.regenerate(ctx)
		case 'e', 'E':
			v.toggleEdgeGuard(ctx)
		}
	}
}
