package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/tilewave/internal/collapse"
	"github.com/samdwyer/tilewave/internal/telemetry"
	"github.com/samdwyer/tilewave/internal/ui"
	"github.com/samdwyer/tilewave/internal/world"
)

// Generation is one seeded run of the solver.
type Generation struct {
	Seed         int64
	SeedX, SeedY int // position of the forced wall
	Result       *collapse.Result
}

// Generate builds a grid, seeds one wall and runs the solver. On a fatal run
// error the partial generation is returned together with the error.
func Generate(ctx context.Context, cfg Config, log logrus.FieldLogger) (*Generation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("app")
	ctx, span := tracer.Start(ctx, "app.generate")
	defer span.End()

	seed := cfg.resolveSeed()
	span.SetAttributes(attribute.Int64("generate.seed", seed))

	grid, err := world.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	picker := collapse.NewRandPicker(rand.New(rand.NewSource(seed)))
	solver := collapse.New(grid, picker,
		collapse.WithRounds(cfg.Rounds),
		collapse.WithEdgeGuard(cfg.EdgeGuard),
		collapse.WithLogger(log.WithField("seed", seed)),
	)

	x, y, err := solver.Seed()
	if err != nil {
		return nil, fmt.Errorf("failed to seed grid: %w", err)
	}
	span.SetAttributes(attribute.Int("generate.seed_x", x), attribute.Int("generate.seed_y", y))

	result, err := solver.Run(ctx)
	gen := &Generation{Seed: seed, SeedX: x, SeedY: y, Result: result}
	if err != nil {
		return gen, fmt.Errorf("generation with seed %d failed: %w", seed, err)
	}
	return gen, nil
}

// Run generates once and writes the grid as text. Nothing is written when the
// run fails; the returned error names the failing round and cell.
func Run(ctx context.Context, cfg Config, out io.Writer, log logrus.FieldLogger) error {
	gen, err := Generate(ctx, cfg, log)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"seed":      gen.Seed,
		"seed_x":    gen.SeedX,
		"seed_y":    gen.SeedY,
		"collapsed": gen.Result.Counts.Collapsed,
	}).Info("rendering grid")

	return ui.RenderText(out, gen.Result.Grid, ui.TextOptions{Color: cfg.Color})
}
