package app

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/tilewave/internal/collapse"
	"github.com/samdwyer/tilewave/internal/tiledata"
	"github.com/samdwyer/tilewave/internal/world"
)

// Config holds run configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible grids.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	Width  int
	Height int
	Rounds int

	// EdgeGuard selects how far up and left propagation reaches.
	EdgeGuard collapse.EdgeGuard

	// Color enables ANSI colors in text output.
	Color bool
	// Interactive opens a tcell viewer instead of printing once.
	Interactive bool
}

// DefaultConfig returns the reference configuration: 30x30, 600 rounds.
func DefaultConfig() Config {
	return Config{
		Width:     world.DefaultWidth,
		Height:    world.DefaultHeight,
		Rounds:    collapse.DefaultRounds,
		EdgeGuard: collapse.GuardReference,
	}
}

// ConfigFromPreset returns the default configuration sized by preset.
func ConfigFromPreset(p *tiledata.PresetDef) Config {
	cfg := DefaultConfig()
	cfg.Width = p.Width
	cfg.Height = p.Height
	cfg.Rounds = p.Rounds
	return cfg
}

// Validate reports configurations that cannot drive a run.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid grid size %dx%d", c.Width, c.Height)
	}
	if c.Rounds < 0 {
		return fmt.Errorf("invalid round count %d", c.Rounds)
	}
	return nil
}

// resolveSeed returns the configured seed, or a time-based one when unset.
func (c Config) resolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewLogger builds a logger at the named level ("debug", "info", ...).
// An empty level means info.
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if level == "" {
		return logger, nil
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// OpenLogFile opens path for appending, or returns io.Discard when path is empty.
// The returned close function is always safe to call.
func OpenLogFile(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, f.Close, nil
}
