// Package main is the entry point for tilewave.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/integrii/flaggy"
	"github.com/joho/godotenv"

	"github.com/samdwyer/tilewave/internal/app"
	"github.com/samdwyer/tilewave/internal/collapse"
	"github.com/samdwyer/tilewave/internal/telemetry"
	"github.com/samdwyer/tilewave/internal/tiledata"
)

// options holds the command line flags. Zero values leave the preset untouched.
type options struct {
	preset      string
	seed        int64
	width       int
	height      int
	rounds      int
	exactEdges  bool
	interactive bool
	color       bool
}

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	setupOTelEnv()

	presets := tiledata.MustLoadPresetRegistry()
	opts := parseFlags(presets)

	cfg, err := buildConfig(presets, opts)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Note: telemetry disabled: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	if err := run(ctx, cfg); err != nil {
		log.Printf("Generation error: %v", err)
		if shutdown != nil {
			_ = shutdown(ctx)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg app.Config) error {
	var logOut io.Writer = os.Stderr
	if cfg.Interactive {
		// The viewer owns the terminal, so its logs go to LOG_FILE or nowhere.
		w, closeLog, err := app.OpenLogFile(os.Getenv("LOG_FILE"))
		if err != nil {
			return err
		}
		defer closeLog()
		logOut = w
	}

	logger, err := app.NewLogger(os.Getenv("LOG_LEVEL"), logOut)
	if err != nil {
		return err
	}

	if cfg.Interactive {
		v, err := app.NewViewer(cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to open viewer: %w", err)
		}
		return v.Run(ctx)
	}
	return app.Run(ctx, cfg, os.Stdout, logger)
}

func parseFlags(presets *tiledata.PresetRegistry) options {
	opts := options{preset: presets.Default().ID}

	flaggy.SetName("tilewave")
	flaggy.SetDescription("Generate a tile map by collapsing a grid of possibilities")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&opts.preset, "p", "preset", "Preset to start from ["+strings.Join(presets.IDs(), "|")+"]")
	flaggy.Int64(&opts.seed, "s", "seed", "Random seed; 0 picks one from the clock")
	flaggy.Int(&opts.width, "x", "width", "Grid width, overrides the preset")
	flaggy.Int(&opts.height, "y", "height", "Grid height, overrides the preset")
	flaggy.Int(&opts.rounds, "r", "rounds", "Collapse rounds, overrides the preset")
	flaggy.Bool(&opts.exactEdges, "e", "exact-edges", "Propagate into row and column 0 as well")
	flaggy.Bool(&opts.interactive, "i", "interactive", "Open the terminal viewer")
	flaggy.Bool(&opts.color, "c", "color", "Colorize text output")

	flaggy.Parse()
	return opts
}

func buildConfig(presets *tiledata.PresetRegistry, opts options) (app.Config, error) {
	preset := presets.GetByID(opts.preset)
	if preset == nil {
		return app.Config{}, fmt.Errorf("unknown preset %q", opts.preset)
	}

	cfg := app.ConfigFromPreset(preset)
	cfg.Seed = opts.seed
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.rounds > 0 {
		cfg.Rounds = opts.rounds
	}
	if opts.exactEdges {
		cfg.EdgeGuard = collapse.GuardExact
	}
	cfg.Interactive = opts.interactive
	cfg.Color = opts.color

	return cfg, cfg.Validate()
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_TILEWAVE_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_TILEWAVE_DATASET")
	if dataset == "" {
		dataset = "tilewave" // default dataset name
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
