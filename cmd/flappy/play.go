package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing.

Controls:
  Space/Up/W/Enter - Start, flap, restart
  Tab              - Scores (when not playing)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Examples:
  flappy play
  flappy play --variant wide
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	return playVariant(config.Variant(flagVariant))
}

// playVariant runs one local game session until the player quits.
func playVariant(variant config.Variant) error {
	cfg, err := resolveConfig(variant)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("flappy", false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(playOptions(cfg, variant, store, logger))
}

// playOptions wires a game to the store. A nil store keeps the high score in
// memory for the session.
func playOptions(cfg config.FlappyConfig, variant config.Variant, store *storage.Store, logger *log.Logger) tui.Options {
	var high flappy.HighScoreStore = storage.NewMemoryStore()
	if store != nil {
		high = store
	}

	game := flappy.New(flappy.Options{
		Config: cfg,
		Store:  high,
		Logger: logger,
		Seed:   flagSeed,
	})

	width, height := terminalSize()
	opts := tui.Options{
		Game:    game,
		Field:   cfg.Field,
		Variant: variant.Label(),
		FPS:     flagFPS,
		Logger:  logger,
		Width:   width,
		Height:  height,
	}
	if store != nil {
		opts.Runs = store
		opts.Scores = store
	}
	return opts
}
