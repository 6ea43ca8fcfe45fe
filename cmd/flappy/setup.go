package main

import (
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// resolveConfig loads the config file and applies the variant and
// difficulty flags.
func resolveConfig(variant config.Variant) (config.FlappyConfig, error) {
	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	return config.Resolve(config.Options{
		Path:       flagConfig,
		Variant:    variant,
		Difficulty: preset,
	})
}

// newLogger builds the logger from the log flags. stderr is only used when
// the terminal is not taken over by the game.
func newLogger(prefix string, stderr bool) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		File:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: prefix,
		Stderr: stderr,
	})
}

// terminalSize returns the size of stdout, or 80x24 when it isn't a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
