package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant, then play",
	Long: `Start with an interactive variant picker.

Use arrow keys or j/k to navigate, Enter to play the selected variant.
Quitting a game returns to the picker.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Scores
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	current := config.Variant(flagVariant)

	for {
		width, height := terminalSize()
		result, err := tui.RunMenu(current, width, height)
		if err != nil {
			return err
		}

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			if err := browseScores(width, height); err != nil {
				return err
			}

		default:
			current = result.Variant
			if err := playVariant(current); err != nil {
				return err
			}
		}
	}
}

// browseScores opens the scoreboard on its own.
func browseScores(width, height int) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return tui.RunScoreboard(nil, width, height)
	}
	defer store.Close()
	return tui.RunScoreboard(store, width, height)
}
