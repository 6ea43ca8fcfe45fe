package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresClear  bool
	flagScoresBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the high score and the best runs.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --browse
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the high score and run history")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, _ []string) error {
	if flagScoresBrowse {
		width, height := terminalSize()
		return browseScores(width, height)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		if err := store.ClearHighScore(); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	runs, err := store.TopRuns(flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Flappy")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %s\n", "Rank", "Score", "Variant", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %s\n", "----", "-----", "-------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6s  %-8s  %-6s  %s\n",
			i+1,
			strconv.FormatFloat(r.Score, 'f', -1, 64),
			r.Variant,
			(time.Duration(r.DurationMs) * time.Millisecond).Round(time.Second),
			r.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	fmt.Println()
	if high, ok, err := store.LoadHighScore(); err == nil && ok {
		fmt.Printf("Best: %s\n", strconv.FormatFloat(high, 'f', -1, 64))
	}
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f  Played: %s\n",
			stats.RunsCount, stats.AvgScore,
			(time.Duration(stats.TotalMs) * time.Millisecond).Round(time.Second))
	}
	return nil
}
