// flappy is a Flappy Bird game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as 'flappy play')
//	flappy play              - Play a game
//	flappy menu              - Pick a variant interactively, then play
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the best runs
//	flappy variants          - List the available variants
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Load a custom config YAML
//	--variant <name>      - classic, relaxed or wide; overrides the config file
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a rotating file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagVariant    string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - Flappy Bird in your terminal",
	Long: `Flappy is a terminal Flappy Bird. Flap through the gaps between the
pipes; every pair you pass is worth half a point.

Available commands:
  play      - Play a game (default)
  menu      - Pick a variant, then play
  serve     - Start SSH server for remote play
  scores    - View the best runs
  variants  - List the available variants
  config    - Print the effective configuration

Examples:
  flappy
  flappy play --variant relaxed
  flappy serve --ssh :2222
  flappy scores --browse`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagVariant, "variant", "", "Variant preset: classic, relaxed, wide (default: config as loaded)")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(variantsCmd)
	rootCmd.AddCommand(configCmd)
}
