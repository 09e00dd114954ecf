// snakepit is a terminal snake game with a built-in agent benchmark.
//
// Usage:
//
//	snakepit play            - Play a match interactively
//	snakepit menu            - Start the interactive menu
//	snakepit bench           - Run automated benchmark matches
//	snakepit scores          - Show the leaderboard
//	snakepit serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible matches
//	--db <path>      - Set database path (default: ~/.snakepit/scores.db)
//	--config <path>  - Path to a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarpov87/snakepit/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakepit",
	Short: "Snakepit - terminal snake with an agent benchmark",
	Long: `Snakepit is a terminal snake game. Play it yourself at one of four
speed presets, or point a built-in policy at the board and benchmark it.

Available commands:
  play     - Play a match directly
  menu     - Interactive menu
  bench    - Run automated benchmark matches
  scores   - View the leaderboard
  serve    - Start SSH server for remote play

Examples:
  snakepit play --speed hard
  snakepit play --speed mega-hardcore --board 40
  snakepit bench --policy greedy --matches 25
  snakepit serve --ssh :2222
  snakepit scores`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snakepit/scores.db", "Path to the leaderboard database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the app config honoring the global --config flag.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
