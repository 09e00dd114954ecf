package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/akarpov87/snakepit/internal/agent"
	"github.com/akarpov87/snakepit/internal/engine"
	"github.com/akarpov87/snakepit/internal/leaderboard"
)

var (
	flagMatches    int
	flagPolicy     string
	flagRelative   bool
	flagLocalState bool
	flagBenchBoard int
	flagSave       bool
	flagBenchName  string
	flagVerbose    bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run automated benchmark matches",
	Long: `Run a policy against the board for a number of matches and print
score statistics. Matches end on collision or when the policy exceeds
its step budget, so a policy that circles forever still terminates.

Policies:
  random - uniform over the action set
  greedy - head toward the food, avoiding fatal cells

Examples:
  snakepit bench
  snakepit bench --policy random --matches 100
  snakepit bench --policy greedy --relative --local-state
  snakepit bench --matches 25 --save --name greedy-bot`,
	Run: runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagMatches, "matches", 0, "Number of matches (0 = config default)")
	benchCmd.Flags().StringVar(&flagPolicy, "policy", "greedy", "Policy: random or greedy")
	benchCmd.Flags().BoolVar(&flagRelative, "relative", false, "Use the turn-left/forward/turn-right action set")
	benchCmd.Flags().BoolVar(&flagLocalState, "local-state", false, "Mark head-adjacent fatal cells in observations")
	benchCmd.Flags().IntVar(&flagBenchBoard, "board", 0, "Board size (0 = config default)")
	benchCmd.Flags().BoolVar(&flagSave, "save", false, "Record the best score on the leaderboard")
	benchCmd.Flags().StringVar(&flagBenchName, "name", "", "Leaderboard name for --save (default: policy name)")
	benchCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log every match result")
}

func runBench(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	var policy agent.Policy
	switch flagPolicy {
	case "random":
		policy = agent.Random{}
	case "greedy":
		policy = agent.Greedy{}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown policy %q\n", flagPolicy)
		os.Exit(1)
	}

	matches := cfg.Benchmark.Matches
	if flagMatches > 0 {
		matches = flagMatches
	}

	boardSize := cfg.Board.Size
	if flagBenchBoard > 0 {
		boardSize = flagBenchBoard
	}

	eng := engine.New(engine.Config{
		BoardSize:        boardSize,
		LocalState:       flagLocalState,
		RelativeActions:  flagRelative,
		Player:           engine.Agent,
		StepBudgetFactor: cfg.Board.StepBudgetFactor,
		Rewards: engine.Rewards{
			Move:     cfg.Rewards.Move,
			GameOver: cfg.Rewards.GameOver,
		},
		Seed: flagSeed,
	})

	var logger *log.Logger
	if flagVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "bench",
		})
	}

	runner := agent.NewRunner(eng, policy, flagSeed, logger)
	summary, err := runner.Run(context.Background(), matches)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("policy:      %s\n", summary.Policy)
	fmt.Printf("matches:     %d\n", len(summary.Matches))
	fmt.Printf("mean score:  %.2f\n", summary.MeanScore)
	fmt.Printf("best score:  %d\n", summary.BestScore)
	fmt.Printf("total steps: %d\n", summary.TotalSteps)

	if flagSave {
		saveBenchScore(summary)
	}
}

// saveBenchScore records the benchmark's best score on the leaderboard.
func saveBenchScore(summary agent.Summary) {
	if summary.BestScore <= 0 {
		fmt.Println("nothing to save: best score is zero")
		return
	}

	store, err := leaderboard.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	name := flagBenchName
	if name == "" {
		name = summary.Policy
	}

	if _, err := store.Save(name, summary.BestScore, summary.TotalSteps); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving score: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("saved: %s with score %d\n", name, summary.BestScore)
}
