package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akarpov87/snakepit/internal/leaderboard"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top 10 leaderboard entries.

Examples:
  snakepit scores
  snakepit scores --db ./scores.db
  snakepit scores --reset`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all leaderboard entries")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := leaderboard.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing leaderboard: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Leaderboard cleared.")
		return
	}

	entries, err := store.Top(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Snakepit")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snakepit play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %-8s  %s\n", "Rank", "Name", "Score", "Steps", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %-8s  %s\n", "----", "----", "-----", "-----", "----")

	for i, entry := range entries {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-8d  %-8d  %s\n", i+1, entry.Name, entry.Score, entry.Steps, dateStr)
	}

	fmt.Println()
	best, err := store.Best()
	if err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
