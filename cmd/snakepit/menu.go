package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarpov87/snakepit/internal/agent"
	"github.com/akarpov87/snakepit/internal/engine"
	"github.com/akarpov87/snakepit/internal/leaderboard"
	"github.com/akarpov87/snakepit/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start snakepit in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a match ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  snakepit menu
  snakepit menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := leaderboard.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard database: %v\n", err)
		store = nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		switch result.Choice {
		case tui.ChoicePlay:
			eng := engine.New(engine.Config{
				BoardSize:        cfg.Board.Size,
				StepBudgetFactor: cfg.Board.StepBudgetFactor,
				Player:           engine.Human,
				Rewards: engine.Rewards{
					Move:     cfg.Rewards.Move,
					GameOver: cfg.Rewards.GameOver,
				},
				Seed: time.Now().UnixNano(),
			})
			if err := tui.Run(eng, store, cfg, tui.MatchOptions{
				Preset:     result.Preset,
				PlayerName: playerName(),
				ScreenW:    width,
				ScreenH:    height,
			}); err != nil {
				fmt.Fprintf(os.Stderr, "Error running match: %v\n", err)
			}

		case tui.ChoiceBenchmark:
			eng := engine.New(engine.Config{
				BoardSize:        cfg.Board.Size,
				Player:           engine.Agent,
				StepBudgetFactor: cfg.Board.StepBudgetFactor,
				Rewards: engine.Rewards{
					Move:     cfg.Rewards.Move,
					GameOver: cfg.Rewards.GameOver,
				},
			})
			runner := agent.NewRunner(eng, agent.Greedy{}, time.Now().UnixNano(), nil)
			summary, benchErr := runner.Run(context.Background(), cfg.Benchmark.Matches)
			if benchErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", benchErr)
				continue
			}
			fmt.Printf("benchmark: policy=%s matches=%d mean=%.2f best=%d\n",
				summary.Policy, len(summary.Matches), summary.MeanScore, summary.BestScore)

		case tui.ChoiceLeaderboard:
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				if store != nil {
					store.Close()
				}
				return
			}

		default:
			if store != nil {
				store.Close()
			}
			return
		}
	}

	if store != nil {
		store.Close()
	}
}
