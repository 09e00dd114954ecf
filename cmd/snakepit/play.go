package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarpov87/snakepit/internal/config"
	"github.com/akarpov87/snakepit/internal/engine"
	"github.com/akarpov87/snakepit/internal/leaderboard"
	"github.com/akarpov87/snakepit/internal/platform/tui"
)

var (
	flagSpeed string
	flagBoard int
	flagName  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start an interactive match.

Controls:
  W/A/S/D or arrows - Steer
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Speed presets:
  easy           - 80ms per move
  medium         - 60ms per move
  hard           - 40ms per move
  mega-hardcore  - starts at 65ms, speeds up with every food eaten

Examples:
  snakepit play
  snakepit play --speed hard
  snakepit play --speed mega-hardcore --board 40 --name alice`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSpeed, "speed", "medium", "Speed preset: easy, medium, hard, mega-hardcore")
	playCmd.Flags().IntVar(&flagBoard, "board", 0, "Board size (0 = config default)")
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name for the leaderboard")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	preset := config.SpeedPreset(flagSpeed)
	if _, err := cfg.MoveWait(preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	boardSize := cfg.Board.Size
	if flagBoard > 0 {
		boardSize = flagBoard
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	eng := engine.New(engine.Config{
		BoardSize:        boardSize,
		StepBudgetFactor: cfg.Board.StepBudgetFactor,
		Player:           engine.Human,
		Rewards: engine.Rewards{
			Move:     cfg.Rewards.Move,
			GameOver: cfg.Rewards.GameOver,
		},
		Seed: flagSeed,
	})

	store, err := leaderboard.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	name := flagName
	if name == "" {
		name = playerName()
	}

	runErr := tui.Run(eng, store, cfg, tui.MatchOptions{
		Preset:     preset,
		PlayerName: name,
		ScreenW:    width,
		ScreenH:    height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}

// playerName falls back to the OS username when --name is not given.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}
