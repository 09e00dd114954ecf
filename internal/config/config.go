// Package config provides YAML-based configuration loading and speed
// preset management for the snakepit game.
package config

import "fmt"

// Config is the full game configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Rewards   RewardsConfig   `yaml:"rewards"`
	Speeds    SpeedsConfig    `yaml:"speeds"`
	Hardcore  HardcoreConfig  `yaml:"hardcore"`
	Benchmark BenchmarkConfig `yaml:"benchmark"`
}

// BoardConfig defines board parameters.
type BoardConfig struct {
	// Size is the board edge length in cells. Sizes above 50 work but run
	// noticeably slower.
	Size int `yaml:"size"`

	// StepBudgetFactor terminates agent matches after factor*length steps.
	StepBudgetFactor int `yaml:"step_budget_factor"`
}

// RewardsConfig defines the tunable agent reward constants. The scored
// reward always equals the snake length and is not configurable.
type RewardsConfig struct {
	Move     float64 `yaml:"move"`
	GameOver float64 `yaml:"game_over"`
}

// SpeedsConfig maps speed presets to the wait between snake moves, in
// milliseconds. MegaHardcore is the starting wait of the shrinking-delay
// variant.
type SpeedsConfig struct {
	Easy         int `yaml:"easy"`
	Medium       int `yaml:"medium"`
	Hard         int `yaml:"hard"`
	MegaHardcore int `yaml:"mega_hardcore"`
}

// HardcoreConfig tunes the mega-hardcore variant: the per-tick move delay
// decreases as the snake grows.
type HardcoreConfig struct {
	// SpeedupPerFood is the milliseconds removed from the move wait for
	// each food eaten.
	SpeedupPerFood int `yaml:"speedup_per_food"`

	// MinWait is the floor the move wait never drops below.
	MinWait int `yaml:"min_wait"`
}

// BenchmarkConfig defines the benchmark loop parameters.
type BenchmarkConfig struct {
	// Matches is the number of matches per benchmark run.
	Matches int `yaml:"matches"`
}

// SpeedPreset is a named speed level selectable by human players.
type SpeedPreset string

const (
	SpeedEasy         SpeedPreset = "easy"
	SpeedMedium       SpeedPreset = "medium"
	SpeedHard         SpeedPreset = "hard"
	SpeedMegaHardcore SpeedPreset = "mega-hardcore"
)

// Presets lists the selectable speed presets in menu order.
var Presets = []SpeedPreset{SpeedEasy, SpeedMedium, SpeedHard, SpeedMegaHardcore}

// MoveWait returns the base milliseconds between snake moves for a preset.
func (c Config) MoveWait(preset SpeedPreset) (int, error) {
	switch preset {
	case SpeedEasy:
		return c.Speeds.Easy, nil
	case SpeedMedium:
		return c.Speeds.Medium, nil
	case SpeedHard:
		return c.Speeds.Hard, nil
	case SpeedMegaHardcore:
		return c.Speeds.MegaHardcore, nil
	}
	return 0, fmt.Errorf("config: unknown speed preset %q", preset)
}

// HardcoreWait returns the move wait for mega-hardcore mode given the
// current score: the base wait shrinks as the snake grows, never below the
// configured floor.
func (c Config) HardcoreWait(score int) int {
	wait := c.Speeds.MegaHardcore - c.Hardcore.SpeedupPerFood*score
	if wait < c.Hardcore.MinWait {
		wait = c.Hardcore.MinWait
	}
	return wait
}
