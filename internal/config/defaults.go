package config

import (
	_ "embed"
)

//go:embed defaults/snakepit.yaml
var defaultYAML []byte

// Default returns the built-in configuration, used when no config file is
// found and as a fallback if the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:             30,
			StepBudgetFactor: 50,
		},
		Rewards: RewardsConfig{
			Move:     -0.005,
			GameOver: -1,
		},
		Speeds: SpeedsConfig{
			Easy:         80,
			Medium:       60,
			Hard:         40,
			MegaHardcore: 65,
		},
		Hardcore: HardcoreConfig{
			SpeedupPerFood: 2,
			MinWait:        20,
		},
		Benchmark: BenchmarkConfig{
			Matches: 10,
		},
	}
}
