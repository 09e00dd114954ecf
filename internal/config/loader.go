package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.snakepit/config.yaml -> ./configs/snakepit.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snakepit.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snakepit", filename)
}

// normalize fills gaps a partial config file left open, so a file that only
// overrides speeds still gets a playable board and rewards.
func normalize(cfg Config) Config {
	def := Default()

	if cfg.Board.Size <= 0 {
		cfg.Board.Size = def.Board.Size
	}
	if cfg.Board.StepBudgetFactor <= 0 {
		cfg.Board.StepBudgetFactor = def.Board.StepBudgetFactor
	}
	if cfg.Rewards == (RewardsConfig{}) {
		cfg.Rewards = def.Rewards
	}
	if cfg.Speeds.Easy <= 0 {
		cfg.Speeds.Easy = def.Speeds.Easy
	}
	if cfg.Speeds.Medium <= 0 {
		cfg.Speeds.Medium = def.Speeds.Medium
	}
	if cfg.Speeds.Hard <= 0 {
		cfg.Speeds.Hard = def.Speeds.Hard
	}
	if cfg.Speeds.MegaHardcore <= 0 {
		cfg.Speeds.MegaHardcore = def.Speeds.MegaHardcore
	}
	if cfg.Hardcore.SpeedupPerFood <= 0 {
		cfg.Hardcore.SpeedupPerFood = def.Hardcore.SpeedupPerFood
	}
	if cfg.Hardcore.MinWait <= 0 {
		cfg.Hardcore.MinWait = def.Hardcore.MinWait
	}
	if cfg.Benchmark.Matches <= 0 {
		cfg.Benchmark.Matches = def.Benchmark.Matches
	}

	return cfg
}
