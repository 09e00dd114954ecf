package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Size != 30 {
		t.Errorf("Board.Size = %d, want 30", cfg.Board.Size)
	}
	if cfg.Board.StepBudgetFactor != 50 {
		t.Errorf("Board.StepBudgetFactor = %d, want 50", cfg.Board.StepBudgetFactor)
	}
	if cfg.Rewards.Move != -0.005 {
		t.Errorf("Rewards.Move = %v, want -0.005", cfg.Rewards.Move)
	}
	if cfg.Rewards.GameOver != -1 {
		t.Errorf("Rewards.GameOver = %v, want -1", cfg.Rewards.GameOver)
	}
	if cfg.Benchmark.Matches != 10 {
		t.Errorf("Benchmark.Matches = %d, want 10", cfg.Benchmark.Matches)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	content := []byte("board:\n  size: 16\nspeeds:\n  easy: 120\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Size != 16 {
		t.Errorf("Board.Size = %d, want 16", cfg.Board.Size)
	}
	if cfg.Speeds.Easy != 120 {
		t.Errorf("Speeds.Easy = %d, want 120", cfg.Speeds.Easy)
	}

	// Fields the file omitted fall back to defaults.
	if cfg.Speeds.Medium != 60 {
		t.Errorf("Speeds.Medium = %d, want default 60", cfg.Speeds.Medium)
	}
	if cfg.Benchmark.Matches != 10 {
		t.Errorf("Benchmark.Matches = %d, want default 10", cfg.Benchmark.Matches)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestMoveWait(t *testing.T) {
	cfg := Default()

	cases := []struct {
		preset SpeedPreset
		want   int
	}{
		{SpeedEasy, 80},
		{SpeedMedium, 60},
		{SpeedHard, 40},
		{SpeedMegaHardcore, 65},
	}
	for _, c := range cases {
		got, err := cfg.MoveWait(c.preset)
		if err != nil {
			t.Fatalf("MoveWait(%s) failed: %v", c.preset, err)
		}
		if got != c.want {
			t.Errorf("MoveWait(%s) = %d, want %d", c.preset, got, c.want)
		}
	}

	if _, err := cfg.MoveWait("warp"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestHardcoreWaitShrinksWithFloor(t *testing.T) {
	cfg := Default()

	if got := cfg.HardcoreWait(0); got != 65 {
		t.Errorf("HardcoreWait(0) = %d, want 65", got)
	}
	if got := cfg.HardcoreWait(5); got != 55 {
		t.Errorf("HardcoreWait(5) = %d, want 55", got)
	}
	// Far past the floor
	if got := cfg.HardcoreWait(100); got != 20 {
		t.Errorf("HardcoreWait(100) = %d, want floor 20", got)
	}
}
