package engine

import (
	"github.com/akarpov87/snakepit/internal/core"
)

// Snapshot captures the complete engine state for determinism testing.
type Snapshot struct {
	Steps   int
	Length  int
	Score   int
	Head    core.Position
	Food    core.Position
	Heading Direction
	Phase   Phase
	Scored  bool
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Steps:   e.steps,
		Length:  e.snake.Length(),
		Score:   e.Score(),
		Head:    e.snake.Head(),
		Food:    e.foodPos,
		Heading: e.snake.Heading(),
		Phase:   e.phase,
		Scored:  e.scored,
	}
}
