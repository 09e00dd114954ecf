package engine

import (
	"errors"
	"math/rand"

	"github.com/akarpov87/snakepit/internal/core"
)

// ErrBoardFull is returned when no free cell remains for food placement.
var ErrBoardFull = errors.New("engine: board has no free cell for food")

// maxSampleTries bounds rejection sampling before falling back to a full
// scan of free cells. Sampling is fast while the board is mostly empty but
// its worst case is unbounded when the snake covers nearly every cell.
const maxSampleTries = 4096

// FoodGenerator picks valid unoccupied cells for food and tracks whether a
// piece is currently on the board.
type FoodGenerator struct {
	boardSize int
	rng       *rand.Rand
	pos       core.Position
	onScreen  bool
}

// NewFoodGenerator creates a generator for a boardSize*boardSize board.
func NewFoodGenerator(boardSize int, rng *rand.Rand) *FoodGenerator {
	return &FoodGenerator{boardSize: boardSize, rng: rng}
}

// Generate returns the current food position, producing a new one only when
// the previous piece was consumed. Repeated calls without an intervening
// Consumed return the identical position. New positions are drawn uniformly
// from [0, boardSize-1] on both axes and never coincide with the body.
func (f *FoodGenerator) Generate(body []core.Position) (core.Position, error) {
	if f.onScreen {
		return f.pos, nil
	}

	for i := 0; i < maxSampleTries; i++ {
		p := core.Position{X: f.rng.Intn(f.boardSize), Y: f.rng.Intn(f.boardSize)}
		if occupies(body, p) {
			continue
		}
		f.pos = p
		f.onScreen = true
		return p, nil
	}

	// Board is nearly full: enumerate the free cells instead of sampling.
	var free []core.Position
	for y := 0; y < f.boardSize; y++ {
		for x := 0; x < f.boardSize; x++ {
			p := core.Position{X: x, Y: y}
			if !occupies(body, p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Position{}, ErrBoardFull
	}

	f.pos = free[f.rng.Intn(len(free))]
	f.onScreen = true
	return f.pos, nil
}

// Consumed marks the current food as eaten, forcing regeneration on the
// next Generate call.
func (f *FoodGenerator) Consumed() {
	f.onScreen = false
}

// OnScreen reports whether a food piece is currently placed.
func (f *FoodGenerator) OnScreen() bool {
	return f.onScreen
}

func occupies(body []core.Position, p core.Position) bool {
	for _, seg := range body {
		if seg == p {
			return true
		}
	}
	return false
}
