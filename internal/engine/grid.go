package engine

import (
	"strings"

	"github.com/akarpov87/snakepit/internal/core"
)

// Cell is a categorical observation grid value.
type Cell uint8

const (
	Empty Cell = iota
	Food
	Body
	Head
	Dangerous
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Food:
		return "food"
	case Body:
		return "body"
	case Head:
		return "head"
	case Dangerous:
		return "dangerous"
	default:
		return "unknown"
	}
}

// Grid is the agent-facing observation of the board, indexed [y][x].
type Grid [][]Cell

func newGrid(size int) Grid {
	g := make(Grid, size)
	for y := range g {
		g[y] = make([]Cell, size)
	}
	return g
}

// Size returns the board size the grid covers.
func (g Grid) Size() int {
	return len(g)
}

// At returns the cell value at p. Out-of-grid positions read as Empty.
func (g Grid) At(p core.Position) Cell {
	if !p.In(len(g)) {
		return Empty
	}
	return g[p.Y][p.X]
}

func (g Grid) set(p core.Position, c Cell) {
	if !p.In(len(g)) {
		return
	}
	g[p.Y][p.X] = c
}

// String renders the grid for debugging and test failure output.
func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < len(g); y++ {
		for x := 0; x < len(g); x++ {
			switch g[y][x] {
			case Food:
				b.WriteByte('F')
			case Body:
				b.WriteByte('o')
			case Head:
				b.WriteByte('O')
			case Dangerous:
				b.WriteByte('!')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
