package engine

import (
	"github.com/akarpov87/snakepit/internal/core"
)

// Snake owns the body positions, heading and growth rules. It performs no
// bounds checking: the engine decides what a head outside the board means.
type Snake struct {
	body    []core.Position // head at index 0, tail at the end
	heading Direction
	length  int
}

// NewSnake creates a 3-segment snake at a quarter of the board, heading
// right. Body segments extend left of the head.
func NewSnake(boardSize int) *Snake {
	head := core.Position{X: boardSize / 4, Y: boardSize / 4}
	return &Snake{
		body:    []core.Position{head, head.Add(-1, 0), head.Add(-2, 0)},
		heading: DirRight,
		length:  3,
	}
}

// Head returns the current head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Body returns the body positions, head first. The slice is owned by the
// snake; callers must not mutate it.
func (s *Snake) Body() []core.Position {
	return s.body
}

// Heading returns the last accepted absolute direction.
func (s *Snake) Heading() Direction {
	return s.heading
}

// Length returns the current body length.
func (s *Snake) Length() int {
	return s.length
}

// Occupies reports whether any body segment sits on p.
func (s *Snake) Occupies(p core.Position) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// MoveInvalid reports whether the action must be ignored: Idle, an action
// without an absolute direction, or the direct reversal of the current
// heading. Reversals are rejected so the snake can never move backward into
// itself.
func (s *Snake) MoveInvalid(a Action) bool {
	d, ok := a.Direction()
	if !ok {
		return true
	}
	return d == s.heading.Opposite()
}

// Move advances the snake one cell. An invalid action falls back to the
// current heading, so stale or spurious input keeps the snake moving
// straight instead of failing. The new head is inserted at the front; when
// it lands on food the tail is kept (net growth by one), otherwise the tail
// is popped. Returns whether food was eaten.
func (s *Snake) Move(a Action, food core.Position) bool {
	if !s.MoveInvalid(a) {
		s.heading, _ = a.Direction()
	}

	dx, dy := s.heading.Delta()
	head := s.Head().Add(dx, dy)
	s.body = append([]core.Position{head}, s.body...)

	if head == food {
		s.length = len(s.body)
		return true
	}

	s.body = s.body[:len(s.body)-1]
	return false
}
