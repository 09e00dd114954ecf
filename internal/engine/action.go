// Package engine implements the deterministic snake simulation: movement,
// growth, food placement, collision detection, scoring and the step-based
// observation/reward interface consumed by both the terminal platform and
// autonomous agents. It has no dependencies outside internal/core so the
// rules stay pure and directly testable.
package engine

// Direction is the snake's absolute heading on the board.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Delta returns the unit vector for one step in this direction.
// Y grows downward, matching grid indexing.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

// Opposite returns the direct reversal of this direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	}
	return DirUp
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Action is a movement command submitted to the engine.
//
// Absolute actions steer toward a compass direction; Idle means "no input
// this tick". In relative mode the TurnLeft/Forward/TurnRight actions are
// interpreted against the snake's current heading before moving.
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
	Idle
	TurnLeft
	Forward
	TurnRight
)

// AbsoluteActions is the action set when Config.RelativeActions is off.
var AbsoluteActions = [...]Action{Left, Right, Up, Down, Idle}

// RelativeActions is the action set when Config.RelativeActions is on.
var RelativeActions = [...]Action{TurnLeft, Forward, TurnRight}

// Direction returns the absolute direction for this action.
// Idle and the relative actions carry no direction of their own.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case Left:
		return DirLeft, true
	case Right:
		return DirRight, true
	case Up:
		return DirUp, true
	case Down:
		return DirDown, true
	}
	return 0, false
}

func (a Action) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Idle:
		return "idle"
	case TurnLeft:
		return "turn-left"
	case Forward:
		return "forward"
	case TurnRight:
		return "turn-right"
	default:
		return "unknown"
	}
}

// headingAction maps a heading back to the absolute action that keeps it.
func headingAction(d Direction) Action {
	switch d {
	case DirLeft:
		return Left
	case DirRight:
		return Right
	case DirUp:
		return Up
	}
	return Down
}

// Translate resolves a relative action against a heading, returning the
// absolute action the engine will execute. Absolute actions pass through
// unchanged. Exposed so policies can reason about relative mode.
func Translate(a Action, heading Direction) Action {
	return relativeToAbsolute(a, heading)
}

// relativeToAbsolute translates a relative action to an absolute one using
// the current heading. Absolute actions pass through unchanged.
//
//	heading | TurnLeft | TurnRight
//	left    | down     | up
//	right   | up       | down
//	up      | left     | right
//	down    | right    | left
func relativeToAbsolute(a Action, heading Direction) Action {
	switch a {
	case Forward:
		return headingAction(heading)
	case TurnLeft:
		switch heading {
		case DirLeft:
			return Down
		case DirRight:
			return Up
		case DirUp:
			return Left
		default:
			return Right
		}
	case TurnRight:
		switch heading {
		case DirLeft:
			return Up
		case DirRight:
			return Down
		case DirUp:
			return Right
		default:
			return Left
		}
	}
	return a
}
