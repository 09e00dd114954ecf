// Package agent provides autonomous players for the snake engine and the
// benchmark loop that runs them across matches. Policies consume the same
// observation/reward interface an external learner would, so anything that
// can pick an action index plugs in here.
package agent

import (
	"math/rand"

	"github.com/akarpov87/snakepit/internal/core"
	"github.com/akarpov87/snakepit/internal/engine"
)

// Policy picks the next action from the current observation.
type Policy interface {
	// Name identifies the policy in logs and leaderboard entries.
	Name() string

	// Act returns the next action for the given engine state.
	Act(e *engine.Engine, rng *rand.Rand) engine.Action
}

// Random picks uniformly from the engine's action set. It is the floor any
// real policy should beat.
type Random struct{}

func (Random) Name() string { return "random" }

func (Random) Act(e *engine.Engine, rng *rand.Rand) engine.Action {
	actions := e.Actions()
	return actions[rng.Intn(len(actions))]
}

// Greedy heads toward the food along the axis with the larger distance,
// skipping moves that the observation marks fatal. It only consults the
// grid the engine already exposes, not engine internals.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Act(e *engine.Engine, rng *rand.Rand) engine.Action {
	obs := e.Observe()
	head := e.Head()
	food := e.FoodPosition()

	// Candidate directions ordered by how much they close the gap.
	var prefs []engine.Direction
	dx := food.X - head.X
	dy := food.Y - head.Y
	if core.Abs(dx) >= core.Abs(dy) {
		prefs = append(prefs, axisDir(dx, engine.DirLeft, engine.DirRight), axisDir(dy, engine.DirUp, engine.DirDown))
	} else {
		prefs = append(prefs, axisDir(dy, engine.DirUp, engine.DirDown), axisDir(dx, engine.DirLeft, engine.DirRight))
	}
	prefs = append(prefs, e.Heading())

	for _, d := range prefs {
		if d == e.Heading().Opposite() {
			continue
		}
		if safe(obs, head, d) {
			return toAction(e, d)
		}
	}

	// Nothing preferred is safe; take any survivable turn.
	for _, d := range []engine.Direction{engine.DirLeft, engine.DirRight, engine.DirUp, engine.DirDown} {
		if d == e.Heading().Opposite() {
			continue
		}
		if safe(obs, head, d) {
			return toAction(e, d)
		}
	}

	// Boxed in: keep going straight and accept the collision.
	return toAction(e, e.Heading())
}

// axisDir picks the direction that reduces a signed axis distance. A zero
// distance keeps the negative direction; it gets filtered by the safety
// check if it is a reversal or fatal.
func axisDir(delta int, neg, pos engine.Direction) engine.Direction {
	if delta > 0 {
		return pos
	}
	return neg
}

// safe reports whether one step in d from head lands on a survivable cell.
func safe(obs engine.Grid, head core.Position, d engine.Direction) bool {
	dx, dy := d.Delta()
	p := head.Add(dx, dy)
	if !p.In(obs.Size()) {
		return false
	}
	switch obs.At(p) {
	case engine.Body, engine.Dangerous:
		return false
	}
	return true
}

// toAction expresses an absolute direction in the engine's configured
// action mode.
func toAction(e *engine.Engine, d engine.Direction) engine.Action {
	var abs engine.Action
	switch d {
	case engine.DirLeft:
		abs = engine.Left
	case engine.DirRight:
		abs = engine.Right
	case engine.DirUp:
		abs = engine.Up
	default:
		abs = engine.Down
	}

	if e.ActionSpace() != len(engine.RelativeActions) {
		return abs
	}

	// Relative mode: find the turn whose translation yields the wanted
	// absolute action.
	heading := e.Heading()
	for _, turn := range engine.RelativeActions {
		if equivalent(turn, heading, abs) {
			return turn
		}
	}
	return engine.Forward
}

func equivalent(turn engine.Action, heading engine.Direction, abs engine.Action) bool {
	translated := engine.Translate(turn, heading)
	return translated == abs
}
