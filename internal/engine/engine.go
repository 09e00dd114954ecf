package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/akarpov87/snakepit/internal/core"
)

// ErrTerminalState is returned by Step and Play after the match has ended.
// A terminal engine rejects further simulation until Reset is called.
var ErrTerminalState = errors.New("engine: match is over, call Reset")

// Phase is the engine lifecycle state.
type Phase int

const (
	Ready    Phase = iota // after Reset, before the first step
	Running               // steps applied, no termination yet
	Terminal              // collision occurred or step budget exceeded
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Player selects who drives the match. Agent matches additionally terminate
// when the step budget is exceeded, so a looping policy cannot stall a
// benchmark forever.
type Player int

const (
	Human Player = iota
	Agent
)

// Rewards holds the tunable reward constants. The scored reward is not a
// constant: it equals the snake length after eating.
type Rewards struct {
	Move     float64 // small penalty per step, encourages shorter paths
	GameOver float64
}

// DefaultRewards returns the default reward constants.
func DefaultRewards() Rewards {
	return Rewards{Move: -0.005, GameOver: -1}
}

// Config is the engine construction configuration. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	BoardSize        int    // board is BoardSize*BoardSize, default 30
	LocalState       bool   // mark head-adjacent fatal cells as Dangerous
	RelativeActions  bool   // steer with TurnLeft/Forward/TurnRight
	Player           Player // Human or Agent
	StepBudgetFactor int    // agent matches end after factor*length steps
	Rewards          Rewards
	Seed             int64 // 0 means seed from the clock
}

// DefaultConfig returns the standard configuration: a 30x30 board, absolute
// actions, human player. Boards above 50 work but food placement and grid
// rendering get noticeably slower.
func DefaultConfig() Config {
	return Config{
		BoardSize:        30,
		StepBudgetFactor: 50,
		Rewards:          DefaultRewards(),
	}
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	Observation Grid
	Reward      float64
	Done        bool
}

// Engine composes the snake and food generator, applies one discrete time
// step at a time, and produces observation grids and rewards. All methods
// are synchronous; one step fully resolves before the next is accepted.
type Engine struct {
	cfg     Config
	rng     *rand.Rand
	snake   *Snake
	food    *FoodGenerator
	foodPos core.Position
	steps   int
	scored  bool
	phase   Phase
}

// New creates an engine and resets it to a fresh match.
func New(cfg Config) *Engine {
	if cfg.BoardSize <= 0 {
		cfg.BoardSize = 30
	}
	if cfg.StepBudgetFactor <= 0 {
		cfg.StepBudgetFactor = 50
	}
	if cfg.Rewards == (Rewards{}) {
		cfg.Rewards = DefaultRewards()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	e.Reset()
	return e
}

// Reset starts a new match and returns the initial observation. The snake
// and food generator are constructed fresh, so no prior-match positions
// leak into the new match's occupancy checks.
func (e *Engine) Reset() Grid {
	e.snake = NewSnake(e.cfg.BoardSize)
	e.food = NewFoodGenerator(e.cfg.BoardSize, e.rng)
	e.foodPos, _ = e.food.Generate(e.snake.Body()) // 3 segments never fill a board
	e.steps = 0
	e.scored = false
	e.phase = Ready
	return e.Observe()
}

// Play applies one discrete time step. Invalid or forbidden actions are
// substituted with the current heading and never produce an error; the only
// error case is calling Play on a terminal engine.
func (e *Engine) Play(a Action) error {
	if e.phase == Terminal {
		return ErrTerminalState
	}
	e.phase = Running
	e.scored = false
	e.steps++

	// Regenerate food if the previous step consumed it. A full board means
	// there is nothing left to eat: the match ends as won.
	pos, err := e.food.Generate(e.snake.Body())
	if err != nil {
		e.phase = Terminal
		return nil
	}
	e.foodPos = pos

	if e.cfg.RelativeActions {
		a = relativeToAbsolute(a, e.snake.Heading())
	}

	if e.snake.Move(a, e.foodPos) {
		e.scored = true
		e.food.Consumed()
	}

	if e.collided() {
		e.phase = Terminal
	} else if e.cfg.Player == Agent && e.steps > e.cfg.StepBudgetFactor*e.snake.Length() {
		e.phase = Terminal
	}
	return nil
}

// Step advances one tick and reports the observation, reward and done flag.
func (e *Engine) Step(a Action) (StepResult, error) {
	if err := e.Play(a); err != nil {
		return StepResult{}, err
	}
	return StepResult{
		Observation: e.Observe(),
		Reward:      e.Reward(),
		Done:        e.phase == Terminal,
	}, nil
}

// collided reports whether the head left the board or hit the body.
// Valid coordinates are [0, boardSize-1] inclusive; the same bound is used
// for observation rendering.
func (e *Engine) collided() bool {
	head := e.snake.Head()
	if !head.In(e.cfg.BoardSize) {
		return true
	}
	for _, seg := range e.snake.Body()[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Reward is a pure function of the post-step state: the game-over constant
// if terminal, the snake length if food was eaten this step, otherwise the
// move penalty.
func (e *Engine) Reward() float64 {
	switch {
	case e.phase == Terminal:
		return e.cfg.Rewards.GameOver
	case e.scored:
		return float64(e.snake.Length())
	default:
		return e.cfg.Rewards.Move
	}
}

// Observe returns the categorical grid for the current state. A terminal
// engine observes an all-Empty grid: observations are undefined after the
// match and callers must check Done, not infer it from the grid.
func (e *Engine) Observe() Grid {
	g := newGrid(e.cfg.BoardSize)
	if e.phase == Terminal {
		return g
	}

	body := e.snake.Body()
	for _, seg := range body {
		g.set(seg, Body)
	}
	g.set(body[0], Head)

	if e.cfg.LocalState {
		e.markDanger(g)
	}

	// Food is painted last so it wins over body and head on the unlikely
	// coincident tick.
	g.set(e.foodPos, Food)
	return g
}

// markDanger flags head-adjacent cells that would be immediately fatal.
// Only in-board cells can carry the mark; stepping off the board is implied
// by the grid edge itself.
func (e *Engine) markDanger(g Grid) {
	head := e.snake.Head()
	for _, d := range []Direction{DirLeft, DirRight, DirUp, DirDown} {
		dx, dy := d.Delta()
		p := head.Add(dx, dy)
		if !p.In(e.cfg.BoardSize) {
			continue
		}
		for _, seg := range e.snake.Body()[1:] {
			if seg == p {
				g.set(p, Dangerous)
				break
			}
		}
	}
}

// ActionSpace returns the number of distinct actions: 3 in relative mode,
// 5 in absolute mode.
func (e *Engine) ActionSpace() int {
	if e.cfg.RelativeActions {
		return len(RelativeActions)
	}
	return len(AbsoluteActions)
}

// Actions returns the valid action set for the configured mode, in
// action-index order.
func (e *Engine) Actions() []Action {
	if e.cfg.RelativeActions {
		return RelativeActions[:]
	}
	return AbsoluteActions[:]
}

// FoodPosition returns the current food position.
func (e *Engine) FoodPosition() core.Position {
	return e.foodPos
}

// Steps returns the elapsed step count for the current match.
func (e *Engine) Steps() int {
	return e.steps
}

// Length returns the current snake length.
func (e *Engine) Length() int {
	return e.snake.Length()
}

// Score returns the match score: food eaten, i.e. length minus the three
// starting segments.
func (e *Engine) Score() int {
	return e.snake.Length() - 3
}

// Done reports whether the engine is terminal.
func (e *Engine) Done() bool {
	return e.phase == Terminal
}

// Phase returns the lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Heading returns the snake's current heading.
func (e *Engine) Heading() Direction {
	return e.snake.Heading()
}

// Head returns the snake's head position.
func (e *Engine) Head() core.Position {
	return e.snake.Head()
}

// Body returns a copy of the snake's body positions, head first.
func (e *Engine) Body() []core.Position {
	body := e.snake.Body()
	out := make([]core.Position, len(body))
	copy(out, body)
	return out
}

// BoardSize returns the configured board size.
func (e *Engine) BoardSize() int {
	return e.cfg.BoardSize
}
