package agent

import (
	"math/rand"
	"testing"

	"github.com/akarpov87/snakepit/internal/core"
	"github.com/akarpov87/snakepit/internal/engine"
)

func TestRandomStaysInActionSet(t *testing.T) {
	e := engine.New(engine.Config{BoardSize: 10, Player: engine.Agent, Seed: 1})
	rng := rand.New(rand.NewSource(2))

	valid := make(map[engine.Action]bool)
	for _, a := range e.Actions() {
		valid[a] = true
	}

	var p Random
	for i := 0; i < 100; i++ {
		if a := p.Act(e, rng); !valid[a] {
			t.Fatalf("random policy produced %v outside the action set", a)
		}
	}
}

func TestGreedyHeadsTowardFood(t *testing.T) {
	e := engine.New(engine.Config{BoardSize: 10, Player: engine.Agent, Seed: 3})
	rng := rand.New(rand.NewSource(4))

	// On an open board a short greedy snake reaches the first food well
	// within the distance bound, without dying.
	var p Greedy
	bound := 4 * manhattan(e.Head(), e.FoodPosition())
	if bound < 20 {
		bound = 20
	}

	for i := 0; i < bound; i++ {
		res, err := e.Step(p.Act(e, rng))
		if err != nil {
			t.Fatalf("Step: %v", err)
		}
		if res.Done {
			t.Fatalf("greedy policy died on an open board at step %d", i+1)
		}
		if e.Score() > 0 {
			return
		}
	}
	t.Errorf("greedy policy never reached the food within %d steps", bound)
}

func TestGreedyNeverReverses(t *testing.T) {
	e := engine.New(engine.Config{BoardSize: 10, Player: engine.Agent, Seed: 5})
	rng := rand.New(rand.NewSource(6))

	var p Greedy
	for i := 0; i < 50 && !e.Done(); i++ {
		heading := e.Heading()
		a := p.Act(e, rng)
		if d, ok := a.Direction(); ok && d == heading.Opposite() {
			t.Fatalf("greedy requested reversal %v while heading %v", a, heading)
		}
		if _, err := e.Step(a); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
}

func TestGreedyRelativeMode(t *testing.T) {
	e := engine.New(engine.Config{BoardSize: 10, Player: engine.Agent, RelativeActions: true, Seed: 7})
	rng := rand.New(rand.NewSource(8))

	valid := map[engine.Action]bool{
		engine.TurnLeft: true, engine.Forward: true, engine.TurnRight: true,
	}

	var p Greedy
	for i := 0; i < 20 && !e.Done(); i++ {
		a := p.Act(e, rng)
		if !valid[a] {
			t.Fatalf("greedy produced absolute action %v in relative mode", a)
		}
		if _, err := e.Step(a); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
}

func manhattan(a, b core.Position) int {
	return core.Abs(a.X-b.X) + core.Abs(a.Y-b.Y)
}
