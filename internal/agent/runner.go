package agent

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/akarpov87/snakepit/internal/engine"
)

// MatchResult is the outcome of one full match.
type MatchResult struct {
	Score int // food eaten, i.e. final length minus 3
	Steps int
}

// Summary aggregates a benchmark run. MeanScore is the leaderboard metric.
type Summary struct {
	Policy     string
	Matches    []MatchResult
	MeanScore  float64
	BestScore  int
	TotalSteps int
}

// Runner plays N independent matches sequentially on one engine, resetting
// between matches. The engine must be configured with Player: Agent so the
// step budget applies.
type Runner struct {
	engine *engine.Engine
	policy Policy
	rng    *rand.Rand
	logger *log.Logger
}

// NewRunner creates a benchmark runner. A nil logger disables progress
// output.
func NewRunner(e *engine.Engine, p Policy, seed int64, logger *log.Logger) *Runner {
	return &Runner{
		engine: e,
		policy: p,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Run plays matches full matches and aggregates their results. The context
// is checked between steps so long benchmarks can be cancelled.
func (r *Runner) Run(ctx context.Context, matches int) (Summary, error) {
	if matches <= 0 {
		return Summary{}, fmt.Errorf("agent: match count must be positive, got %d", matches)
	}

	summary := Summary{Policy: r.policy.Name()}
	total := 0

	for i := 0; i < matches; i++ {
		result, err := r.playMatch(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("agent: match %d: %w", i+1, err)
		}

		summary.Matches = append(summary.Matches, result)
		summary.TotalSteps += result.Steps
		total += result.Score
		if result.Score > summary.BestScore {
			summary.BestScore = result.Score
		}

		if r.logger != nil {
			r.logger.Info("match finished",
				"match", i+1, "of", matches,
				"score", result.Score, "steps", result.Steps)
		}
	}

	summary.MeanScore = float64(total) / float64(matches)
	return summary, nil
}

// playMatch runs one Reset -> step-until-terminal cycle.
func (r *Runner) playMatch(ctx context.Context) (MatchResult, error) {
	r.engine.Reset()

	for {
		if err := ctx.Err(); err != nil {
			return MatchResult{}, err
		}

		a := r.policy.Act(r.engine, r.rng)
		res, err := r.engine.Step(a)
		if err != nil {
			return MatchResult{}, err
		}
		if res.Done {
			return MatchResult{
				Score: r.engine.Score(),
				Steps: r.engine.Steps(),
			}, nil
		}
	}
}
