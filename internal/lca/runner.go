package lca

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/sheep-lca/internal/livestock"
)

// Result is one evaluated scenario.
type Result struct {
	RunID    uuid.UUID     `json:"run_id"`
	Totals   FarmTotals    `json:"totals"`
	Duration time.Duration `json:"duration_ns"`
}

// Run evaluates one scenario. The context is only checked before work
// starts; a single farm is a bounded computation.
func Run(ctx context.Context, calc *Calculator, s livestock.Scenario) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if s.Herd == nil {
		return Result{}, fmt.Errorf("farm %d: %w: no herd", s.Farm.ID, livestock.ErrInvalidCohort)
	}

	start := time.Now()
	res := Result{RunID: uuid.New()}
	totals, err := calc.Assemble(s.Farm, s.Herd)
	if err != nil {
		return Result{}, fmt.Errorf("farm %d: %w", s.Farm.ID, err)
	}
	res.Totals = totals
	res.Duration = time.Since(start)

	calc.logger.Debug().
		Str("run_id", res.RunID.String()).
		Int("farm_id", s.Farm.ID).
		Dur("duration", res.Duration).
		Msg("scenario evaluated")
	return res, nil
}

// RunBatch evaluates independent scenarios with at most workers running at
// once. Results are returned in input order. The first error cancels the
// remaining scenarios and is returned.
func RunBatch(ctx context.Context, calc *Calculator, scenarios []livestock.Scenario, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range scenarios {
		i := i
		g.Go(func() error {
			r, err := Run(ctx, calc, scenarios[i])
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
