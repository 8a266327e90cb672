// Package runner executes batches of puzzle selectors with bounded parallelism.
package runner

import (
	"context"
	"runtime"

	"github.com/illBeRoy/advent-2022/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// SolveFunc computes the result for a single selector.
type SolveFunc func(ctx context.Context, sel domain.Selector) (domain.Result, error)

// Outcome is the terminal state of one selector in a batch run.
type Outcome struct {
	Selector domain.Selector
	Result   domain.Result
	Err      error
}

// Runner fans a batch of selectors out over a bounded worker pool. Solvers
// themselves stay serial; only distinct selectors run concurrently.
type Runner struct {
	workers int
}

// New creates a Runner sized to the machine's CPU count.
func New() *Runner {
	return &Runner{workers: runtime.NumCPU()}
}

// Run solves every selector and returns the outcomes in the order the
// selectors were given. A failing selector is recorded in its outcome and
// never aborts the others.
func (r *Runner) Run(ctx context.Context, selectors []domain.Selector, solve SolveFunc) []Outcome {
	outcomes := make([]Outcome, len(selectors))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(r.workers)

	for i, sel := range selectors {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				outcomes[i] = Outcome{Selector: sel, Err: err}
				return nil
			}

			result, err := solve(ctx, sel)
			outcomes[i] = Outcome{Selector: sel, Result: result, Err: err}
			return nil
		})
	}

	// Workers never return errors; failures live in the outcomes.
	_ = eg.Wait()

	return outcomes
}
