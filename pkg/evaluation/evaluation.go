// Package evaluation runs a problem's objective function over a batch of
// solutions.
package evaluation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mihai-snyk/paretokit/pkg/framework"
)

// Evaluator fills objectives and constraints of every solution in the batch.
// Implementations return once the whole batch is done.
type Evaluator interface {
	Evaluate(ctx context.Context, batch []*framework.Solution, problem framework.Problem) error
}

// Sequential evaluates in order on the calling goroutine.
type Sequential struct{}

func (Sequential) Evaluate(_ context.Context, batch []*framework.Solution, problem framework.Problem) error {
	for i, s := range batch {
		if err := problem.Evaluate(s); err != nil {
			return fmt.Errorf("evaluating solution %d: %w", i, err)
		}
	}
	return nil
}

// Parallel splits the batch into Workers contiguous chunks and evaluates
// them concurrently. The problem must be safe for concurrent use. When a
// chunk fails the others stop at their next solution and the first error is
// returned.
type Parallel struct {
	// Workers defaults to runtime.NumCPU() when not positive.
	Workers int
}

func (p Parallel) Evaluate(ctx context.Context, batch []*framework.Solution, problem framework.Problem) error {
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(batch) {
		workers = len(batch)
	}
	if workers <= 1 {
		return Sequential{}.Evaluate(ctx, batch, problem)
	}

	// A generation is never abandoned halfway: cancellation of the run is
	// observed by the loop between generations.
	g, gctx := errgroup.WithContext(context.WithoutCancel(ctx))
	chunk := (len(batch) + workers - 1) / workers
	for start := 0; start < len(batch); start += chunk {
		end := min(start+chunk, len(batch))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if gctx.Err() != nil {
					return nil
				}
				if err := problem.Evaluate(batch[i]); err != nil {
					return fmt.Errorf("evaluating solution %d: %w", i, err)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
