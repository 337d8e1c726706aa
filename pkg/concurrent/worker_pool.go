package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) (G, error)

// WorkerPool runs jobs on at most numWorkers goroutines. Results keep the order of the jobs.
type WorkerPool[T any, G any] struct {
	numWorkers int
}

func NewWorkerPool[T any, G any](numWorkers int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{numWorkers: numWorkers}
}

func (wp *WorkerPool[T, G]) NumWorkers() int {
	return wp.numWorkers
}

// Run stops scheduling new jobs after the first error and returns it.
func (wp *WorkerPool[T, G]) Run(ctx context.Context, jobs []T, jobFunc JobFunc[T, G]) ([]G, error) {
	results := make([]G, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := jobFunc(gctx, job)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
