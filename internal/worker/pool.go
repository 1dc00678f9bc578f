// Package worker provides a small fixed-size pool for running
// independent jobs concurrently. Document parsing is the only consumer;
// the synthesis path itself stays single-threaded.
package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution
type Result interface {
	Err() error
}

// Pool runs jobs across a fixed number of workers
type Pool struct {
	workers int
}

// NewPool creates a pool with the specified number of workers
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run executes all jobs and returns their results in completion order.
// Callers that need input order must carry an index inside the result.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	jobCh := make(chan Job)
	resCh := make(chan Result, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				select {
				case <-ctx.Done():
					return
				default:
				}
				resCh <- job.Execute(ctx)
			}
		}()
	}

	for _, job := range jobs {
		select {
		case jobCh <- job:
		case <-ctx.Done():
		}
	}
	close(jobCh)
	wg.Wait()
	close(resCh)

	results := make([]Result, 0, len(jobs))
	for res := range resCh {
		results = append(results, res)
	}
	return results
}
