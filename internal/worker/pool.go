// Package worker provides the small concurrency primitives the tuner and
// fetcher need: a bounded job pool and a per-host rate limiter.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of one job.
type Result interface {
	GetError() error
}

// Pool runs jobs on a fixed number of goroutines.
type Pool struct {
	workers int
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// NewPool creates a pool with the given worker count (minimum one).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
	}
}

// Start launches the workers. They exit when the job channel is closed or
// the context is cancelled.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case job, ok := <-p.jobs:
					if !ok {
						return
					}
					select {
					case p.results <- job.Execute(ctx):
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}
}

// Submit queues a job. Blocks when the queue is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Results returns the channel job outcomes arrive on.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Close signals that no more jobs will be submitted and closes the results
// channel once the workers drain the queue.
func (p *Pool) Close() {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		close(p.results)
	}()
}

// RunAll is the convenience path for batch workloads: it feeds all jobs
// through a pool and collects every result.
func RunAll(ctx context.Context, workers int, jobs []Job) []Result {
	pool := NewPool(workers)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				return
			case pool.jobs <- job:
			}
		}
	}()

	results := make([]Result, 0, len(jobs))
	for r := range pool.Results() {
		results = append(results, r)
	}
	return results
}
