// Package worker runs independent jobs on a fixed number of goroutines.
package worker

import (
	"context"
	"errors"
	"sync"

	"github.com/osse101/BaroCatalog_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Pool represents a worker pool
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup

	mu   sync.Mutex
	errs []error
}

// NewPool creates a new worker pool. A worker count below one is treated as one.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers. Jobs run with ctx; once it is cancelled the remaining
// queued jobs are drained without being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()
	for job := range p.jobQueue {
		if err := ctx.Err(); err != nil {
			p.fail(err)
			continue
		}
		if err := job.Process(ctx); err != nil {
			logger.FromContext(ctx).Debug(LogMsgWorkerJobFailed, "error", err)
			p.fail(err)
		}
	}
}

func (p *Pool) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errs = append(p.errs, err)
}

// Enqueue adds a job to the queue, blocking while the queue is full.
// It must not be called after Stop.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop closes the queue, waits for every queued job to finish and returns the
// joined job errors.
func (p *Pool) Stop() error {
	close(p.jobQueue)
	p.wg.Wait()

	p.mu.Lock()
	defer p.mu.Unlock()
	return errors.Join(p.errs...)
}
