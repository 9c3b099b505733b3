// Worker Pool Pattern:
// Fixed workload: every transfer job is known before the run starts
// Jobs do not depend on each other, so their delays overlap
// Outcomes are reported in completion order, not submission order

package main

import (
	"context"
	"sync"
)

// TransferJob pairs a request with the processor that should run it.
type TransferJob struct {
	Label     string
	Processor TransferProcessor
	Request   TransferRequest
}

type TransferOutcome struct {
	Job    TransferJob
	Result TransferResult
	Err    error
}

// BatchRunner runs independent transfer jobs on a worker pool
type BatchRunner struct {
	WorkerCount int
	OnOutcome   func(TransferOutcome)
}

// NewBatchRunner creates a runner. A non-positive worker count runs every job at once.
func NewBatchRunner(workerCount int, onOutcome func(TransferOutcome)) BatchRunner {
	return BatchRunner{
		WorkerCount: workerCount,
		OnOutcome:   onOutcome,
	}
}

// Run executes all jobs and returns one outcome per job
func (r BatchRunner) Run(ctx context.Context, jobs []TransferJob) []TransferOutcome {
	workerCount := r.WorkerCount
	if workerCount <= 0 || workerCount > len(jobs) {
		workerCount = len(jobs)
	}

	pending := make(chan TransferJob, len(jobs))
	results := make(chan TransferOutcome, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go r.worker(ctx, &wg, pending, results)
	}

	for _, job := range jobs {
		pending <- job
	}
	close(pending)

	go func() {
		wg.Wait()
		close(results)
	}()

	outcomes := make([]TransferOutcome, 0, len(jobs))
	for outcome := range results {
		if r.OnOutcome != nil {
			r.OnOutcome(outcome)
		}
		outcomes = append(outcomes, outcome)
	}

	return outcomes
}

// worker drains the job channel. A cancelled context still yields an outcome per job, carrying ctx.Err().
func (r BatchRunner) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan TransferJob, results chan<- TransferOutcome) {
	defer wg.Done()

	for job := range jobs {
		result, err := job.Processor.Transfer(ctx, job.Request)
		results <- TransferOutcome{Job: job, Result: result, Err: err}
	}
}
