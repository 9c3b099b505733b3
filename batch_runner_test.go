package main

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchRunner_Run(t *testing.T) {
	steps := instantSteps(NoFaults{})
	chained := NewChainedTransferProcessor(steps)
	sequential := NewSequentialTransferProcessor(steps)

	jobs := []TransferJob{
		{Label: "Promise chain", Processor: chained, Request: NewTransferRequest("alice", decimal.NewFromInt(200))},
		{Label: "Async/await", Processor: sequential, Request: NewTransferRequest("bob", decimal.NewFromInt(30))},
		{Label: "Async/await", Processor: sequential, Request: NewTransferRequest("bob", decimal.NewFromInt(200))},
	}

	var mu sync.Mutex
	reported := make(map[uuid.UUID]int)
	runner := NewBatchRunner(2, func(o TransferOutcome) {
		mu.Lock()
		defer mu.Unlock()
		reported[o.Job.Request.ID]++
	})

	outcomes := runner.Run(context.Background(), jobs)

	require.Len(t, outcomes, len(jobs))
	assert.Len(t, reported, len(jobs))
	for _, job := range jobs {
		assert.Equal(t, 1, reported[job.Request.ID], "Expected one report for %s", job.Request.ID)
	}

	byID := make(map[uuid.UUID]TransferOutcome)
	for _, o := range outcomes {
		byID[o.Job.Request.ID] = o
	}

	assert.NoError(t, byID[jobs[0].Request.ID].Err)
	assert.NoError(t, byID[jobs[1].Request.ID].Err)
	assert.ErrorIs(t, byID[jobs[2].Request.ID].Err, ErrInsufficientFunds)
	assert.Equal(t, "alice", byID[jobs[0].Request.ID].Result.UserID)
}

func TestBatchRunner_RunsJobsConcurrently(t *testing.T) {
	cfg := instantConfig()
	cfg.BalanceCheck.Delay = 100 * time.Millisecond
	processor := NewSequentialTransferProcessor(NewSteps(cfg, NoFaults{}, nil))

	jobs := make([]TransferJob, 5)
	for i := range jobs {
		jobs[i] = TransferJob{Label: "Async/await", Processor: processor, Request: NewTransferRequest("alice", decimal.NewFromInt(1))}
	}

	start := time.Now()
	outcomes := NewBatchRunner(0, nil).Run(context.Background(), jobs)

	assert.Len(t, outcomes, len(jobs))
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestBatchRunner_EmptyJobs(t *testing.T) {
	outcomes := NewBatchRunner(4, nil).Run(context.Background(), nil)

	assert.Empty(t, outcomes)
}

func TestBatchRunner_CancelledContext(t *testing.T) {
	processor := NewSequentialTransferProcessor(NewSteps(DefaultConfig(), NoFaults{}, nil))
	jobs := []TransferJob{
		{Label: "Async/await", Processor: processor, Request: NewTransferRequest("alice", decimal.NewFromInt(1))},
		{Label: "Async/await", Processor: processor, Request: NewTransferRequest("bob", decimal.NewFromInt(1))},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := NewBatchRunner(1, nil).Run(ctx, jobs)

	require.Len(t, outcomes, len(jobs))
	for _, o := range outcomes {
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
}

func BenchmarkBatchRunner_Run_DifferentWorkerCounts(b *testing.B) {
	processor := NewSequentialTransferProcessor(instantSteps(NoFaults{}))

	jobs := make([]TransferJob, 1000)
	for i := range jobs {
		jobs[i] = TransferJob{Label: "Async/await", Processor: processor, Request: NewTransferRequest("alice", decimal.NewFromInt(int64(i)))}
	}

	workerCounts := []int{1, 2, 4, 8}
	for _, workerCount := range workerCounts {
		b.Run(fmt.Sprintf("Workers_%d", workerCount), func(b *testing.B) {
			runner := NewBatchRunner(workerCount, nil)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				runner.Run(context.Background(), jobs)
			}
		})
	}
}
