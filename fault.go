package main

import (
	"math/rand/v2"
	"sync"
)

type Step string

const (
	StepBalanceCheck Step = "balance_check"
	StepDeduction    Step = "deduction"
	StepConfirmation Step = "confirmation"
)

// FaultInjector decides whether a stage fails artificially.
type FaultInjector interface {
	ShouldFail(step Step, rate float64) bool
}

// RandomFaults fails a stage with probability rate. Safe for concurrent use.
type RandomFaults struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomFaults(seed uint64) *RandomFaults {
	return &RandomFaults{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (f *RandomFaults) ShouldFail(_ Step, rate float64) bool {
	if rate <= 0 {
		return false
	}
	if rate >= 1 {
		return true
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.rng.Float64() < rate
}

type NoFaults struct{}

func (NoFaults) ShouldFail(Step, float64) bool {
	return false
}
