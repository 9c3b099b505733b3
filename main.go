package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

var (
	configPath = flag.String("config", "", "optional YAML file overriding delays, failure rates and balances")
	seed       = flag.Uint64("seed", 0, "fault injection seed (unset picks one from the clock)")
)

func main() {
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	steps := NewSteps(cfg, NewRandomFaults(faultSeed(flagSet("seed"), *seed, time.Now)), time.Now)
	chained := NewChainedTransferProcessor(steps)
	sequential := NewSequentialTransferProcessor(steps)

	jobs := []TransferJob{
		{Label: "Promise chain", Processor: chained, Request: NewTransferRequest("alice", decimal.NewFromInt(200))},
		{Label: "Async/await", Processor: sequential, Request: NewTransferRequest("bob", decimal.NewFromInt(30))},
		{Label: "Async/await", Processor: sequential, Request: NewTransferRequest("charlie", decimal.NewFromInt(200))},
	}

	runner := NewBatchRunner(len(jobs), logOutcome)
	runner.Run(context.Background(), jobs)
}

func logOutcome(outcome TransferOutcome) {
	if outcome.Err != nil {
		log.Printf("%s error: %s", outcome.Job.Label, outcome.Err)
		return
	}
	log.Printf("%s result: %s", outcome.Job.Label, outcome.Result)
}

// faultSeed returns the seed given on the command line, or one derived from the clock when none was given.
// Zero is a valid explicit seed.
func faultSeed(set bool, value uint64, now func() time.Time) uint64 {
	if set {
		return value
	}
	return uint64(now().UnixNano())
}

func flagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
