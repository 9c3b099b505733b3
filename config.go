package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type StepConfig struct {
	Delay       time.Duration `yaml:"delay"`
	FailureRate float64       `yaml:"failure_rate"`
}

type Config struct {
	BalanceCheck      StepConfig       `yaml:"balance_check"`
	Deduction         StepConfig       `yaml:"deduction"`
	Confirmation      StepConfig       `yaml:"confirmation"`
	Balances          map[string]int64 `yaml:"balances"`
	DeductionBaseline int64            `yaml:"deduction_baseline"`
}

// DefaultConfig returns the stock simulation: three users, fixed delays and small failure rates.
func DefaultConfig() Config {
	return Config{
		BalanceCheck: StepConfig{Delay: 300 * time.Millisecond, FailureRate: 0.05},
		Deduction:    StepConfig{Delay: 250 * time.Millisecond, FailureRate: 0.04},
		Confirmation: StepConfig{Delay: 200 * time.Millisecond, FailureRate: 0.03},
		Balances: map[string]int64{
			"alice":   1200,
			"bob":     50,
			"charlie": 500,
		},
		DeductionBaseline: 1000,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the file keep their
// default value; a balances block replaces the default balance sheet entirely.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	defaults := cfg.Balances
	cfg.Balances = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Balances == nil {
		cfg.Balances = defaults
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	steps := []struct {
		step Step
		cfg  StepConfig
	}{
		{StepBalanceCheck, c.BalanceCheck},
		{StepDeduction, c.Deduction},
		{StepConfirmation, c.Confirmation},
	}
	for _, s := range steps {
		step, sc := s.step, s.cfg
		if sc.Delay < 0 {
			return fmt.Errorf("%s: negative delay %s", step, sc.Delay)
		}
		if sc.FailureRate < 0 || sc.FailureRate > 1 {
			return fmt.Errorf("%s: failure rate %v outside [0, 1]", step, sc.FailureRate)
		}
	}
	return nil
}

// balanceSheet builds a fresh user -> balance map, so no call can observe another call's state.
func (c Config) balanceSheet() map[string]decimal.Decimal {
	sheet := make(map[string]decimal.Decimal, len(c.Balances))
	for userID, balance := range c.Balances {
		sheet[userID] = decimal.NewFromInt(balance)
	}
	return sheet
}
