package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const confirmationMessage = "Transaction confirmed"

type BalanceCheck struct {
	Balance decimal.Decimal
}

type Deduction struct {
	NewBalance decimal.Decimal
}

type Confirmation struct {
	Message string
	TxID    string
}

// Steps holds the three simulated transfer stages. Each stage waits its configured delay,
// may fail artificially, and otherwise returns a fabricated result.
type Steps struct {
	Config Config
	Faults FaultInjector
	Now    func() time.Time
}

// NewSteps builds the stages. A nil injector means no artificial failures; a nil clock uses time.Now.
func NewSteps(cfg Config, faults FaultInjector, now func() time.Time) Steps {
	if faults == nil {
		faults = NoFaults{}
	}
	if now == nil {
		now = time.Now
	}
	return Steps{
		Config: cfg,
		Faults: faults,
		Now:    now,
	}
}

// CheckBalance succeeds when the user's balance covers amount. Unknown users have a zero balance.
// The network fault is rolled before the comparison, so it can mask insufficient funds.
func (s Steps) CheckBalance(ctx context.Context, userID string, amount decimal.Decimal) (BalanceCheck, error) {
	if err := wait(ctx, s.Config.BalanceCheck.Delay); err != nil {
		return BalanceCheck{}, err
	}

	balance, ok := s.Config.balanceSheet()[userID]
	if !ok {
		balance = decimal.Zero
	}

	if s.Faults.ShouldFail(StepBalanceCheck, s.Config.BalanceCheck.FailureRate) {
		return BalanceCheck{}, ErrNetwork
	}

	if balance.LessThan(amount) {
		return BalanceCheck{}, ErrInsufficientFunds
	}

	return BalanceCheck{Balance: balance}, nil
}

// DeductAmount computes the post-transfer balance from the fixed deduction baseline, floored at zero.
// It does not look at the balance returned by CheckBalance.
func (s Steps) DeductAmount(ctx context.Context, _ string, amount decimal.Decimal) (Deduction, error) {
	if err := wait(ctx, s.Config.Deduction.Delay); err != nil {
		return Deduction{}, err
	}

	if s.Faults.ShouldFail(StepDeduction, s.Config.Deduction.FailureRate) {
		return Deduction{}, ErrProcessing
	}

	baseline := decimal.NewFromInt(s.Config.DeductionBaseline)

	return Deduction{NewBalance: decimal.Max(decimal.Zero, baseline.Sub(amount))}, nil
}

// ConfirmTransaction issues a TX-<unix millis> id. Two confirmations in the same millisecond share an id.
func (s Steps) ConfirmTransaction(ctx context.Context, _ string, _ decimal.Decimal, _ decimal.Decimal) (Confirmation, error) {
	if err := wait(ctx, s.Config.Confirmation.Delay); err != nil {
		return Confirmation{}, err
	}

	if s.Faults.ShouldFail(StepConfirmation, s.Config.Confirmation.FailureRate) {
		return Confirmation{}, ErrConfirmation
	}

	return Confirmation{
		Message: confirmationMessage,
		TxID:    fmt.Sprintf("TX-%d", s.Now().UnixMilli()),
	}, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
