// Continuation Pattern:
// Each stage runs as a Future
// The next stage is attached with Then and only starts once the previous one resolved
// The first error short-circuits every continuation after it

package main

import (
	"context"
)

type ChainedTransferProcessor struct {
	Steps Steps
}

func NewChainedTransferProcessor(steps Steps) ChainedTransferProcessor {
	return ChainedTransferProcessor{Steps: steps}
}

func (p ChainedTransferProcessor) Transfer(ctx context.Context, req TransferRequest) (TransferResult, error) {
	checked := Async(ctx, func(ctx context.Context) (BalanceCheck, error) {
		return p.Steps.CheckBalance(ctx, req.UserID, req.Amount)
	})

	result := Then(ctx, checked, func(ctx context.Context, check BalanceCheck) (TransferResult, error) {
		deducted := Async(ctx, func(ctx context.Context) (Deduction, error) {
			return p.Steps.DeductAmount(ctx, req.UserID, req.Amount)
		})

		return Then(ctx, deducted, func(ctx context.Context, deduction Deduction) (TransferResult, error) {
			confirmed := Async(ctx, func(ctx context.Context) (Confirmation, error) {
				return p.Steps.ConfirmTransaction(ctx, req.UserID, req.Amount, deduction.NewBalance)
			})

			return Then(ctx, confirmed, func(_ context.Context, confirmation Confirmation) (TransferResult, error) {
				return newTransferResult(req, check, deduction, confirmation), nil
			}).Await(ctx)
		}).Await(ctx)
	})

	return result.Await(ctx)
}
