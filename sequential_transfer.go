package main

import (
	"context"
)

type SequentialTransferProcessor struct {
	Steps Steps
}

func NewSequentialTransferProcessor(steps Steps) SequentialTransferProcessor {
	return SequentialTransferProcessor{Steps: steps}
}

// Transfer runs the three stages in order on the calling goroutine and stops at the first error.
func (p SequentialTransferProcessor) Transfer(ctx context.Context, req TransferRequest) (TransferResult, error) {
	check, err := p.Steps.CheckBalance(ctx, req.UserID, req.Amount)
	if err != nil {
		return TransferResult{}, err
	}

	deduction, err := p.Steps.DeductAmount(ctx, req.UserID, req.Amount)
	if err != nil {
		return TransferResult{}, err
	}

	confirmation, err := p.Steps.ConfirmTransaction(ctx, req.UserID, req.Amount, deduction.NewBalance)
	if err != nil {
		return TransferResult{}, err
	}

	return newTransferResult(req, check, deduction, confirmation), nil
}
