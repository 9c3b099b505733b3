package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const statusComplete = "Transaction complete"

var (
	ErrNetwork           = errors.New("Network error while checking balance")
	ErrInsufficientFunds = errors.New("Insufficient funds")
	ErrProcessing        = errors.New("Processing error while deducting amount")
	ErrConfirmation      = errors.New("Confirmation failed")
)

type TransferProcessor interface {
	Transfer(context.Context, TransferRequest) (TransferResult, error)
}

type TransferRequest struct {
	ID     uuid.UUID
	UserID string
	Amount decimal.Decimal
}

func NewTransferRequest(userID string, amount decimal.Decimal) TransferRequest {
	return TransferRequest{
		ID:     uuid.New(),
		UserID: userID,
		Amount: amount,
	}
}

type TransferResult struct {
	RequestID           uuid.UUID
	Status              string
	UserID              string
	Amount              decimal.Decimal
	PreviousBalance     decimal.Decimal
	NewBalance          decimal.Decimal
	ConfirmationMessage string
	TxID                string
}

// newTransferResult assembles the result of a transfer whose three stages all succeeded.
func newTransferResult(req TransferRequest, check BalanceCheck, deduction Deduction, confirmation Confirmation) TransferResult {
	return TransferResult{
		RequestID:           req.ID,
		Status:              statusComplete,
		UserID:              req.UserID,
		Amount:              req.Amount,
		PreviousBalance:     check.Balance,
		NewBalance:          deduction.NewBalance,
		ConfirmationMessage: confirmation.Message,
		TxID:                confirmation.TxID,
	}
}

func (r TransferResult) String() string {
	return fmt.Sprintf(
		"{status: %q, userId: %q, amount: %s, previousBalance: %s, newBalance: %s, confirmationMessage: %q, txId: %q}",
		r.Status,
		r.UserID,
		r.Amount,
		r.PreviousBalance,
		r.NewBalance,
		r.ConfirmationMessage,
		r.TxID,
	)
}
