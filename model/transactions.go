package model

import (
	"time"
)

type TransactionKind string

const (
	// KindDeposit represents cash paid into an account.
	KindDeposit TransactionKind = "deposit"

	// KindWithdrawal represents cash taken out of an account.
	KindWithdrawal TransactionKind = "withdrawal"

	// KindTransferOut represents the debit side of a transfer.
	KindTransferOut TransactionKind = "transfer_out"

	// KindTransferIn represents the credit side of a transfer.
	KindTransferIn TransactionKind = "transfer_in"
)

// Transaction records a single balance movement together with the balance
// immediately after it was applied.
type Transaction struct {
	ID            string          `json:"id"`
	AccountNumber string          `json:"account_number"`
	Kind          TransactionKind `json:"kind"`
	Amount        float64         `json:"amount"`
	Remark        string          `json:"remark,omitempty"`
	BalanceAfter  float64         `json:"balance_after"`
	CreatedAt     time.Time       `json:"created_at"`
}
