package domain

import "time"

type TransactionType string

const (
	TransactionTypeDeposit  TransactionType = "DEPOSIT"
	TransactionTypeWithdraw TransactionType = "WITHDRAW"
)

// Transaction is an append-only audit record, one row per ledger mutation.
// Reference correlates the two legs of a transfer; empty otherwise.
type Transaction struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"account_id"`
	Type        TransactionType `json:"type"`
	AmountCents int64           `json:"amount_cents"` // always positive, Type carries direction
	Reference   string          `json:"reference,omitempty"`
	CreatedOn   time.Time       `json:"created_on"`
}

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "PENDING"
	TransferStatusCompleted TransferStatus = "COMPLETED"
	TransferStatusReversed  TransferStatus = "REVERSED"
)

// Transfer is the write-ahead intent record for a two-leg money movement.
// It is inserted PENDING before the debit and only leaves PENDING once both
// legs are committed (COMPLETED) or the debit has been compensated (REVERSED).
type Transfer struct {
	ID                  int64          `json:"id"`
	Reference           string         `json:"reference"`
	FromAccountID       int64          `json:"from_account_id"`
	ToAccountID         int64          `json:"to_account_id"`
	AmountCents         int64          `json:"amount_cents"`
	DebitTransactionID  *int64         `json:"debit_transaction_id,omitempty"`
	CreditTransactionID *int64         `json:"credit_transaction_id,omitempty"`
	Status              TransferStatus `json:"status"`
	CreatedOn           time.Time      `json:"created_on"`
	UpdatedOn           time.Time      `json:"updated_on"`
}
