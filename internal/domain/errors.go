package domain

import "errors"

// Ledger failure taxonomy. Services wrap store-level errors into these
// sentinels at the ledger boundary; callers match with errors.Is and never
// see driver-specific error shapes.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidAmount = errors.New("amount must be positive")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrLoanNotFound     = errors.New("loan not found")
	ErrEmployeeNotFound = errors.New("employee not found")

	ErrDuplicateEmail = errors.New("email already exists")

	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNonZeroBalance    = errors.New("account balance must be zero to close")
	ErrAlreadyClosed     = errors.New("account already closed")
	ErrAccountClosed     = errors.New("account is closed")
	ErrSameAccount       = errors.New("source and destination accounts are the same")

	ErrCustomerHasDependents = errors.New("customer has existing accounts or loans")

	// ErrConflict signals an optimistic-concurrency collision on a balance
	// update; the account ledger retries it a bounded number of times before
	// surfacing it.
	ErrConflict = errors.New("concurrent balance update")

	// ErrStoreUnavailable covers backing-store timeouts and failures.
	ErrStoreUnavailable = errors.New("store unavailable")
)
