package service

import (
	"context"

	"bankledger-backend/internal/domain"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, name, email, phone, city, address string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SearchCustomers(ctx context.Context, email, city string) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

// AccountService is the account ledger: it owns the balance invariants and is
// the only writer of account balances and transaction records.
type AccountService interface {
	OpenAccount(ctx context.Context, customerID int64, accountType domain.AccountType) (*domain.Account, error)
	CloseAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	ListAccounts(ctx context.Context, customerID int64) ([]domain.Account, error)

	Deposit(ctx context.Context, accountID, amountCents int64) (*domain.Transaction, int64, error)
	Withdraw(ctx context.Context, accountID, amountCents int64) (*domain.Transaction, int64, error)
	// Reference-tagged variants used by the transfer coordinator to correlate
	// the two legs of a transfer.
	DepositWithReference(ctx context.Context, accountID, amountCents int64, reference string) (*domain.Transaction, int64, error)
	WithdrawWithReference(ctx context.Context, accountID, amountCents int64, reference string) (*domain.Transaction, int64, error)

	GetTransactionHistory(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	ListAllTransactions(ctx context.Context, limit int32) ([]domain.Transaction, error)
}

// TransferService composes a withdrawal and a deposit into one logical unit
// with all-or-nothing semantics.
type TransferService interface {
	Transfer(ctx context.Context, fromAccountID, toAccountID, amountCents int64) (*domain.Transfer, error)
}

type LoanService interface {
	ApplyForLoan(ctx context.Context, customerID int64, loanType string, principalCents int64, interestRate float64) (*domain.Loan, error)
	MakeRepayment(ctx context.Context, loanID, amountCents int64) (*domain.Repayment, int64, error)
	GetLoan(ctx context.Context, loanID int64) (*domain.Loan, error)
	GetLoansByCustomer(ctx context.Context, customerID int64) ([]domain.Loan, error)
	ListAllLoans(ctx context.Context) ([]domain.Loan, error)
	ListRepayments(ctx context.Context, loanID int64) ([]domain.Repayment, error)
	RemainingBalance(ctx context.Context, loanID int64) (int64, error)
}

type EmployeeService interface {
	AddEmployee(ctx context.Context, name, role, email, phone, password string) (*domain.Employee, error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
}
