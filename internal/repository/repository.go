package repository

import (
	"context"
	"time"

	"bankledger-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	List(ctx context.Context, limit int32) ([]domain.Customer, error)
	Search(ctx context.Context, email, city string) ([]domain.Customer, error)
	Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
	// HasDependents reports whether any account or loan references the customer.
	HasDependents(ctx context.Context, id int64) (bool, error)
}

type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
	ListAll(ctx context.Context) ([]domain.Account, error)
	// UpdateBalance performs a conditional write: the balance is set to
	// newBalance only if the stored value still equals expectedBalance and the
	// account is ACTIVE. A lost race surfaces as domain.ErrConflict.
	UpdateBalance(ctx context.Context, id int64, expectedBalance, newBalance int64) error
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error)
	ListAll(ctx context.Context, limit int32) ([]domain.Transaction, error)
	// NetCentsByAccount returns deposits minus withdrawals for one account.
	NetCentsByAccount(ctx context.Context, accountID int64) (int64, error)
	// FindByReference locates a transfer leg of the given type on an account.
	// The compensating deposit of a reversed transfer shares the reference
	// with the original withdrawal, so type is part of the key.
	FindByReference(ctx context.Context, accountID int64, reference string, txType domain.TransactionType) (*domain.Transaction, error)
}

type TransferRepository interface {
	Create(ctx context.Context, tr *domain.Transfer) error
	GetByID(ctx context.Context, id int64) (*domain.Transfer, error)
	Update(ctx context.Context, tr *domain.Transfer) error
	ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Transfer, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int64) (*domain.Loan, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Loan, error)
	ListAll(ctx context.Context) ([]domain.Loan, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error)
	// UpdateStatus transitions a loan only from the expected prior status,
	// guarding the PENDING -> PAID edge against concurrent repayments.
	UpdateStatus(ctx context.Context, id int64, from, to domain.LoanStatus) error
}

type RepaymentRepository interface {
	Create(ctx context.Context, rp *domain.Repayment) error
	ListByLoan(ctx context.Context, loanID int64) ([]domain.Repayment, error)
	SumByLoan(ctx context.Context, loanID int64) (int64, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
}
