package postgres

import (
	"database/sql"

	"bankledger-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.AccountRepository
	repository.TransactionRepository
	repository.TransferRepository
	repository.LoanRepository
	repository.RepaymentRepository
	repository.EmployeeRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		CustomerRepository:    NewCustomerRepository(db),
		AccountRepository:     NewAccountRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		TransferRepository:    NewTransferRepository(db),
		LoanRepository:        NewLoanRepository(db),
		RepaymentRepository:   NewRepaymentRepository(db),
		EmployeeRepository:    NewEmployeeRepository(db),
	}
}
