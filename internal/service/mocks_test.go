package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"bankledger-backend/internal/domain"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context, limit int32) ([]domain.Customer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Search(ctx context.Context, email, city string) ([]domain.Customer, error) {
	args := m.Called(ctx, email, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) HasDependents(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ListAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) UpdateBalance(ctx context.Context, id int64, expectedBalance, newBalance int64) error {
	args := m.Called(ctx, id, expectedBalance, newBalance)
	return args.Error(0)
}
func (m *MockAccountRepo) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) ListByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) ListAll(ctx context.Context, limit int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) NetCentsByAccount(ctx context.Context, accountID int64) (int64, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTransactionRepo) FindByReference(ctx context.Context, accountID int64, reference string, txType domain.TransactionType) (*domain.Transaction, error) {
	args := m.Called(ctx, accountID, reference, txType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// MockTransferRepo
type MockTransferRepo struct {
	mock.Mock
}

func (m *MockTransferRepo) Create(ctx context.Context, tr *domain.Transfer) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}
func (m *MockTransferRepo) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}
func (m *MockTransferRepo) Update(ctx context.Context, tr *domain.Transfer) error {
	args := m.Called(ctx, tr)
	return args.Error(0)
}
func (m *MockTransferRepo) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Transfer, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transfer), args.Error(1)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Loan, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.LoanStatus) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

// MockRepaymentRepo
type MockRepaymentRepo struct {
	mock.Mock
}

func (m *MockRepaymentRepo) Create(ctx context.Context, rp *domain.Repayment) error {
	args := m.Called(ctx, rp)
	return args.Error(0)
}
func (m *MockRepaymentRepo) ListByLoan(ctx context.Context, loanID int64) ([]domain.Repayment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repayment), args.Error(1)
}
func (m *MockRepaymentRepo) SumByLoan(ctx context.Context, loanID int64) (int64, error) {
	args := m.Called(ctx, loanID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

// MockAccountService stands in for the account ledger when exercising the
// transfer coordinator.
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) OpenAccount(ctx context.Context, customerID int64, accountType domain.AccountType) (*domain.Account, error) {
	args := m.Called(ctx, customerID, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) CloseAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context, customerID int64) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) Deposit(ctx context.Context, accountID, amountCents int64) (*domain.Transaction, int64, error) {
	args := m.Called(ctx, accountID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(int64), args.Error(2)
}
func (m *MockAccountService) Withdraw(ctx context.Context, accountID, amountCents int64) (*domain.Transaction, int64, error) {
	args := m.Called(ctx, accountID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(int64), args.Error(2)
}
func (m *MockAccountService) DepositWithReference(ctx context.Context, accountID, amountCents int64, reference string) (*domain.Transaction, int64, error) {
	args := m.Called(ctx, accountID, amountCents, reference)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(int64), args.Error(2)
}
func (m *MockAccountService) WithdrawWithReference(ctx context.Context, accountID, amountCents int64, reference string) (*domain.Transaction, int64, error) {
	args := m.Called(ctx, accountID, amountCents, reference)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(int64), args.Error(2)
}
func (m *MockAccountService) GetTransactionHistory(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockAccountService) ListAllTransactions(ctx context.Context, limit int32) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
