package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bankledger-backend/internal/domain"
)

// MockCustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, name, email, phone, city, address string) (*domain.Customer, error) {
	args := m.Called(ctx, name, email, phone, city, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) SearchCustomers(ctx context.Context, email, city string) ([]domain.Customer, error) {
	args := m.Called(ctx, email, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountService
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

// MockTransferService
type MockTransferService struct {
	mock.Mock
}

func (m *MockTransferService) Transfer(ctx context.Context, fromAccountID, toAccountID, amountCents int64) (*domain.Transfer, error) {
	args := m.Called(ctx, fromAccountID, toAccountID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

// MockLoanService
type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) ApplyForLoan(ctx context.Context, customerID int64, loanType string, principalCents int64, interestRate float64) (*domain.Loan, error) {
	args := m.Called(ctx, customerID, loanType, principalCents, interestRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) MakeRepayment(ctx context.Context, loanID, amountCents int64) (*domain.Repayment, int64, error) {
	args := m.Called(ctx, loanID, amountCents)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(*domain.Repayment), args.Get(1).(int64), args.Error(2)
}
func (m *MockLoanService) GetLoan(ctx context.Context, loanID int64) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) GetLoansByCustomer(ctx context.Context, customerID int64) ([]domain.Loan, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListAllLoans(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListRepayments(ctx context.Context, loanID int64) ([]domain.Repayment, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Repayment), args.Error(1)
}
func (m *MockLoanService) RemainingBalance(ctx context.Context, loanID int64) (int64, error) {
	args := m.Called(ctx, loanID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmployeeService
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) AddEmployee(ctx context.Context, name, role, email, phone, password string) (*domain.Employee, error) {
	args := m.Called(ctx, name, role, email, phone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
