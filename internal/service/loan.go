package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type loanService struct {
	loanRepo      repository.LoanRepository
	repaymentRepo repository.RepaymentRepository
	customerRepo  repository.CustomerRepository
	storeTimeout  time.Duration
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	repaymentRepo repository.RepaymentRepository,
	customerRepo repository.CustomerRepository,
	storeTimeout time.Duration,
) LoanService {
	return &loanService{
		loanRepo:      loanRepo,
		repaymentRepo: repaymentRepo,
		customerRepo:  customerRepo,
		storeTimeout:  storeTimeout,
	}
}

func (s *loanService) ApplyForLoan(ctx context.Context, customerID int64, loanType string, principalCents int64, interestRate float64) (*domain.Loan, error) {
	if customerID <= 0 || loanType == "" {
		return nil, domain.ErrInvalidInput
	}
	if principalCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if interestRate < 0 {
		return nil, fmt.Errorf("%w: interest rate must not be negative", domain.ErrInvalidInput)
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}

	loan := &domain.Loan{
		CustomerID:     customerID,
		Type:           loanType,
		PrincipalCents: principalCents,
		InterestRate:   interestRate,
		Status:         domain.LoanStatusPending,
	}
	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	return loan, nil
}

// MakeRepayment appends a repayment and reconciles the loan status: once the
// cumulative repaid amount reaches the principal the loan transitions
// PENDING -> PAID. Returns the repayment and the remaining balance.
func (s *loanService) MakeRepayment(ctx context.Context, loanID, amountCents int64) (*domain.Repayment, int64, error) {
	if amountCents <= 0 {
		return nil, 0, domain.ErrInvalidAmount
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, 0, mapStoreErr(err, domain.ErrLoanNotFound)
	}
	if loan.Status == domain.LoanStatusPaid {
		return nil, 0, fmt.Errorf("%w: loan is already paid off", domain.ErrInvalidInput)
	}

	repayment := &domain.Repayment{
		LoanID:      loanID,
		AmountCents: amountCents,
		Status:      domain.RepaymentStatusPaid,
	}
	if err := s.repaymentRepo.Create(ctx, repayment); err != nil {
		return nil, 0, mapStoreErr(err, domain.ErrLoanNotFound)
	}

	repaid, err := s.repaymentRepo.SumByLoan(ctx, loanID)
	if err != nil {
		return nil, 0, mapStoreErr(err, domain.ErrLoanNotFound)
	}

	if repaid >= loan.PrincipalCents && loan.Status == domain.LoanStatusPending {
		err := s.loanRepo.UpdateStatus(ctx, loanID, domain.LoanStatusPending, domain.LoanStatusPaid)
		// A conflict means a concurrent repayment already made the
		// transition; that is the desired end state.
		if err != nil && !errors.Is(err, domain.ErrConflict) {
			return nil, 0, mapStoreErr(err, domain.ErrLoanNotFound)
		}
	}

	remaining := loan.PrincipalCents - repaid
	if remaining < 0 {
		remaining = 0
	}
	return repayment, remaining, nil
}

func (s *loanService) GetLoan(ctx context.Context, loanID int64) (*domain.Loan, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrLoanNotFound)
	}
	return loan, nil
}

func (s *loanService) GetLoansByCustomer(ctx context.Context, customerID int64) ([]domain.Loan, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	loans, err := s.loanRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	return loans, nil
}

func (s *loanService) ListAllLoans(ctx context.Context) ([]domain.Loan, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	loans, err := s.loanRepo.ListAll(ctx)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrStoreUnavailable)
	}
	return loans, nil
}

func (s *loanService) ListRepayments(ctx context.Context, loanID int64) ([]domain.Repayment, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	if _, err := s.loanRepo.GetByID(ctx, loanID); err != nil {
		return nil, mapStoreErr(err, domain.ErrLoanNotFound)
	}
	repayments, err := s.repaymentRepo.ListByLoan(ctx, loanID)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrLoanNotFound)
	}
	return repayments, nil
}

func (s *loanService) RemainingBalance(ctx context.Context, loanID int64) (int64, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return 0, mapStoreErr(err, domain.ErrLoanNotFound)
	}
	repaid, err := s.repaymentRepo.SumByLoan(ctx, loanID)
	if err != nil {
		return 0, mapStoreErr(err, domain.ErrLoanNotFound)
	}
	remaining := loan.PrincipalCents - repaid
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
