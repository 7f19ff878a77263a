package service

import (
	"context"
	"errors"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/logger"
	"bankledger-backend/internal/repository"
)

type accountService struct {
	accountRepo  repository.AccountRepository
	txRepo       repository.TransactionRepository
	customerRepo repository.CustomerRepository
	storeTimeout time.Duration
}

func NewAccountService(
	accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository,
	customerRepo repository.CustomerRepository,
	storeTimeout time.Duration,
) AccountService {
	return &accountService{
		accountRepo:  accountRepo,
		txRepo:       txRepo,
		customerRepo: customerRepo,
		storeTimeout: storeTimeout,
	}
}

func (s *accountService) OpenAccount(ctx context.Context, customerID int64, accountType domain.AccountType) (*domain.Account, error) {
	if customerID <= 0 || accountType == "" {
		return nil, domain.ErrInvalidInput
	}
	if !domain.ValidAccountType(accountType) {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}

	account := &domain.Account{
		CustomerID:   customerID,
		Type:         accountType,
		BalanceCents: 0,
		Status:       domain.AccountStatusActive,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	return account, nil
}

func (s *accountService) CloseAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrAccountNotFound)
	}
	if account.Status == domain.AccountStatusClosed {
		return nil, domain.ErrAlreadyClosed
	}
	if account.BalanceCents != 0 {
		return nil, domain.ErrNonZeroBalance
	}
	if err := s.accountRepo.UpdateStatus(ctx, accountID, domain.AccountStatusClosed); err != nil {
		return nil, mapStoreErr(err, domain.ErrAccountNotFound)
	}
	account.Status = domain.AccountStatusClosed
	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrAccountNotFound)
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, customerID int64) ([]domain.Account, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	accounts, err := s.accountRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrCustomerNotFound)
	}
	return accounts, nil
}

func (s *accountService) Deposit(ctx context.Context, accountID, amountCents int64) (*domain.Transaction, int64, error) {
	return s.mutate(ctx, accountID, amountCents, domain.TransactionTypeDeposit, "")
}

func (s *accountService) Withdraw(ctx context.Context, accountID, amountCents int64) (*domain.Transaction, int64, error) {
	return s.mutate(ctx, accountID, amountCents, domain.TransactionTypeWithdraw, "")
}

func (s *accountService) DepositWithReference(ctx context.Context, accountID, amountCents int64, reference string) (*domain.Transaction, int64, error) {
	return s.mutate(ctx, accountID, amountCents, domain.TransactionTypeDeposit, reference)
}

func (s *accountService) WithdrawWithReference(ctx context.Context, accountID, amountCents int64, reference string) (*domain.Transaction, int64, error) {
	return s.mutate(ctx, accountID, amountCents, domain.TransactionTypeWithdraw, reference)
}

// mutate is the single balance write path. Each attempt reads the current
// balance immediately before the conditional update, so a raced write shows
// up as zero rows affected rather than a lost update. The audit row is
// appended after the balance commits; if that append fails the balance change
// is reverted so the ledger never drifts from its transaction log.
func (s *accountService) mutate(ctx context.Context, accountID, amountCents int64, txType domain.TransactionType, reference string) (*domain.Transaction, int64, error) {
	if amountCents <= 0 {
		return nil, 0, domain.ErrInvalidAmount
	}

	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	var lastErr error = domain.ErrConflict
	for attempt := 0; attempt < balanceRetries; attempt++ {
		account, err := s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, 0, mapStoreErr(err, domain.ErrAccountNotFound)
		}
		if account.Status != domain.AccountStatusActive {
			return nil, 0, domain.ErrAccountClosed
		}

		newBalance := account.BalanceCents + amountCents
		if txType == domain.TransactionTypeWithdraw {
			if account.BalanceCents < amountCents {
				return nil, 0, domain.ErrInsufficientFunds
			}
			newBalance = account.BalanceCents - amountCents
		}

		err = s.accountRepo.UpdateBalance(ctx, accountID, account.BalanceCents, newBalance)
		if errors.Is(err, domain.ErrConflict) {
			lastErr = domain.ErrConflict
			continue
		}
		if err != nil {
			return nil, 0, mapStoreErr(err, domain.ErrAccountNotFound)
		}

		tx := &domain.Transaction{
			AccountID:   accountID,
			Type:        txType,
			AmountCents: amountCents,
			Reference:   reference,
		}
		if err := s.txRepo.Create(ctx, tx); err != nil {
			s.revertBalance(accountID, newBalance, account.BalanceCents)
			return nil, 0, mapStoreErr(err, domain.ErrAccountNotFound)
		}
		return tx, newBalance, nil
	}
	return nil, 0, lastErr
}

// revertBalance undoes a committed balance write whose audit append failed.
// Best effort: a conflict here means another writer has already moved the
// balance, which the nightly balance verification will flag.
func (s *accountService) revertBalance(accountID, from, to int64) {
	// The caller's context may already be dead (the audit append often fails
	// on its deadline), so the revert runs on a fresh one.
	ctx, cancel := withStoreTimeout(context.Background(), s.storeTimeout)
	defer cancel()
	for attempt := 0; attempt < balanceRetries; attempt++ {
		err := s.accountRepo.UpdateBalance(ctx, accountID, from, to)
		if err == nil {
			return
		}
		if !errors.Is(err, domain.ErrConflict) {
			logger.Error("failed to revert balance after audit append failure",
				"account_id", accountID, "error", err)
			return
		}
	}
	logger.Error("balance revert lost optimistic-concurrency race; drift left for reconciliation",
		"account_id", accountID)
}

func (s *accountService) GetTransactionHistory(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, mapStoreErr(err, domain.ErrAccountNotFound)
	}
	txs, err := s.txRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrAccountNotFound)
	}
	return txs, nil
}

func (s *accountService) ListAllTransactions(ctx context.Context, limit int32) ([]domain.Transaction, error) {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}
	txs, err := s.txRepo.ListAll(ctx, limit)
	if err != nil {
		return nil, mapStoreErr(err, domain.ErrStoreUnavailable)
	}
	return txs, nil
}
