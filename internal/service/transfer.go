package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/logger"
	"bankledger-backend/internal/repository"
)

// creditRetries bounds retries of the credit leg and of the compensating
// deposit before a transfer is left PENDING for the reconciliation job.
const creditRetries = 3

type transferService struct {
	accounts     AccountService
	transferRepo repository.TransferRepository
	storeTimeout time.Duration
}

func NewTransferService(accounts AccountService, transferRepo repository.TransferRepository, storeTimeout time.Duration) TransferService {
	return &transferService{
		accounts:     accounts,
		transferRepo: transferRepo,
		storeTimeout: storeTimeout,
	}
}

// Transfer moves amountCents from one account to another as a saga: a
// write-ahead intent row is committed first, then the debit, then the credit.
// A credit failure after a committed debit triggers a compensating deposit
// back to the source; the debit is never left standing without a matching
// credit or reversal. A transfer whose process died mid-flight, or whose
// debit outcome is unknown after a store failure, stays PENDING and the
// reconciliation job repairs it from the transaction log.
func (s *transferService) Transfer(ctx context.Context, fromAccountID, toAccountID, amountCents int64) (*domain.Transfer, error) {
	if amountCents <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if fromAccountID == toAccountID {
		return nil, domain.ErrSameAccount
	}

	transfer := &domain.Transfer{
		Reference:     uuid.NewString(),
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		AmountCents:   amountCents,
		Status:        domain.TransferStatusPending,
	}
	if err := s.createIntent(ctx, transfer); err != nil {
		return nil, err
	}

	debitTx, _, err := s.accounts.WithdrawWithReference(ctx, fromAccountID, amountCents, transfer.Reference)
	if err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) || errors.Is(err, domain.ErrConflict) {
			// Ambiguous outcome: the withdrawal may have committed before the
			// store call gave up. Leave the intent PENDING; the reconciliation
			// job resolves it from the transaction log either way.
			logger.Error("debit leg outcome unknown; leaving transfer PENDING for reconciliation",
				"transfer_id", transfer.ID, "reference", transfer.Reference, "error", err)
			return nil, err
		}
		// Definitive rejection, nothing committed: retire the intent row.
		s.finish(transfer, domain.TransferStatusReversed)
		return nil, err
	}
	transfer.DebitTransactionID = &debitTx.ID

	creditTx, creditErr := s.credit(ctx, toAccountID, amountCents, transfer.Reference)
	if creditErr == nil {
		transfer.CreditTransactionID = &creditTx.ID
		s.finish(transfer, domain.TransferStatusCompleted)
		return transfer, nil
	}

	// The debit is committed but the credit cannot land: compensate by
	// depositing the amount back into the source account.
	if s.compensate(transfer) {
		s.finish(transfer, domain.TransferStatusReversed)
		return nil, creditErr
	}

	// Compensation exhausted its retries. The transfer stays PENDING with the
	// debit leg recorded so the reconciliation job can repair it.
	logger.Error("transfer compensation failed; leaving PENDING for reconciliation",
		"transfer_id", transfer.ID, "reference", transfer.Reference)
	s.finish(transfer, domain.TransferStatusPending)
	return nil, creditErr
}

func (s *transferService) createIntent(ctx context.Context, transfer *domain.Transfer) error {
	ctx, cancel := withStoreTimeout(ctx, s.storeTimeout)
	defer cancel()
	if err := s.transferRepo.Create(ctx, transfer); err != nil {
		return mapStoreErr(err, domain.ErrAccountNotFound)
	}
	return nil
}

// credit runs the deposit leg, retrying transient store failures. Failures
// that cannot succeed on retry (destination missing or closed) abort at once.
func (s *transferService) credit(ctx context.Context, toAccountID, amountCents int64, reference string) (*domain.Transaction, error) {
	var lastErr error
	for attempt := 0; attempt < creditRetries; attempt++ {
		tx, _, err := s.accounts.DepositWithReference(ctx, toAccountID, amountCents, reference)
		if err == nil {
			return tx, nil
		}
		lastErr = err
		if !errors.Is(err, domain.ErrStoreUnavailable) && !errors.Is(err, domain.ErrConflict) {
			break
		}
	}
	return nil, lastErr
}

func (s *transferService) compensate(transfer *domain.Transfer) bool {
	// Fresh context: the original one may be what broke the credit leg.
	ctx, cancel := withStoreTimeout(context.Background(), s.storeTimeout)
	defer cancel()
	for attempt := 0; attempt < creditRetries; attempt++ {
		_, _, err := s.accounts.DepositWithReference(ctx, transfer.FromAccountID, transfer.AmountCents, transfer.Reference)
		if err == nil {
			logger.Warn("transfer reversed: credit leg failed, source account refunded",
				"transfer_id", transfer.ID, "reference", transfer.Reference)
			return true
		}
		if !errors.Is(err, domain.ErrStoreUnavailable) && !errors.Is(err, domain.ErrConflict) {
			logger.Error("transfer compensation hit a non-retryable failure",
				"transfer_id", transfer.ID, "error", err)
			return false
		}
	}
	return false
}

// finish records the terminal status of the saga. A failed status write is
// logged, not surfaced: the legs are already committed and the reconciliation
// job resolves stale PENDING rows from the transaction log.
func (s *transferService) finish(transfer *domain.Transfer, status domain.TransferStatus) {
	ctx, cancel := withStoreTimeout(context.Background(), s.storeTimeout)
	defer cancel()
	transfer.Status = status
	if err := s.transferRepo.Update(ctx, transfer); err != nil {
		logger.Error("failed to record transfer status",
			"transfer_id", transfer.ID, "status", status, "error", err)
	}
}
