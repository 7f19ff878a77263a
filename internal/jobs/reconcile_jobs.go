package jobs

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/logger"
)

// RepairStalePendingTransfers resolves transfers whose saga died mid-flight:
// PENDING rows older than the staleness cutoff. Each one is driven to
// COMPLETED (credit leg present or re-playable) or REVERSED (debit refunded),
// so no withdrawal is ever left without a matching deposit.
func (jr *JobRunner) RepairStalePendingTransfers() {
	jr.runWithRecovery("repair-stale-pending-transfers", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		cutoff := time.Now().Add(-jr.config.Reconciliation.TransferStaleness())
		stale, err := jr.store.TransferRepository.ListPendingBefore(ctx, cutoff)
		if err != nil {
			logger.Error("failed to list stale transfers", "error", err)
			return
		}
		for i := range stale {
			jr.repairTransfer(ctx, &stale[i])
		}
	})
}

func (jr *JobRunner) repairTransfer(ctx context.Context, tr *domain.Transfer) {
	log := logger.Get().With("transfer_id", tr.ID, "reference", tr.Reference)

	// Recover leg ids from the transaction log; the saga may have crashed
	// before recording them on the transfer row.
	if tr.DebitTransactionID == nil {
		debit, err := jr.store.TransactionRepository.FindByReference(ctx, tr.FromAccountID, tr.Reference, domain.TransactionTypeWithdraw)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Nothing committed: retire the intent row.
				tr.Status = domain.TransferStatusReversed
				if err := jr.store.TransferRepository.Update(ctx, tr); err != nil {
					log.Error("failed to retire empty transfer intent", "error", err)
				}
				return
			}
			log.Error("failed to look up debit leg", "error", err)
			return
		}
		tr.DebitTransactionID = &debit.ID
	}

	if tr.CreditTransactionID == nil {
		credit, err := jr.store.TransactionRepository.FindByReference(ctx, tr.ToAccountID, tr.Reference, domain.TransactionTypeDeposit)
		if err == nil {
			tr.CreditTransactionID = &credit.ID
		} else if !errors.Is(err, sql.ErrNoRows) {
			log.Error("failed to look up credit leg", "error", err)
			return
		}
	}

	if tr.CreditTransactionID != nil {
		tr.Status = domain.TransferStatusCompleted
		if err := jr.store.TransferRepository.Update(ctx, tr); err != nil {
			log.Error("failed to mark transfer completed", "error", err)
			return
		}
		log.Info("transfer repaired: both legs were committed")
		return
	}

	// Debit committed, credit missing. Before replaying the credit, check for
	// a compensating deposit on the source: the saga may have refunded the
	// debit and only lost the terminal status write. Crediting the destination
	// on top of that refund would mint money.
	_, refundErr := jr.store.TransactionRepository.FindByReference(ctx, tr.FromAccountID, tr.Reference, domain.TransactionTypeDeposit)
	if refundErr == nil {
		tr.Status = domain.TransferStatusReversed
		if err := jr.store.TransferRepository.Update(ctx, tr); err != nil {
			log.Error("failed to mark refunded transfer reversed", "error", err)
			return
		}
		log.Info("transfer repaired: prior refund found, intent retired")
		return
	}
	if !errors.Is(refundErr, sql.ErrNoRows) {
		log.Error("failed to look up prior refund", "error", refundErr)
		return
	}

	// No refund stands: replay the credit.
	creditTx, _, err := jr.accounts.DepositWithReference(ctx, tr.ToAccountID, tr.AmountCents, tr.Reference)
	if err == nil {
		tr.CreditTransactionID = &creditTx.ID
		tr.Status = domain.TransferStatusCompleted
		if err := jr.store.TransferRepository.Update(ctx, tr); err != nil {
			log.Error("failed to mark repaired transfer completed", "error", err)
			return
		}
		log.Info("transfer repaired: credit leg replayed")
		return
	}

	// Credit still cannot land (destination closed or gone): refund the source.
	if _, _, err := jr.accounts.DepositWithReference(ctx, tr.FromAccountID, tr.AmountCents, tr.Reference); err != nil {
		log.Error("transfer repair failed on both credit and refund; will retry next run", "error", err)
		return
	}
	tr.Status = domain.TransferStatusReversed
	if err := jr.store.TransferRepository.Update(ctx, tr); err != nil {
		log.Error("failed to mark transfer reversed", "error", err)
		return
	}
	log.Warn("transfer reversed during repair: source refunded")
}

// SweepRepaidLoans transitions PENDING loans whose cumulative repayments
// reached the principal but whose in-line status reconciliation failed.
func (jr *JobRunner) SweepRepaidLoans() {
	jr.runWithRecovery("sweep-repaid-loans", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		loans, err := jr.store.LoanRepository.ListByStatus(ctx, domain.LoanStatusPending)
		if err != nil {
			logger.Error("failed to list pending loans", "error", err)
			return
		}
		for _, loan := range loans {
			repaid, err := jr.store.RepaymentRepository.SumByLoan(ctx, loan.ID)
			if err != nil {
				logger.Error("failed to sum repayments", "loan_id", loan.ID, "error", err)
				continue
			}
			if repaid < loan.PrincipalCents {
				continue
			}
			err = jr.store.LoanRepository.UpdateStatus(ctx, loan.ID, domain.LoanStatusPending, domain.LoanStatusPaid)
			if err != nil && !errors.Is(err, domain.ErrConflict) {
				logger.Error("failed to mark loan paid", "loan_id", loan.ID, "error", err)
				continue
			}
			logger.Info("loan marked paid during sweep", "loan_id", loan.ID, "repaid_cents", repaid)
		}
	})
}

// VerifyAccountBalances cross-checks every stored balance against the net of
// its transaction log. Drift is logged for operator attention, never silently
// corrected.
func (jr *JobRunner) VerifyAccountBalances() {
	jr.runWithRecovery("verify-account-balances", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		accounts, err := jr.store.AccountRepository.ListAll(ctx)
		if err != nil {
			logger.Error("failed to list accounts", "error", err)
			return
		}
		var drifted int
		for _, account := range accounts {
			net, err := jr.store.TransactionRepository.NetCentsByAccount(ctx, account.ID)
			if err != nil {
				logger.Error("failed to compute net transactions", "account_id", account.ID, "error", err)
				continue
			}
			if net != account.BalanceCents {
				drifted++
				logger.Error("balance drift detected",
					"account_id", account.ID,
					"balance_cents", account.BalanceCents,
					"transaction_net_cents", net)
			}
		}
		logger.Info("balance verification finished", "accounts", len(accounts), "drifted", drifted)
	})
}
