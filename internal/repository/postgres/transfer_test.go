package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository/postgres"
)

func TestTransferRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewTransferRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		tr := &domain.Transfer{
			Reference:     "ref-1",
			FromAccountID: 1,
			ToAccountID:   2,
			AmountCents:   500,
			Status:        domain.TransferStatusPending,
		}

		mock.ExpectQuery("INSERT INTO bm_transfers").
			WithArgs(tr.Reference, tr.FromAccountID, tr.ToAccountID, tr.AmountCents,
				nil, nil, tr.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(6))

		err := repo.Create(ctx, tr)
		assert.NoError(t, err)
		assert.Equal(t, int64(6), tr.ID)
	})
}

func TestTransferRepository_ListPendingBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewTransferRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		cutoff := time.Now().Add(-10 * time.Minute)
		rows := sqlmock.NewRows([]string{"id", "reference", "from_account_id", "to_account_id", "amount_cents",
			"debit_transaction_id", "credit_transaction_id", "status", "created_on", "updated_on"}).
			AddRow(6, "ref-1", 1, 2, 500, int64(11), nil, "PENDING", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM bm_transfers WHERE status").
			WithArgs(domain.TransferStatusPending, cutoff).
			WillReturnRows(rows)

		transfers, err := repo.ListPendingBefore(ctx, cutoff)
		assert.NoError(t, err)
		assert.Len(t, transfers, 1)
		assert.Equal(t, int64(11), *transfers[0].DebitTransactionID)
		assert.Nil(t, transfers[0].CreditTransactionID)
	})
}

func TestTransferRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewTransferRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		debitID := int64(11)
		creditID := int64(12)
		tr := &domain.Transfer{
			ID:                  6,
			DebitTransactionID:  &debitID,
			CreditTransactionID: &creditID,
			Status:              domain.TransferStatusCompleted,
		}

		mock.ExpectExec("UPDATE bm_transfers SET").
			WithArgs(debitID, creditID, tr.Status, sqlmock.AnyArg(), tr.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, tr)
		assert.NoError(t, err)
	})
}
