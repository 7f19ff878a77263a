package postgres

import (
	"context"
	"database/sql"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type transferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) repository.TransferRepository {
	return &transferRepository{db: db}
}

const transferColumns = `id, reference, from_account_id, to_account_id, amount_cents, debit_transaction_id, credit_transaction_id, status, created_on, updated_on`

func (r *transferRepository) Create(ctx context.Context, tr *domain.Transfer) error {
	query := `INSERT INTO bm_transfers (reference, from_account_id, to_account_id, amount_cents, debit_transaction_id, credit_transaction_id, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	tr.CreatedOn = now
	tr.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query, tr.Reference, tr.FromAccountID, tr.ToAccountID, tr.AmountCents,
		tr.DebitTransactionID, tr.CreditTransactionID, tr.Status, now, now).Scan(&tr.ID)
}

func (r *transferRepository) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM bm_transfers WHERE id = $1`
	return scanTransfer(r.db.QueryRowContext(ctx, query, id))
}

func (r *transferRepository) Update(ctx context.Context, tr *domain.Transfer) error {
	query := `UPDATE bm_transfers SET debit_transaction_id = $1, credit_transaction_id = $2, status = $3, updated_on = $4 WHERE id = $5`
	tr.UpdatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, tr.DebitTransactionID, tr.CreditTransactionID, tr.Status, tr.UpdatedOn, tr.ID)
	return err
}

func (r *transferRepository) ListPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM bm_transfers WHERE status = $1 AND updated_on < $2 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, domain.TransferStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []domain.Transfer
	for rows.Next() {
		tr, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, *tr)
	}
	return transfers, rows.Err()
}

func scanTransfer(row interface{ Scan(...any) error }) (*domain.Transfer, error) {
	tr := &domain.Transfer{}
	var debitID, creditID sql.NullInt64
	err := row.Scan(&tr.ID, &tr.Reference, &tr.FromAccountID, &tr.ToAccountID, &tr.AmountCents,
		&debitID, &creditID, &tr.Status, &tr.CreatedOn, &tr.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if debitID.Valid {
		tr.DebitTransactionID = &debitID.Int64
	}
	if creditID.Valid {
		tr.CreditTransactionID = &creditID.Int64
	}
	return tr, nil
}
