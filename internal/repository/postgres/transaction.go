package postgres

import (
	"context"
	"database/sql"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, account_id, transaction_type, amount_cents, COALESCE(reference, ''), created_on`

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO bm_transactions (account_id, transaction_type, amount_cents, reference, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	tx.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, tx.AccountID, tx.Type, tx.AmountCents, tx.Reference, tx.CreatedOn).Scan(&tx.ID)
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID int64) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM bm_transactions WHERE account_id = $1 ORDER BY created_on DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *transactionRepository) ListAll(ctx context.Context, limit int32) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM bm_transactions ORDER BY created_on DESC, id DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *transactionRepository) NetCentsByAccount(ctx context.Context, accountID int64) (int64, error) {
	var net int64
	query := `SELECT COALESCE(SUM(CASE WHEN transaction_type = 'DEPOSIT' THEN amount_cents ELSE -amount_cents END), 0)
	          FROM bm_transactions WHERE account_id = $1`
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&net)
	return net, err
}

func (r *transactionRepository) FindByReference(ctx context.Context, accountID int64, reference string, txType domain.TransactionType) (*domain.Transaction, error) {
	var tx domain.Transaction
	query := `SELECT ` + transactionColumns + ` FROM bm_transactions WHERE account_id = $1 AND reference = $2 AND transaction_type = $3 ORDER BY id LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, accountID, reference, txType).
		Scan(&tx.ID, &tx.AccountID, &tx.Type, &tx.AmountCents, &tx.Reference, &tx.CreatedOn)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func collectTransactions(rows *sql.Rows) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.AccountID, &tx.Type, &tx.AmountCents, &tx.Reference, &tx.CreatedOn); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
