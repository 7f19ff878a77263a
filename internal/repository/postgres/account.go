package postgres

import (
	"context"
	"database/sql"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, customer_id, account_type, balance_cents, status, created_on`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	a := &domain.Account{}
	var createdOn time.Time
	err := row.Scan(&a.ID, &a.CustomerID, &a.Type, &a.BalanceCents, &a.Status, &createdOn)
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	return a, nil
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO bm_accounts (customer_id, account_type, balance_cents, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	a.CreatedOn = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, a.CustomerID, a.Type, a.BalanceCents, a.Status, now).Scan(&a.ID)
}

func (r *accountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM bm_accounts WHERE id = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *accountRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM bm_accounts WHERE customer_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccounts(rows)
}

func (r *accountRepository) ListAll(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM bm_accounts ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAccounts(rows)
}

// UpdateBalance writes the new balance only if the stored balance still equals
// the value the caller read and the account is still ACTIVE. Zero rows
// affected means another writer got there first.
func (r *accountRepository) UpdateBalance(ctx context.Context, id int64, expectedBalance, newBalance int64) error {
	query := `UPDATE bm_accounts SET balance_cents = $1
	          WHERE id = $2 AND balance_cents = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, newBalance, id, expectedBalance, domain.AccountStatusActive)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *accountRepository) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bm_accounts SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func collectAccounts(rows *sql.Rows) ([]domain.Account, error) {
	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}
