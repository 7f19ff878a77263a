package postgres

import (
	"context"
	"database/sql"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `id, customer_id, loan_type, principal_cents, interest_rate, status, created_on`

func scanLoan(row interface{ Scan(...any) error }) (*domain.Loan, error) {
	l := &domain.Loan{}
	var createdOn time.Time
	err := row.Scan(&l.ID, &l.CustomerID, &l.Type, &l.PrincipalCents, &l.InterestRate, &l.Status, &createdOn)
	if err != nil {
		return nil, err
	}
	l.CreatedOn = createdOn.Format("2006-01-02")
	return l, nil
}

func (r *loanRepository) Create(ctx context.Context, l *domain.Loan) error {
	query := `INSERT INTO bm_loans (customer_id, loan_type, principal_cents, interest_rate, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	l.CreatedOn = now.Format("2006-01-02")
	return r.db.QueryRowContext(ctx, query, l.CustomerID, l.Type, l.PrincipalCents, l.InterestRate, l.Status, now).Scan(&l.ID)
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM bm_loans WHERE id = $1`
	return scanLoan(r.db.QueryRowContext(ctx, query, id))
}

func (r *loanRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM bm_loans WHERE customer_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLoans(rows)
}

func (r *loanRepository) ListAll(ctx context.Context) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM bm_loans ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLoans(rows)
}

func (r *loanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM bm_loans WHERE status = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLoans(rows)
}

// UpdateStatus is status-guarded so two repayments racing on the same loan
// cannot both drive the PENDING -> PAID transition.
func (r *loanRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.LoanStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bm_loans SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
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

func collectLoans(rows *sql.Rows) ([]domain.Loan, error) {
	var loans []domain.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, *l)
	}
	return loans, rows.Err()
}
