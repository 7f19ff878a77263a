package postgres

import (
	"context"
	"database/sql"
	"time"

	"bankledger-backend/internal/domain"
	"bankledger-backend/internal/repository"
)

type repaymentRepository struct {
	db *sql.DB
}

func NewRepaymentRepository(db *sql.DB) repository.RepaymentRepository {
	return &repaymentRepository{db: db}
}

func (r *repaymentRepository) Create(ctx context.Context, rp *domain.Repayment) error {
	query := `INSERT INTO bm_loan_repayments (loan_id, amount_cents, payment_date, status)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	if rp.PaymentDate.IsZero() {
		rp.PaymentDate = time.Now()
	}
	return r.db.QueryRowContext(ctx, query, rp.LoanID, rp.AmountCents, rp.PaymentDate, rp.Status).Scan(&rp.ID)
}

func (r *repaymentRepository) ListByLoan(ctx context.Context, loanID int64) ([]domain.Repayment, error) {
	query := `SELECT id, loan_id, amount_cents, payment_date, status FROM bm_loan_repayments
	          WHERE loan_id = $1 ORDER BY payment_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repayments []domain.Repayment
	for rows.Next() {
		var rp domain.Repayment
		if err := rows.Scan(&rp.ID, &rp.LoanID, &rp.AmountCents, &rp.PaymentDate, &rp.Status); err != nil {
			return nil, err
		}
		repayments = append(repayments, rp)
	}
	return repayments, rows.Err()
}

func (r *repaymentRepository) SumByLoan(ctx context.Context, loanID int64) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM bm_loan_repayments WHERE loan_id = $1`
	err := r.db.QueryRowContext(ctx, query, loanID).Scan(&sum)
	return sum, err
}
