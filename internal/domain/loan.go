package domain

import "time"

type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "PENDING"
	LoanStatusApproved  LoanStatus = "APPROVED"
	LoanStatusPaid      LoanStatus = "PAID"
	LoanStatusDefaulted LoanStatus = "DEFAULTED"
)

type Loan struct {
	ID             int64      `json:"id"`
	CustomerID     int64      `json:"customer_id"`
	Type           string     `json:"type"`
	PrincipalCents int64      `json:"principal_cents"`
	InterestRate   float64    `json:"interest_rate"`
	Status         LoanStatus `json:"status"`
	CreatedOn      string     `json:"created_on"`
}

type RepaymentStatus string

const RepaymentStatusPaid RepaymentStatus = "PAID"

// Repayment is append-only; the sum of a loan's repayments determines its
// remaining balance.
type Repayment struct {
	ID          int64           `json:"id"`
	LoanID      int64           `json:"loan_id"`
	AmountCents int64           `json:"amount_cents"`
	PaymentDate time.Time       `json:"payment_date"`
	Status      RepaymentStatus `json:"status"`
}
