package domain

type AccountType string

const (
	AccountTypeSavings  AccountType = "Savings"
	AccountTypeChecking AccountType = "Checking"
	AccountTypeCurrent  AccountType = "Current"
)

func ValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeCurrent:
		return true
	}
	return false
}

type AccountStatus string

const (
	AccountStatusActive AccountStatus = "ACTIVE"
	AccountStatusClosed AccountStatus = "CLOSED"
)

type Account struct {
	ID           int64         `json:"id"`
	CustomerID   int64         `json:"customer_id"`
	Type         AccountType   `json:"type"`
	BalanceCents int64         `json:"balance_cents"` // invariant: never negative
	Status       AccountStatus `json:"status"`
	CreatedOn    string        `json:"created_on"`
}
