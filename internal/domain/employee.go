package domain

type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"-"`
	CreatedOn    string `json:"created_on"`
}
