package domain

type Customer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	Address   string `json:"address,omitempty"`
	CreatedOn string `json:"created_on"`
}

// CustomerPatch carries the updatable customer fields. Nil means leave as is.
type CustomerPatch struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	City    *string `json:"city,omitempty"`
	Address *string `json:"address,omitempty"`
}

func (p CustomerPatch) Empty() bool {
	return p.Name == nil && p.Phone == nil && p.City == nil && p.Address == nil
}
