package models

// Customer is a party the organization sells to or buys from.
type Customer struct {
	ID        string
	OrgID     string
	Name      string
	Phone     string
	Address   string
	CreatedAt int64
}
