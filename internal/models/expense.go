package models

import "github.com/shopspring/decimal"

// Expense is a cost recorded outside of purchase invoices
// (rent, utilities, salaries).
type Expense struct {
	ID          string
	OrgID       string
	Description string

	// Amount is in major units, always non-negative.
	Amount decimal.Decimal

	CreatedAt int64
	CreatedBy string
}
