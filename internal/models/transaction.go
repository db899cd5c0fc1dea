package models

import "github.com/shopspring/decimal"

// Transaction is one movement of money in the organization's ledger.
type Transaction struct {
	ID    string
	OrgID string

	// InvoiceID links the transaction to an invoice payment when set.
	InvoiceID string

	// Amount is signed: positive for income, negative for
	// refunds/debits.
	Amount decimal.Decimal

	Note      string
	CreatedAt int64
	CreatedBy string
}
