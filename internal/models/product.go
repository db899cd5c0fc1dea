package models

import "github.com/shopspring/decimal"

// Product is an item the organization stocks and sells.
type Product struct {
	ID    string
	OrgID string
	Name  string

	// Barcode is optional; empty means none assigned.
	Barcode string

	// Price is the selling price per unit, in major units.
	Price decimal.Decimal

	// PurchasePrice is the acquisition cost per unit, in major units.
	PurchasePrice decimal.Decimal

	// Stock is the on-hand quantity.
	Stock int64

	CreatedAt int64
}
