package models

import "github.com/shopspring/decimal"

// InvoiceKind selects which price field of a line item counts.
type InvoiceKind string

const (
	// InvoiceSale uses each item's selling Price.
	InvoiceSale InvoiceKind = "SALE"
	// InvoicePurchase uses each item's PurchasePrice.
	InvoicePurchase InvoiceKind = "PURCHASE"
)

// Valid reports whether k is a known invoice kind.
func (k InvoiceKind) Valid() bool {
	return k == InvoiceSale || k == InvoicePurchase
}

// InvoiceItem is one line of an invoice. Each line carries its own
// discounts: a percentage of the line subtotal plus a fixed amount.
type InvoiceItem struct {
	ID        string
	ProductID string

	// Price is the selling price per unit (used for SALE invoices).
	Price decimal.Decimal

	// PurchasePrice is the cost per unit (used for PURCHASE invoices).
	PurchasePrice decimal.Decimal

	// Quantity is the unit count, never negative.
	Quantity int64

	// DiscountPercent is 0..100, applied to the line subtotal.
	DiscountPercent decimal.Decimal

	// DiscountAmount is a fixed discount in major units. It is not
	// clamped: an amount exceeding the line subtotal yields a
	// negative line total.
	DiscountAmount decimal.Decimal
}

// Invoice is a sale or purchase document. Subtotal, Total and
// Remaining are derived from the items and discounts by the invoice
// calculator; they are stored for listing but recomputed on write.
type Invoice struct {
	ID         string
	OrgID      string
	CustomerID string
	Kind       InvoiceKind
	Items      []InvoiceItem

	// DiscountPercent and DiscountAmount apply at the invoice level,
	// after the per-item discounts.
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal

	// Paid is the amount received so far.
	Paid decimal.Decimal

	Subtotal  decimal.Decimal
	Total     decimal.Decimal
	Remaining decimal.Decimal

	CreatedAt int64
	CreatedBy string
}
