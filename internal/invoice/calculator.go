// Package invoice derives invoice totals from line items and
// discounts. Every function is pure and total: zero-value discounts
// behave as no discount, and nothing here returns an error or panics.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/amrbashir/erp-system-sub001/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// ItemDiscount is the breakdown of one line's discount.
type ItemDiscount struct {
	// PercentDiscount is subtotal × discountPercent/100.
	PercentDiscount decimal.Decimal
	// TotalDiscount is PercentDiscount plus the fixed discount amount.
	TotalDiscount decimal.Decimal
}

// ItemSubtotal computes price × quantity.
func ItemSubtotal(price decimal.Decimal, quantity int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(quantity))
}

// CalculateItemDiscount computes the percentage and total discount for
// a line subtotal.
func CalculateItemDiscount(subtotal, discountPercent, discountAmount decimal.Decimal) ItemDiscount {
	percent := subtotal.Mul(discountPercent).Div(oneHundred)
	return ItemDiscount{
		PercentDiscount: percent,
		TotalDiscount:   percent.Add(discountAmount),
	}
}

// ItemTotal computes one line's total: subtotal minus its discounts.
// A fixed discount exceeding the subtotal yields a negative total;
// no clamping is applied.
func ItemTotal(price decimal.Decimal, quantity int64, discountPercent, discountAmount decimal.Decimal) decimal.Decimal {
	subtotal := ItemSubtotal(price, quantity)
	return subtotal.Sub(CalculateItemDiscount(subtotal, discountPercent, discountAmount).TotalDiscount)
}

// itemPrice selects the price field the invoice kind counts.
// A PURCHASE invoice reads PurchasePrice; anything else reads Price.
func itemPrice(item models.InvoiceItem, kind models.InvoiceKind) decimal.Decimal {
	if kind == models.InvoicePurchase {
		return item.PurchasePrice
	}
	return item.Price
}

// Subtotal sums the line totals of all items, selecting the price
// field by invoice kind. A missing price is the zero decimal.
func Subtotal(items []models.InvoiceItem, kind models.InvoiceKind) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(ItemTotal(itemPrice(item, kind), item.Quantity, item.DiscountPercent, item.DiscountAmount))
	}
	return sum
}

// PercentDiscount computes the invoice-level percentage discount on a
// subtotal.
func PercentDiscount(subtotal, discountPercent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(discountPercent).Div(oneHundred)
}

// Total applies the invoice-level discounts to a subtotal.
func Total(subtotal, discountPercent, discountAmount decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(PercentDiscount(subtotal, discountPercent)).Sub(discountAmount)
}

// Remaining computes the balance still owed: total minus paid.
func Remaining(total, paid decimal.Decimal) decimal.Decimal {
	return total.Sub(paid)
}

// Derive fills in the computed fields of an invoice from its items,
// discounts and paid amount. The input is not mutated.
func Derive(inv models.Invoice) models.Invoice {
	inv.Subtotal = Subtotal(inv.Items, inv.Kind)
	inv.Total = Total(inv.Subtotal, inv.DiscountPercent, inv.DiscountAmount)
	inv.Remaining = Remaining(inv.Total, inv.Paid)
	return inv
}
