package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/money"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

// CreateInvoice persists an invoice and its line items in one
// transaction.
func (s *SQLiteStore) CreateInvoice(ctx context.Context, inv *models.Invoice) error {
	// Generate IDs if not set
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt == 0 {
		inv.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var customerID interface{}
	if inv.CustomerID != "" {
		customerID = inv.CustomerID
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO invoices (id, org_id, customer_id, kind, discount_percent, discount_amount,
		                       paid, subtotal, total, remaining, created_at, created_by)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.OrgID, customerID, inv.Kind,
		inv.DiscountPercent.String(), baseUnits(inv.DiscountAmount),
		baseUnits(inv.Paid), baseUnits(inv.Subtotal), baseUnits(inv.Total), baseUnits(inv.Remaining),
		inv.CreatedAt, inv.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}

	for i := range inv.Items {
		item := &inv.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}

		var productID interface{}
		if item.ProductID != "" {
			productID = item.ProductID
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO invoice_items (id, invoice_id, product_id, price, purchase_price,
			                            quantity, discount_percent, discount_amount)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			item.ID, inv.ID, productID,
			baseUnits(item.Price), baseUnits(item.PurchasePrice),
			item.Quantity, item.DiscountPercent.String(), baseUnits(item.DiscountAmount),
		)
		if err != nil {
			return fmt.Errorf("failed to insert invoice item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetInvoice retrieves an invoice by ID within one organization,
// including all line items.
func (s *SQLiteStore) GetInvoice(ctx context.Context, orgID, id string) (*models.Invoice, error) {
	inv, err := s.scanInvoiceRow(s.db.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, kind, discount_percent, discount_amount,
		        paid, subtotal, total, remaining, created_at, created_by
		 FROM invoices WHERE org_id = ? AND id = ?`,
		orgID, id,
	).Scan)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	items, err := s.loadItems(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items

	return inv, nil
}

// ListInvoices retrieves all invoices of one organization, newest
// first, including line items.
func (s *SQLiteStore) ListInvoices(ctx context.Context, orgID string) ([]*models.Invoice, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, org_id, customer_id, kind, discount_percent, discount_amount,
		        paid, subtotal, total, remaining, created_at, created_by
		 FROM invoices WHERE org_id = ? ORDER BY created_at DESC`,
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*models.Invoice
	for rows.Next() {
		inv, err := s.scanInvoiceRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoices: %w", err)
	}

	for _, inv := range invoices {
		items, err := s.loadItems(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		inv.Items = items
	}

	return invoices, nil
}

func (s *SQLiteStore) scanInvoiceRow(scan func(dest ...any) error) (*models.Invoice, error) {
	inv := &models.Invoice{}
	var customerID sql.NullString
	var percent string
	var discountAmount, paid, subtotal, total, remaining int64

	if err := scan(&inv.ID, &inv.OrgID, &customerID, &inv.Kind, &percent, &discountAmount,
		&paid, &subtotal, &total, &remaining, &inv.CreatedAt, &inv.CreatedBy); err != nil {
		return nil, err
	}

	if customerID.Valid {
		inv.CustomerID = customerID.String
	}
	inv.DiscountPercent = money.ParseOrZero(percent)
	inv.DiscountAmount = money.ToMajorUnits(discountAmount)
	inv.Paid = money.ToMajorUnits(paid)
	inv.Subtotal = money.ToMajorUnits(subtotal)
	inv.Total = money.ToMajorUnits(total)
	inv.Remaining = money.ToMajorUnits(remaining)

	return inv, nil
}

func (s *SQLiteStore) loadItems(ctx context.Context, invoiceID string) ([]models.InvoiceItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, product_id, price, purchase_price, quantity, discount_percent, discount_amount
		 FROM invoice_items WHERE invoice_id = ?`,
		invoiceID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice items: %w", err)
	}
	defer rows.Close()

	var items []models.InvoiceItem
	for rows.Next() {
		var item models.InvoiceItem
		var productID sql.NullString
		var percent string
		var price, purchasePrice, discountAmount int64

		if err := rows.Scan(&item.ID, &productID, &price, &purchasePrice,
			&item.Quantity, &percent, &discountAmount); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item: %w", err)
		}

		if productID.Valid {
			item.ProductID = productID.String
		}
		item.Price = money.ToMajorUnits(price)
		item.PurchasePrice = money.ToMajorUnits(purchasePrice)
		item.DiscountPercent = money.ParseOrZero(percent)
		item.DiscountAmount = money.ToMajorUnits(discountAmount)

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate invoice items: %w", err)
	}

	return items, nil
}
