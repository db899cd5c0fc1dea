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

// CreateProduct persists a new product. Prices are stored as integer
// base units.
func (s *SQLiteStore) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if product.CreatedAt == 0 {
		product.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO products (id, org_id, name, barcode, price, purchase_price, stock, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		product.ID, product.OrgID, product.Name, product.Barcode,
		baseUnits(product.Price), baseUnits(product.PurchasePrice),
		product.Stock, product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func scanProduct(scan func(dest ...any) error) (*models.Product, error) {
	product := &models.Product{}
	var price, purchasePrice int64
	if err := scan(&product.ID, &product.OrgID, &product.Name, &product.Barcode,
		&price, &purchasePrice, &product.Stock, &product.CreatedAt); err != nil {
		return nil, err
	}
	product.Price = money.ToMajorUnits(price)
	product.PurchasePrice = money.ToMajorUnits(purchasePrice)
	return product, nil
}

// GetProduct retrieves a product by ID within one organization.
func (s *SQLiteStore) GetProduct(ctx context.Context, orgID, id string) (*models.Product, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, org_id, name, barcode, price, purchase_price, stock, created_at FROM products WHERE org_id = ? AND id = ?",
		orgID, id,
	)

	product, err := scanProduct(row.Scan)
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// ListProducts retrieves all products of one organization.
func (s *SQLiteStore) ListProducts(ctx context.Context, orgID string) ([]*models.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, org_id, name, barcode, price, purchase_price, stock, created_at FROM products WHERE org_id = ? ORDER BY name",
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// UpdateProduct updates an existing product's mutable fields.
func (s *SQLiteStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE products SET name = ?, barcode = ?, price = ?, purchase_price = ?, stock = ? WHERE org_id = ? AND id = ?",
		product.Name, product.Barcode,
		baseUnits(product.Price), baseUnits(product.PurchasePrice),
		product.Stock, product.OrgID, product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteProduct removes a product by ID within one organization.
func (s *SQLiteStore) DeleteProduct(ctx context.Context, orgID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM products WHERE org_id = ? AND id = ?",
		orgID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	return nil
}
