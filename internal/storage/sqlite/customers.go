package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

// CreateCustomer persists a new customer.
func (s *SQLiteStore) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}
	if customer.CreatedAt == 0 {
		customer.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO customers (id, org_id, name, phone, address, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		customer.ID, customer.OrgID, customer.Name, customer.Phone, customer.Address, customer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetCustomer retrieves a customer by ID within one organization.
func (s *SQLiteStore) GetCustomer(ctx context.Context, orgID, id string) (*models.Customer, error) {
	customer := &models.Customer{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, org_id, name, phone, address, created_at FROM customers WHERE org_id = ? AND id = ?",
		orgID, id,
	).Scan(&customer.ID, &customer.OrgID, &customer.Name, &customer.Phone, &customer.Address, &customer.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// ListCustomers retrieves all customers of one organization.
func (s *SQLiteStore) ListCustomers(ctx context.Context, orgID string) ([]*models.Customer, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, org_id, name, phone, address, created_at FROM customers WHERE org_id = ? ORDER BY name",
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		customer := &models.Customer{}
		if err := rows.Scan(&customer.ID, &customer.OrgID, &customer.Name, &customer.Phone, &customer.Address, &customer.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate customers: %w", err)
	}

	return customers, nil
}

// UpdateCustomer updates an existing customer's mutable fields.
func (s *SQLiteStore) UpdateCustomer(ctx context.Context, customer *models.Customer) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE customers SET name = ?, phone = ?, address = ? WHERE org_id = ? AND id = ?",
		customer.Name, customer.Phone, customer.Address, customer.OrgID, customer.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteCustomer removes a customer by ID within one organization.
func (s *SQLiteStore) DeleteCustomer(ctx context.Context, orgID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM customers WHERE org_id = ? AND id = ?",
		orgID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	return nil
}
