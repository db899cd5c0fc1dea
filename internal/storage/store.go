// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/amrbashir/erp-system-sub001/internal/models"
)

// ErrNotFound is returned when a requested record does not exist
// within the caller's organization.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for ERP persistence operations.
// This abstraction allows swapping storage backends (SQLite,
// PostgreSQL, etc.) without changing the service layer.
//
// Every read and write below the organization level takes the owning
// organization's ID: records of other tenants are invisible, and a
// lookup that crosses tenants reports ErrNotFound.
type Store interface {
	// CreateOrganization persists a new tenant.
	CreateOrganization(ctx context.Context, org *models.Organization) error

	// GetOrganizationBySlug retrieves a tenant by its URL slug.
	// Returns (nil, nil) when no such organization exists.
	GetOrganizationBySlug(ctx context.Context, slug string) (*models.Organization, error)

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by username within one
	// organization. Returns (nil, nil) when not found.
	GetUserByUsername(ctx context.Context, orgID, username string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when not found.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	CreateCustomer(ctx context.Context, customer *models.Customer) error
	GetCustomer(ctx context.Context, orgID, id string) (*models.Customer, error)
	ListCustomers(ctx context.Context, orgID string) ([]*models.Customer, error)
	UpdateCustomer(ctx context.Context, customer *models.Customer) error
	DeleteCustomer(ctx context.Context, orgID, id string) error

	CreateProduct(ctx context.Context, product *models.Product) error
	GetProduct(ctx context.Context, orgID, id string) (*models.Product, error)
	ListProducts(ctx context.Context, orgID string) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, orgID, id string) error

	// CreateInvoice persists an invoice together with its line items
	// in one transaction. The invoice.ID field will be populated by
	// the store.
	CreateInvoice(ctx context.Context, inv *models.Invoice) error
	GetInvoice(ctx context.Context, orgID, id string) (*models.Invoice, error)
	ListInvoices(ctx context.Context, orgID string) ([]*models.Invoice, error)

	CreateExpense(ctx context.Context, expense *models.Expense) error
	ListExpenses(ctx context.Context, orgID string) ([]*models.Expense, error)
	DeleteExpense(ctx context.Context, orgID, id string) error

	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	ListTransactions(ctx context.Context, orgID string) ([]*models.Transaction, error)

	// Close releases any resources held by the store.
	Close() error
}
