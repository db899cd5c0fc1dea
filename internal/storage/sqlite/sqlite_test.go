package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "erp-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	org := &models.Organization{Slug: "acme", Name: "Acme Inc", Currency: "USD"}
	other := &models.Organization{Slug: "globex", Name: "Globex"}

	t.Run("CreateOrganization generates ID", func(t *testing.T) {
		if err := store.CreateOrganization(ctx, org); err != nil {
			t.Fatalf("CreateOrganization failed: %v", err)
		}
		if err := store.CreateOrganization(ctx, other); err != nil {
			t.Fatalf("CreateOrganization failed: %v", err)
		}

		if org.ID == "" {
			t.Error("Expected organization ID to be generated")
		}
		if org.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if other.Currency != "USD" {
			t.Errorf("Expected default currency USD, got %s", other.Currency)
		}
	})

	t.Run("GetOrganizationBySlug", func(t *testing.T) {
		got, err := store.GetOrganizationBySlug(ctx, "acme")
		if err != nil {
			t.Fatalf("GetOrganizationBySlug failed: %v", err)
		}
		if got == nil || got.ID != org.ID {
			t.Errorf("Got %+v, want organization %s", got, org.ID)
		}

		missing, err := store.GetOrganizationBySlug(ctx, "nope")
		if err != nil {
			t.Fatalf("GetOrganizationBySlug failed: %v", err)
		}
		if missing != nil {
			t.Errorf("Expected nil for unknown slug, got %+v", missing)
		}
	})

	t.Run("users are scoped per organization", func(t *testing.T) {
		user := models.NewUser(org.ID, "alice", models.RoleAdmin, "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		got, err := store.GetUserByUsername(ctx, org.ID, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if got == nil || got.ID != user.ID || got.Role != models.RoleAdmin {
			t.Errorf("Got %+v, want user %s", got, user.ID)
		}

		// Same username under another tenant is absent.
		crossTenant, err := store.GetUserByUsername(ctx, other.ID, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if crossTenant != nil {
			t.Errorf("Expected nil across tenants, got %+v", crossTenant)
		}
	})

	t.Run("customer CRUD", func(t *testing.T) {
		customer := &models.Customer{OrgID: org.ID, Name: "Bob", Phone: "123"}
		if err := store.CreateCustomer(ctx, customer); err != nil {
			t.Fatalf("CreateCustomer failed: %v", err)
		}

		customer.Phone = "456"
		if err := store.UpdateCustomer(ctx, customer); err != nil {
			t.Fatalf("UpdateCustomer failed: %v", err)
		}

		got, err := store.GetCustomer(ctx, org.ID, customer.ID)
		if err != nil {
			t.Fatalf("GetCustomer failed: %v", err)
		}
		if got.Phone != "456" {
			t.Errorf("Phone = %s, want 456", got.Phone)
		}

		// Cross-tenant lookup reports not found.
		if _, err := store.GetCustomer(ctx, other.ID, customer.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound across tenants, got %v", err)
		}

		if err := store.DeleteCustomer(ctx, org.ID, customer.ID); err != nil {
			t.Fatalf("DeleteCustomer failed: %v", err)
		}
		if err := store.DeleteCustomer(ctx, org.ID, customer.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for double delete, got %v", err)
		}
	})

	t.Run("product prices round-trip through base units", func(t *testing.T) {
		product := &models.Product{
			OrgID:         org.ID,
			Name:          "Widget",
			Price:         dec("19.99"),
			PurchasePrice: dec("12.50"),
			Stock:         7,
		}
		if err := store.CreateProduct(ctx, product); err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}

		got, err := store.GetProduct(ctx, org.ID, product.ID)
		if err != nil {
			t.Fatalf("GetProduct failed: %v", err)
		}
		if !got.Price.Equal(dec("19.99")) {
			t.Errorf("Price = %s, want 19.99", got.Price)
		}
		if !got.PurchasePrice.Equal(dec("12.50")) {
			t.Errorf("PurchasePrice = %s, want 12.50", got.PurchasePrice)
		}
		if got.Stock != 7 {
			t.Errorf("Stock = %d, want 7", got.Stock)
		}
	})

	t.Run("invoice with items round-trips", func(t *testing.T) {
		inv := &models.Invoice{
			OrgID:           org.ID,
			Kind:            models.InvoiceSale,
			DiscountPercent: dec("5"),
			DiscountAmount:  dec("10"),
			Paid:            dec("100"),
			Subtotal:        dec("200"),
			Total:           dec("180"),
			Remaining:       dec("80"),
			Items: []models.InvoiceItem{
				{Price: dec("100"), Quantity: 2, DiscountPercent: dec("10"), DiscountAmount: dec("0")},
				{Price: dec("20"), Quantity: 1},
			},
		}

		if err := store.CreateInvoice(ctx, inv); err != nil {
			t.Fatalf("CreateInvoice failed: %v", err)
		}
		if inv.ID == "" {
			t.Error("Expected invoice ID to be generated")
		}

		got, err := store.GetInvoice(ctx, org.ID, inv.ID)
		if err != nil {
			t.Fatalf("GetInvoice failed: %v", err)
		}
		if got.Kind != models.InvoiceSale {
			t.Errorf("Kind = %s, want SALE", got.Kind)
		}
		if !got.Total.Equal(dec("180")) {
			t.Errorf("Total = %s, want 180", got.Total)
		}
		if !got.Remaining.Equal(dec("80")) {
			t.Errorf("Remaining = %s, want 80", got.Remaining)
		}
		if len(got.Items) != 2 {
			t.Fatalf("Items count = %d, want 2", len(got.Items))
		}

		// Item discounts survive the round trip.
		var discounted bool
		for _, item := range got.Items {
			if item.DiscountPercent.Equal(dec("10")) {
				discounted = true
			}
		}
		if !discounted {
			t.Error("Expected an item with 10 percent discount")
		}

		// Invisible from another tenant.
		if _, err := store.GetInvoice(ctx, other.ID, inv.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound across tenants, got %v", err)
		}

		list, err := store.ListInvoices(ctx, org.ID)
		if err != nil {
			t.Fatalf("ListInvoices failed: %v", err)
		}
		if len(list) != 1 || len(list[0].Items) != 2 {
			t.Errorf("ListInvoices = %d invoices, want 1 with 2 items", len(list))
		}
	})

	t.Run("expenses", func(t *testing.T) {
		expense := &models.Expense{OrgID: org.ID, Description: "Rent", Amount: dec("500")}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		list, err := store.ListExpenses(ctx, org.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(list) != 1 || !list[0].Amount.Equal(dec("500")) {
			t.Errorf("ListExpenses = %+v, want one 500 expense", list)
		}

		if err := store.DeleteExpense(ctx, org.ID, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}
	})

	t.Run("transactions keep their sign", func(t *testing.T) {
		refund := &models.Transaction{OrgID: org.ID, Amount: dec("-25.50"), Note: "refund"}
		if err := store.CreateTransaction(ctx, refund); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}

		list, err := store.ListTransactions(ctx, org.ID)
		if err != nil {
			t.Fatalf("ListTransactions failed: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("ListTransactions = %d, want 1", len(list))
		}
		if !list[0].Amount.Equal(dec("-25.50")) {
			t.Errorf("Amount = %s, want -25.50", list[0].Amount)
		}
	})
}
