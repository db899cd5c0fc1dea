package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrbashir/erp-system-sub001/internal/invoice"
	"github.com/amrbashir/erp-system-sub001/internal/middleware"
	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/money"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

// InvoiceService serves invoice reads and creation. Totals are always
// derived server-side by the invoice calculator; whatever totals a
// client sends are ignored.
type InvoiceService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(store storage.Store, logger *slog.Logger) *InvoiceService {
	return &InvoiceService{store: store, logger: logger}
}

// Numeric fields arrive as strings from form state; money.ParseOrZero
// turns anything malformed into zero rather than rejecting the
// request.
type invoiceItemRequest struct {
	ProductID       string `json:"productId"`
	Price           string `json:"price"`
	PurchasePrice   string `json:"purchasePrice"`
	Quantity        int64  `json:"quantity"`
	DiscountPercent string `json:"discountPercent"`
	DiscountAmount  string `json:"discountAmount"`
}

type invoiceRequest struct {
	CustomerID      string               `json:"customerId"`
	Kind            models.InvoiceKind   `json:"kind"`
	Items           []invoiceItemRequest `json:"items"`
	DiscountPercent string               `json:"discountPercent"`
	DiscountAmount  string               `json:"discountAmount"`
	Paid            string               `json:"paid"`
}

// List returns all invoices of the caller's organization.
func (s *InvoiceService) List(c *gin.Context) {
	org := currentOrg(c)
	invoices, err := s.store.ListInvoices(c.Request.Context(), org.ID)
	if err != nil {
		s.logger.Error("ListInvoices failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// Get returns one invoice with its items and derived totals.
func (s *InvoiceService) Get(c *gin.Context) {
	org := currentOrg(c)
	inv, err := s.store.GetInvoice(c.Request.Context(), org.ID, c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		return
	}
	if err != nil {
		s.logger.Error("GetInvoice failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, inv)
}

// Create validates the invoice kind, derives subtotal/total/remaining
// and persists the document.
func (s *InvoiceService) Create(c *gin.Context) {
	var req invoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice payload"})
		return
	}
	if !req.Kind.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invoice kind must be SALE or PURCHASE"})
		return
	}

	org := currentOrg(c)

	// A referenced customer must belong to the caller's organization;
	// the foreign key alone only checks global existence.
	if req.CustomerID != "" {
		_, err := s.store.GetCustomer(c.Request.Context(), org.ID, req.CustomerID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "customer not found"})
			return
		}
		if err != nil {
			s.logger.Error("GetCustomer failed", "org", org.Slug, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}

	items := make([]models.InvoiceItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "item quantity cannot be negative"})
			return
		}
		items = append(items, models.InvoiceItem{
			ProductID:       item.ProductID,
			Price:           money.ParseOrZero(item.Price),
			PurchasePrice:   money.ParseOrZero(item.PurchasePrice),
			Quantity:        item.Quantity,
			DiscountPercent: money.ParseOrZero(item.DiscountPercent),
			DiscountAmount:  money.ParseOrZero(item.DiscountAmount),
		})
	}

	inv := invoice.Derive(models.Invoice{
		OrgID:           org.ID,
		CustomerID:      req.CustomerID,
		Kind:            req.Kind,
		Items:           items,
		DiscountPercent: money.ParseOrZero(req.DiscountPercent),
		DiscountAmount:  money.ParseOrZero(req.DiscountAmount),
		Paid:            money.ParseOrZero(req.Paid),
		CreatedBy:       middleware.GetUserID(c),
	})

	if err := s.store.CreateInvoice(c.Request.Context(), &inv); err != nil {
		s.logger.Error("CreateInvoice failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.logger.Info("Invoice created",
		"org", org.Slug,
		"invoice_id", inv.ID,
		"kind", inv.Kind,
		"total", inv.Total,
	)
	c.JSON(http.StatusCreated, inv)
}
