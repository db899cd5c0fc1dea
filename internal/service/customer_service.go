package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

// CustomerService serves customer CRUD for one organization.
type CustomerService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(store storage.Store, logger *slog.Logger) *CustomerService {
	return &CustomerService{store: store, logger: logger}
}

type customerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// List returns all customers of the caller's organization.
func (s *CustomerService) List(c *gin.Context) {
	org := currentOrg(c)
	customers, err := s.store.ListCustomers(c.Request.Context(), org.ID)
	if err != nil {
		s.logger.Error("ListCustomers failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}

// Get returns one customer by ID.
func (s *CustomerService) Get(c *gin.Context) {
	org := currentOrg(c)
	customer, err := s.store.GetCustomer(c.Request.Context(), org.ID, c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	if err != nil {
		s.logger.Error("GetCustomer failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create adds a new customer.
func (s *CustomerService) Create(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer name required"})
		return
	}

	org := currentOrg(c)
	customer := &models.Customer{
		OrgID:   org.ID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := s.store.CreateCustomer(c.Request.Context(), customer); err != nil {
		s.logger.Error("CreateCustomer failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.logger.Info("Customer created", "org", org.Slug, "customer_id", customer.ID)
	c.JSON(http.StatusCreated, customer)
}

// Update replaces a customer's mutable fields.
func (s *CustomerService) Update(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer name required"})
		return
	}

	org := currentOrg(c)
	customer := &models.Customer{
		ID:      c.Param("id"),
		OrgID:   org.ID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}
	err := s.store.UpdateCustomer(c.Request.Context(), customer)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	if err != nil {
		s.logger.Error("UpdateCustomer failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Delete removes a customer. Admin only (enforced by the route).
func (s *CustomerService) Delete(c *gin.Context) {
	org := currentOrg(c)
	err := s.store.DeleteCustomer(c.Request.Context(), org.ID, c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		return
	}
	if err != nil {
		s.logger.Error("DeleteCustomer failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
