package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/money"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

// ProductService serves product CRUD for one organization.
// Product writes are admin-only; the routes enforce that.
type ProductService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(store storage.Store, logger *slog.Logger) *ProductService {
	return &ProductService{store: store, logger: logger}
}

// productRequest carries prices as strings straight from form input;
// money.ParseOrZero absorbs anything malformed as zero.
type productRequest struct {
	Name          string `json:"name"`
	Barcode       string `json:"barcode"`
	Price         string `json:"price"`
	PurchasePrice string `json:"purchasePrice"`
	Stock         int64  `json:"stock"`
}

func (r productRequest) toModel(orgID string) *models.Product {
	return &models.Product{
		OrgID:         orgID,
		Name:          r.Name,
		Barcode:       r.Barcode,
		Price:         money.ParseOrZero(r.Price),
		PurchasePrice: money.ParseOrZero(r.PurchasePrice),
		Stock:         r.Stock,
	}
}

// List returns all products of the caller's organization.
func (s *ProductService) List(c *gin.Context) {
	org := currentOrg(c)
	products, err := s.store.ListProducts(c.Request.Context(), org.ID)
	if err != nil {
		s.logger.Error("ListProducts failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// Get returns one product by ID.
func (s *ProductService) Get(c *gin.Context) {
	org := currentOrg(c)
	product, err := s.store.GetProduct(c.Request.Context(), org.ID, c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		s.logger.Error("GetProduct failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create adds a new product.
func (s *ProductService) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product name required"})
		return
	}

	org := currentOrg(c)
	product := req.toModel(org.ID)
	if err := s.store.CreateProduct(c.Request.Context(), product); err != nil {
		s.logger.Error("CreateProduct failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.logger.Info("Product created", "org", org.Slug, "product_id", product.ID)
	c.JSON(http.StatusCreated, product)
}

// Update replaces a product's mutable fields.
func (s *ProductService) Update(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product name required"})
		return
	}

	org := currentOrg(c)
	product := req.toModel(org.ID)
	product.ID = c.Param("id")

	err := s.store.UpdateProduct(c.Request.Context(), product)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		s.logger.Error("UpdateProduct failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete removes a product.
func (s *ProductService) Delete(c *gin.Context) {
	org := currentOrg(c)
	err := s.store.DeleteProduct(c.Request.Context(), org.ID, c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		s.logger.Error("DeleteProduct failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}
