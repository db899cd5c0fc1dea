// Package service implements the HTTP API: organization-scoped,
// role-gated handlers over the storage layer.
package service

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/amrbashir/erp-system-sub001/internal/auth"
	"github.com/amrbashir/erp-system-sub001/internal/middleware"
	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

const orgKey = "org"

// currentOrg returns the organization resolved for this request.
// Calling it on a route without the org resolver is a wiring defect,
// so it fails fast instead of limping along with a nil tenant.
func currentOrg(c *gin.Context) *models.Organization {
	org, ok := c.MustGet(orgKey).(*models.Organization)
	if !ok {
		panic("service: route is missing the organization resolver")
	}
	return org
}

// resolveOrg loads the organization named by the path slug and makes
// it available to handlers. Unknown slugs 404 before any handler runs.
func resolveOrg(store storage.Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if !models.IsValidSlug(slug) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid organization slug"})
			return
		}

		org, err := store.GetOrganizationBySlug(c.Request.Context(), slug)
		if err != nil {
			logger.Error("Organization lookup failed", "slug", slug, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if org == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}

		c.Set(orgKey, org)
		c.Next()
	}
}

// Router builds the gin engine with all routes and middleware wired.
func Router(store storage.Store, jwtManager *auth.JWTManager, logger *slog.Logger) *gin.Engine {
	authenticator := auth.NewPasswordAuthenticator(store)

	authSvc := NewAuthService(store, authenticator, jwtManager, logger)
	customerSvc := NewCustomerService(store, logger)
	productSvc := NewProductService(store, logger)
	invoiceSvc := NewInvoiceService(store, logger)
	ledgerSvc := NewLedgerService(store, logger)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logging(), middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	org := r.Group("/org/:slug")
	org.POST("/auth/login", authSvc.Login)

	authed := org.Group("", middleware.RequireAuth(jwtManager), resolveOrg(store, logger))
	authed.POST("/auth/logout", authSvc.Logout)

	authed.GET("/customers", customerSvc.List)
	authed.GET("/customers/:id", customerSvc.Get)
	authed.POST("/customers", customerSvc.Create)
	authed.PUT("/customers/:id", customerSvc.Update)
	authed.DELETE("/customers/:id", middleware.RequireRole(models.RoleAdmin), customerSvc.Delete)

	authed.GET("/products", productSvc.List)
	authed.GET("/products/:id", productSvc.Get)
	authed.POST("/products", middleware.RequireRole(models.RoleAdmin), productSvc.Create)
	authed.PUT("/products/:id", middleware.RequireRole(models.RoleAdmin), productSvc.Update)
	authed.DELETE("/products/:id", middleware.RequireRole(models.RoleAdmin), productSvc.Delete)

	authed.GET("/invoices", invoiceSvc.List)
	authed.GET("/invoices/:id", invoiceSvc.Get)
	authed.POST("/invoices", invoiceSvc.Create)

	authed.GET("/expenses", ledgerSvc.ListExpenses)
	authed.POST("/expenses", middleware.RequireRole(models.RoleAdmin), ledgerSvc.CreateExpense)
	authed.DELETE("/expenses/:id", middleware.RequireRole(models.RoleAdmin), ledgerSvc.DeleteExpense)

	authed.GET("/transactions", ledgerSvc.ListTransactions)
	authed.POST("/transactions", ledgerSvc.CreateTransaction)

	return r
}
