package service

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amrbashir/erp-system-sub001/internal/middleware"
	"github.com/amrbashir/erp-system-sub001/internal/models"
	"github.com/amrbashir/erp-system-sub001/internal/money"
	"github.com/amrbashir/erp-system-sub001/internal/storage"
)

// LedgerService serves expenses and transactions.
type LedgerService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(store storage.Store, logger *slog.Logger) *LedgerService {
	return &LedgerService{store: store, logger: logger}
}

type expenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type transactionRequest struct {
	InvoiceID string `json:"invoiceId"`
	Amount    string `json:"amount"`
	Note      string `json:"note"`
}

// ListExpenses returns all expenses of the caller's organization.
func (s *LedgerService) ListExpenses(c *gin.Context) {
	org := currentOrg(c)
	expenses, err := s.store.ListExpenses(c.Request.Context(), org.ID)
	if err != nil {
		s.logger.Error("ListExpenses failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense records a cost. Expenses are unsigned; a negative
// amount is rejected rather than silently flipped.
func (s *LedgerService) CreateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expense description required"})
		return
	}

	amount := money.ParseOrZero(req.Amount)
	if amount.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expense amount cannot be negative"})
		return
	}

	org := currentOrg(c)
	expense := &models.Expense{
		OrgID:       org.ID,
		Description: req.Description,
		Amount:      amount,
		CreatedBy:   middleware.GetUserID(c),
	}
	if err := s.store.CreateExpense(c.Request.Context(), expense); err != nil {
		s.logger.Error("CreateExpense failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.logger.Info("Expense recorded", "org", org.Slug, "expense_id", expense.ID, "amount", expense.Amount)
	c.JSON(http.StatusCreated, expense)
}

// DeleteExpense removes an expense.
func (s *LedgerService) DeleteExpense(c *gin.Context) {
	org := currentOrg(c)
	err := s.store.DeleteExpense(c.Request.Context(), org.ID, c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
		return
	}
	if err != nil {
		s.logger.Error("DeleteExpense failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTransactions returns all transactions of the caller's
// organization.
func (s *LedgerService) ListTransactions(c *gin.Context) {
	org := currentOrg(c)
	transactions, err := s.store.ListTransactions(c.Request.Context(), org.ID)
	if err != nil {
		s.logger.Error("ListTransactions failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// CreateTransaction records a money movement. Amounts are signed:
// negatives represent refunds/debits.
func (s *LedgerService) CreateTransaction(c *gin.Context) {
	var req transactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction payload"})
		return
	}

	org := currentOrg(c)

	// A referenced invoice must belong to the caller's organization;
	// the foreign key alone only checks global existence.
	if req.InvoiceID != "" {
		_, err := s.store.GetInvoice(c.Request.Context(), org.ID, req.InvoiceID)
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invoice not found"})
			return
		}
		if err != nil {
			s.logger.Error("GetInvoice failed", "org", org.Slug, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}

	tx := &models.Transaction{
		OrgID:     org.ID,
		InvoiceID: req.InvoiceID,
		Amount:    money.ParseOrZero(req.Amount),
		Note:      req.Note,
		CreatedBy: middleware.GetUserID(c),
	}
	if err := s.store.CreateTransaction(c.Request.Context(), tx); err != nil {
		s.logger.Error("CreateTransaction failed", "org", org.Slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	s.logger.Info("Transaction recorded", "org", org.Slug, "transaction_id", tx.ID, "amount", tx.Amount)
	c.JSON(http.StatusCreated, tx)
}
