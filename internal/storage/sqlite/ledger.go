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

// CreateExpense persists a new expense.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (id, org_id, description, amount, created_at, created_by) VALUES (?, ?, ?, ?, ?, ?)",
		expense.ID, expense.OrgID, expense.Description,
		baseUnits(expense.Amount), expense.CreatedAt, expense.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// ListExpenses retrieves all expenses of one organization, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, orgID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, org_id, description, amount, created_at, created_by FROM expenses WHERE org_id = ? ORDER BY created_at DESC",
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var amount int64
		if err := rows.Scan(&expense.ID, &expense.OrgID, &expense.Description,
			&amount, &expense.CreatedAt, &expense.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = money.ToMajorUnits(amount)
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID within one organization.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, orgID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE org_id = ? AND id = ?",
		orgID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// CreateTransaction persists a new transaction. Amounts are signed:
// negative values record refunds/debits.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt == 0 {
		tx.CreatedAt = time.Now().Unix()
	}

	var invoiceID interface{}
	if tx.InvoiceID != "" {
		invoiceID = tx.InvoiceID
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO transactions (id, org_id, invoice_id, amount, note, created_at, created_by) VALUES (?, ?, ?, ?, ?, ?, ?)",
		tx.ID, tx.OrgID, invoiceID, baseUnits(tx.Amount), tx.Note, tx.CreatedAt, tx.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// ListTransactions retrieves all transactions of one organization,
// newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, orgID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, org_id, invoice_id, amount, note, created_at, created_by FROM transactions WHERE org_id = ? ORDER BY created_at DESC",
		orgID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		tx := &models.Transaction{}
		var invoiceID sql.NullString
		var amount int64
		if err := rows.Scan(&tx.ID, &tx.OrgID, &invoiceID, &amount, &tx.Note, &tx.CreatedAt, &tx.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if invoiceID.Valid {
			tx.InvoiceID = invoiceID.String
		}
		tx.Amount = money.ToMajorUnits(amount)
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return transactions, nil
}
