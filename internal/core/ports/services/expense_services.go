package services

import (
	"context"
	"time"

	"github.com/compstack/company_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExpenseService owns expense records scoped to a department.
type ExpenseService interface {
	// CreateExpense books an expense against a department. A nil date
	// defaults to today; amounts must be strictly positive.
	CreateExpense(ctx context.Context, date *time.Time, amount decimal.Decimal, category, note string, departmentID int64) (*domain.Expense, error)

	// DeleteExpense removes an expense by ID.
	DeleteExpense(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses lists expenses matching the filter, newest first, with
	// the total amount and a per-category breakdown.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) (*domain.ExpenseListing, error)
}
