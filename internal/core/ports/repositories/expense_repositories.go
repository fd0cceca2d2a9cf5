package repositories

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data.
type ExpenseReader interface {
	// FindExpenseByID retrieves an expense by primary key.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the filter, ordered by date
	// descending.
	ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data.
type ExpenseWriter interface {
	// SaveExpense persists a new expense and returns it with its assigned ID.
	SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// DeleteExpense removes an expense. Expenses have no dependents, so no
	// cascade is involved.
	DeleteExpense(ctx context.Context, expenseID int64) error
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
