package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// --- Expense DTOs ---

// CreateExpenseRequest defines data for booking a new expense.
type CreateExpenseRequest struct {
	Date         string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category" binding:"required"`
	Note         string          `json:"note"`
	DepartmentID int64           `json:"departmentID" binding:"required"`
}

// DateTime parses the optional expense date. Returns nil when absent.
func (r CreateExpenseRequest) DateTime() *time.Time {
	if r.Date == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return nil
	}
	return &t
}

// ExpenseResponse defines data returned for an expense.
type ExpenseResponse struct {
	ExpenseID    int64           `json:"expenseID"`
	Date         string          `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Note         string          `json:"note"`
	DepartmentID int64           `json:"departmentID"`
}

// ToExpenseResponse converts domain.Expense to DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:    e.ExpenseID,
		Date:         e.Date.Format(dateLayout),
		Amount:       e.Amount,
		Category:     e.Category,
		Note:         e.Note,
		DepartmentID: e.DepartmentID,
	}
}

// ListExpensesResponse wraps a filtered expense listing with its totals.
type ListExpensesResponse struct {
	Expenses   []ExpenseResponse      `json:"expenses"`
	Total      decimal.Decimal        `json:"total"`
	Categories []domain.CategoryTotal `json:"categories"`
}

// ToListExpensesResponse converts a domain listing to DTO.
func ToListExpensesResponse(l *domain.ExpenseListing) ListExpensesResponse {
	list := make([]ExpenseResponse, len(l.Expenses))
	for i, e := range l.Expenses {
		list[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{
		Expenses:   list,
		Total:      l.Total,
		Categories: l.Categories,
	}
}
