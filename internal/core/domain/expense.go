package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend entry booked against a department.
type Expense struct {
	ExpenseID    int64           `json:"expenseID"` // Primary key
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"` // Always > 0
	Category     string          `json:"category"`
	Note         string          `json:"note"`
	DepartmentID int64           `json:"departmentID"` // FK -> departments.department_id
}

// ExpenseFilter narrows an expense listing. Nil fields are unrestricted.
type ExpenseFilter struct {
	DepartmentID *int64
	From         *time.Time
	To           *time.Time
}

// CategoryTotal is the summed amount for one expense category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpenseListing is a filtered expense list together with its totals.
type ExpenseListing struct {
	Expenses   []Expense       `json:"expenses"` // Ordered by date descending
	Total      decimal.Decimal `json:"total"`
	Categories []CategoryTotal `json:"categories"`
}
