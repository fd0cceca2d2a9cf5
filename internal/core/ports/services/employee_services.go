package services

import (
	"context"
	"time"

	"github.com/compstack/company_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EmployeeService owns employee records: creation with minted employee
// numbers, identifier-based deletion with performance cascade, and listing.
type EmployeeService interface {
	// CreateEmployee creates an employee in the given department. The
	// employee number is assigned inside the insert transaction. A nil
	// joinDate defaults to today.
	CreateEmployee(ctx context.Context, name, role string, departmentID int64, salary decimal.Decimal, joinDate *time.Time) (*domain.Employee, error)

	// GetEmployeeByNumber retrieves an employee by employee number.
	GetEmployeeByNumber(ctx context.Context, employeeNumber string) (*domain.Employee, error)

	// DeleteEmployee deletes the employee matching the identifier (employee
	// number or exact case-insensitive name). A name matching several
	// employees fails with ErrAmbiguous; performance rows cascade.
	DeleteEmployee(ctx context.Context, identifier string) (*domain.EmployeeDeleteResult, error)

	// ListEmployees lists employees ordered by employee number, optionally
	// restricted to one department.
	ListEmployees(ctx context.Context, departmentID *int64) ([]domain.Employee, error)
}
