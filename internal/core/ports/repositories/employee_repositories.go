package repositories

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// EmployeeReader defines read operations for employee data.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by primary key.
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)

	// FindEmployeeByNumber retrieves an employee by employee number.
	FindEmployeeByNumber(ctx context.Context, employeeNumber string) (*domain.Employee, error)

	// FindEmployeesByIdentifier retrieves every employee whose employee
	// number equals the identifier or whose name matches it
	// case-insensitively. The caller decides how to treat multiple matches.
	FindEmployeesByIdentifier(ctx context.Context, identifier string) ([]domain.Employee, error)

	// ListEmployees retrieves employees ordered by employee number,
	// optionally restricted to one department.
	ListEmployees(ctx context.Context, departmentID *int64) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data.
type EmployeeWriter interface {
	// CreateEmployee mints the next employee number and inserts the row in
	// one transaction, so concurrent creators never observe the same next
	// number. The stored employee is returned with ID and number assigned.
	CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)

	// DeleteEmployee removes an employee and all of its performance rows in
	// one transaction, returning the number of performance rows removed.
	DeleteEmployee(ctx context.Context, employeeID int64) (int64, error)

	// ReconcileDuplicateGroup reassigns the duplicates' performance rows to
	// the canonical employee and deletes the duplicate rows, all in one
	// transaction. Returns (ratings reassigned, employees removed).
	ReconcileDuplicateGroup(ctx context.Context, canonicalID int64, duplicateIDs []int64) (int64, int64, error)
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
