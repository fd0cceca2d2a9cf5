package repositories

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// DepartmentReader defines read operations for department data.
type DepartmentReader interface {
	// FindDepartmentByID retrieves a department by its primary key.
	FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error)

	// FindDepartmentByName retrieves a department by name, compared
	// case-insensitively.
	FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error)

	// ListDepartments retrieves all departments ordered by name.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// CountDependents reports how many employees and expenses reference a
	// department.
	CountDependents(ctx context.Context, departmentID int64) (domain.DependentCounts, error)
}

// DepartmentWriter defines write operations for department data.
type DepartmentWriter interface {
	// SaveDepartment persists a new department and returns it with its
	// assigned ID. A case-insensitive name collision fails with ErrConflict.
	SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error)

	// DeleteDepartment removes a department inside one transaction. With
	// force=false the delete is refused with ErrConflict while dependent
	// employees or expenses exist; with force=true all dependent performance
	// rows, employees and expenses are removed first, atomically.
	DeleteDepartment(ctx context.Context, departmentID int64, force bool) (*domain.CascadeCounts, error)
}

// DepartmentRepositoryFacade combines all department repository interfaces.
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
}
