package services

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// DepartmentService owns department records: creation with unique names and
// deletion with an explicit cascade policy.
type DepartmentService interface {
	// CreateDepartment creates a department. The name is unique
	// case-insensitively; a collision fails with ErrConflict.
	CreateDepartment(ctx context.Context, name, description string) (*domain.Department, error)

	// GetDepartment retrieves a department by ID.
	GetDepartment(ctx context.Context, departmentID int64) (*domain.Department, error)

	// ListDepartments retrieves all departments ordered by name.
	ListDepartments(ctx context.Context) ([]domain.Department, error)

	// DeleteDepartment deletes a department. With force=false it fails with
	// ErrConflict while employees or expenses reference it, reporting the
	// counts; with force=true the whole dependent tree is removed atomically.
	DeleteDepartment(ctx context.Context, departmentID int64, force bool) (*domain.DepartmentDeleteResult, error)
}
