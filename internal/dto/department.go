package dto

import (
	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// --- Department DTOs ---

// CreateDepartmentRequest defines data for creating a new department.
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// DepartmentResponse defines data returned for a department.
type DepartmentResponse struct {
	DepartmentID int64  `json:"departmentID"`
	Name         string `json:"name"`
	Description  string `json:"description"`
}

// ToDepartmentResponse converts domain.Department to DTO.
func ToDepartmentResponse(d *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
		Description:  d.Description,
	}
}

// ListDepartmentsResponse wraps a list of departments.
type ListDepartmentsResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

// ToListDepartmentsResponse converts a slice of domain.Department to DTO.
func ToListDepartmentsResponse(ds []domain.Department) ListDepartmentsResponse {
	list := make([]DepartmentResponse, len(ds))
	for i, d := range ds {
		list[i] = ToDepartmentResponse(&d)
	}
	return ListDepartmentsResponse{Departments: list}
}

// DeleteDepartmentResponse reports a department deletion and, when forced,
// the cascade counts.
type DeleteDepartmentResponse struct {
	DepartmentID int64                 `json:"departmentID"`
	Name         string                `json:"name"`
	Forced       bool                  `json:"forced"`
	Cascade      *domain.CascadeCounts `json:"cascade,omitempty"`
}

// ToDeleteDepartmentResponse converts the domain delete result to DTO.
func ToDeleteDepartmentResponse(r *domain.DepartmentDeleteResult) DeleteDepartmentResponse {
	return DeleteDepartmentResponse{
		DepartmentID: r.DepartmentID,
		Name:         r.Name,
		Forced:       r.Forced,
		Cascade:      r.Cascade,
	}
}
