package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// --- Employee DTOs ---

// CreateEmployeeRequest defines data for creating a new employee. The
// employee number is always generated server-side.
type CreateEmployeeRequest struct {
	Name         string          `json:"name" binding:"required"`
	Role         string          `json:"role" binding:"required"`
	DepartmentID int64           `json:"departmentID" binding:"required"`
	Salary       decimal.Decimal `json:"salary"`
	JoinDate     string          `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
}

// JoinDateTime parses the optional join date. Returns nil when absent.
func (r CreateEmployeeRequest) JoinDateTime() *time.Time {
	if r.JoinDate == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, r.JoinDate)
	if err != nil {
		return nil
	}
	return &t
}

// EmployeeResponse defines data returned for an employee.
type EmployeeResponse struct {
	EmployeeID     int64           `json:"employeeID"`
	EmployeeNumber string          `json:"employeeNumber"`
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	DepartmentID   int64           `json:"departmentID"`
	Salary         decimal.Decimal `json:"salary"`
	JoinDate       string          `json:"joinDate"`
}

// ToEmployeeResponse converts domain.Employee to DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:     e.EmployeeID,
		EmployeeNumber: e.EmployeeNumber,
		Name:           e.Name,
		Role:           e.Role,
		DepartmentID:   e.DepartmentID,
		Salary:         e.Salary,
		JoinDate:       e.JoinDate.Format(dateLayout),
	}
}

// ListEmployeesResponse wraps a list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToListEmployeesResponse converts a slice of domain.Employee to DTO.
func ToListEmployeesResponse(es []domain.Employee) ListEmployeesResponse {
	list := make([]EmployeeResponse, len(es))
	for i, e := range es {
		list[i] = ToEmployeeResponse(&e)
	}
	return ListEmployeesResponse{Employees: list}
}

// DeleteEmployeeResponse reports an employee deletion and its cascade.
type DeleteEmployeeResponse struct {
	Employee       EmployeeResponse `json:"employee"`
	RatingsRemoved int64            `json:"ratingsRemoved"`
}

// ToDeleteEmployeeResponse converts the domain delete result to DTO.
func ToDeleteEmployeeResponse(r *domain.EmployeeDeleteResult) DeleteEmployeeResponse {
	return DeleteEmployeeResponse{
		Employee:       ToEmployeeResponse(&r.Employee),
		RatingsRemoved: r.RatingsRemoved,
	}
}
