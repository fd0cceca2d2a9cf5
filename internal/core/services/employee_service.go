package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
)

// employeeService implements the EmployeeService interface.
type employeeService struct {
	BaseService
	employeeRepo   portsrepo.EmployeeRepositoryFacade
	departmentRepo portsrepo.DepartmentReader
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade, departmentRepo portsrepo.DepartmentReader) portssvc.EmployeeService {
	return &employeeService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

var _ portssvc.EmployeeService = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, name, role string, departmentID int64, salary decimal.Decimal, joinDate *time.Time) (*domain.Employee, error) {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	if name == "" {
		return nil, fmt.Errorf("%w: employee name must not be empty", apperrors.ErrValidation)
	}
	if role == "" {
		return nil, fmt.Errorf("%w: employee role must not be empty", apperrors.ErrValidation)
	}
	if salary.IsNegative() {
		return nil, fmt.Errorf("%w: salary must not be negative, got %s", apperrors.ErrValidation, salary)
	}

	// Validated before the insert transaction starts, so a bad department
	// reference never advances the employee number sequence.
	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}

	when := time.Now()
	if joinDate != nil {
		when = *joinDate
	}

	employee, err := s.employeeRepo.CreateEmployee(ctx, domain.Employee{
		Name:         name,
		Role:         role,
		DepartmentID: departmentID,
		Salary:       salary,
		JoinDate:     when,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create employee",
			slog.String("name", name),
			slog.Int64("department_id", departmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created",
		slog.Int64("employee_id", employee.EmployeeID),
		slog.String("employee_number", employee.EmployeeNumber))
	return employee, nil
}

func (s *employeeService) GetEmployeeByNumber(ctx context.Context, employeeNumber string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByNumber(ctx, employeeNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find employee", slog.String("employee_number", employeeNumber))
		}
		return nil, err
	}
	return employee, nil
}

// resolveIdentifier maps an employee number or name onto exactly one
// employee. Name matching is case-insensitive, consistent with duplicate
// detection.
func (s *employeeService) resolveIdentifier(ctx context.Context, identifier string) (*domain.Employee, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: employee identifier must not be empty", apperrors.ErrValidation)
	}

	matches, err := s.employeeRepo.FindEmployeesByIdentifier(ctx, identifier)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up employee", slog.String("identifier", identifier))
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: employee %q", apperrors.ErrNotFound, identifier)
	case 1:
		return &matches[0], nil
	default:
		numbers := make([]string, len(matches))
		for i, m := range matches {
			numbers[i] = m.EmployeeNumber
		}
		return nil, fmt.Errorf("%w: %q matches employees %s; use an employee number",
			apperrors.ErrAmbiguous, identifier, strings.Join(numbers, ", "))
	}
}

func (s *employeeService) DeleteEmployee(ctx context.Context, identifier string) (*domain.EmployeeDeleteResult, error) {
	employee, err := s.resolveIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	ratingsRemoved, err := s.employeeRepo.DeleteEmployee(ctx, employee.EmployeeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete employee", slog.Int64("employee_id", employee.EmployeeID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Employee deleted",
		slog.String("employee_number", employee.EmployeeNumber),
		slog.Int64("ratings_removed", ratingsRemoved))
	return &domain.EmployeeDeleteResult{
		Employee:       *employee,
		RatingsRemoved: ratingsRemoved,
	}, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, departmentID *int64) ([]domain.Employee, error) {
	if departmentID != nil {
		if _, err := s.departmentRepo.FindDepartmentByID(ctx, *departmentID); err != nil {
			return nil, err
		}
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, departmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	return employees, nil
}
