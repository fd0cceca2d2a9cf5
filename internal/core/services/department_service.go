package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
)

// departmentService implements the DepartmentService interface.
type departmentService struct {
	BaseService
	departmentRepo portsrepo.DepartmentRepositoryFacade
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(departmentRepo portsrepo.DepartmentRepositoryFacade) portssvc.DepartmentService {
	return &departmentService{departmentRepo: departmentRepo}
}

var _ portssvc.DepartmentService = (*departmentService)(nil)

func (s *departmentService) CreateDepartment(ctx context.Context, name, description string) (*domain.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name must not be empty", apperrors.ErrValidation)
	}

	// Case-insensitive pre-check for a friendly conflict message. The unique
	// index on LOWER(name) is the authoritative guard under concurrency.
	existing, err := s.departmentRepo.FindDepartmentByName(ctx, name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check department name", slog.String("name", name))
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: department %q already exists", apperrors.ErrConflict, existing.Name)
	}

	department, err := s.departmentRepo.SaveDepartment(ctx, domain.Department{
		Name:        name,
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save department", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Department created",
		slog.Int64("department_id", department.DepartmentID),
		slog.String("name", department.Name))
	return department, nil
}

func (s *departmentService) GetDepartment(ctx context.Context, departmentID int64) (*domain.Department, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find department", slog.Int64("department_id", departmentID))
		}
		return nil, err
	}
	return department, nil
}

func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments")
		return nil, err
	}
	return departments, nil
}

func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID int64, force bool) (*domain.DepartmentDeleteResult, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	cascade, err := s.departmentRepo.DeleteDepartment(ctx, departmentID, force)
	if err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete department", slog.Int64("department_id", departmentID))
		}
		return nil, err
	}

	result := &domain.DepartmentDeleteResult{
		DepartmentID: department.DepartmentID,
		Name:         department.Name,
		Forced:       force,
	}
	if force {
		result.Cascade = cascade
	}

	s.LogInfo(ctx, "Department deleted",
		slog.Int64("department_id", departmentID),
		slog.Bool("forced", force))
	return result, nil
}
