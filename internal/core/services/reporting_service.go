package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
)

// recentExpenseWindow is the trailing period the company overview sums
// expenses over.
const recentExpenseWindow = 30 * 24 * time.Hour

// reportingService implements the ReportingService interface.
type reportingService struct {
	BaseService
	reportingRepo  portsrepo.ReportingRepository
	departmentRepo portsrepo.DepartmentReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, departmentRepo portsrepo.DepartmentReader) portssvc.ReportingService {
	return &reportingService{
		reportingRepo:  reportingRepo,
		departmentRepo: departmentRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) GetDepartmentSummary(ctx context.Context, departmentID int64) (*domain.DepartmentSummary, error) {
	department, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	stats, err := s.reportingRepo.GetDepartmentStats(ctx, departmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute department stats", slog.Int64("department_id", departmentID))
		return nil, err
	}

	categories, err := s.reportingRepo.GetCategoryTotals(ctx, departmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to compute category totals", slog.Int64("department_id", departmentID))
		return nil, err
	}

	return &domain.DepartmentSummary{
		Department: *department,
		Stats:      *stats,
		Categories: categories,
	}, nil
}

func (s *reportingService) GetCompanyOverview(ctx context.Context) (*domain.CompanyOverview, error) {
	totals, err := s.reportingRepo.GetCompanyTotals(ctx, time.Now().Add(-recentExpenseWindow))
	if err != nil {
		s.LogError(ctx, err, "Failed to compute company totals")
		return nil, err
	}

	departments, err := s.departmentRepo.ListDepartments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments for overview")
		return nil, err
	}

	overview := &domain.CompanyOverview{
		TotalEmployees: totals.TotalEmployees,
		TotalSalary:    totals.TotalSalary,
		RecentExpenses: totals.RecentExpenses,
		Departments:    make([]domain.DepartmentSummary, 0, len(departments)),
	}

	for _, department := range departments {
		summary, err := s.GetDepartmentSummary(ctx, department.DepartmentID)
		if err != nil {
			return nil, err
		}
		overview.Departments = append(overview.Departments, *summary)
	}
	return overview, nil
}
