package services

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// ReportingService computes per-department and whole-company aggregates on
// demand. All reads are snapshot-consistent.
type ReportingService interface {
	// GetDepartmentSummary returns the department together with its stats
	// and expense category breakdown.
	GetDepartmentSummary(ctx context.Context, departmentID int64) (*domain.DepartmentSummary, error)

	// GetCompanyOverview returns whole-company totals plus a summary per
	// department.
	GetCompanyOverview(ctx context.Context) (*domain.CompanyOverview, error)
}
