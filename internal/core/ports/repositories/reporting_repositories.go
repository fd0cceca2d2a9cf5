package repositories

import (
	"context"
	"time"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate scans.
type ReportingRepository interface {
	// GetDepartmentStats computes headcount, total salary, total expenses and
	// average rating for one department from a single consistent snapshot.
	GetDepartmentStats(ctx context.Context, departmentID int64) (*domain.DepartmentStats, error)

	// GetCategoryTotals sums expense amounts per category for one department,
	// largest first.
	GetCategoryTotals(ctx context.Context, departmentID int64) ([]domain.CategoryTotal, error)

	// GetCompanyTotals computes whole-company headcount, salary burden and
	// expense spend since the given date.
	GetCompanyTotals(ctx context.Context, expensesSince time.Time) (*domain.CompanyTotals, error)
}
