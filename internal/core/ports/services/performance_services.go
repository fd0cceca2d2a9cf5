package services

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// PerformanceService owns performance ratings scoped to an employee. Ratings
// are never deleted directly; removal happens through the employee cascade or
// duplicate reconciliation.
type PerformanceService interface {
	// CreatePerformance records a rating for an employee. An empty month
	// defaults to the current month.
	CreatePerformance(ctx context.Context, employeeID int64, rating int, month, comments string) (*domain.Performance, error)

	// ListPerformanceForEmployee lists ratings for the employee matching the
	// identifier (employee number or exact case-insensitive name).
	ListPerformanceForEmployee(ctx context.Context, identifier string) ([]domain.Performance, error)
}
