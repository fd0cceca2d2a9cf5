package repositories

import (
	"context"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// PerformanceReader defines read operations for performance data.
type PerformanceReader interface {
	// ListPerformanceByEmployee retrieves all ratings for one employee,
	// newest month first.
	ListPerformanceByEmployee(ctx context.Context, employeeID int64) ([]domain.Performance, error)
}

// PerformanceWriter defines write operations for performance data. There is
// no delete: performance rows are removed only by the employee cascade or by
// duplicate reconciliation.
type PerformanceWriter interface {
	// SavePerformance persists a new rating and returns it with its ID.
	SavePerformance(ctx context.Context, performance domain.Performance) (*domain.Performance, error)
}

// PerformanceRepositoryFacade combines all performance repository interfaces.
type PerformanceRepositoryFacade interface {
	PerformanceReader
	PerformanceWriter
}
