package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
)

// PgxPerformanceRepository persists performance ratings. Deletion goes
// through the employee repository's cascade, never through this type.
type PgxPerformanceRepository struct {
	BaseRepository
}

func newPgxPerformanceRepository(pool *pgxpool.Pool) portsrepo.PerformanceRepositoryFacade {
	return &PgxPerformanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PerformanceRepositoryFacade = (*PgxPerformanceRepository)(nil)

func (r *PgxPerformanceRepository) SavePerformance(ctx context.Context, performance domain.Performance) (*domain.Performance, error) {
	query := `
		INSERT INTO performance (employee_id, rating, month, comments)
		VALUES ($1, $2, $3, $4)
		RETURNING performance_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		performance.EmployeeID, performance.Rating, performance.Month, performance.Comments,
	).Scan(&performance.PerformanceID)
	if err != nil {
		err = translateConstraintErr(err,
			"duplicate performance row",
			fmt.Sprintf("employee %d does not exist", performance.EmployeeID))
		return nil, fmt.Errorf("failed to save performance rating: %w", err)
	}
	return &performance, nil
}

func (r *PgxPerformanceRepository) ListPerformanceByEmployee(ctx context.Context, employeeID int64) ([]domain.Performance, error) {
	query := `
		SELECT performance_id, employee_id, rating, month, COALESCE(comments, '')
		FROM performance
		WHERE employee_id = $1
		ORDER BY month DESC, performance_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query performance rows: %w", err)
	}
	defer rows.Close()

	ratings := []domain.Performance{}
	for rows.Next() {
		var p domain.Performance
		if err := rows.Scan(&p.PerformanceID, &p.EmployeeID, &p.Rating, &p.Month, &p.Comments); err != nil {
			return nil, fmt.Errorf("failed to scan performance row: %w", err)
		}
		ratings = append(ratings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate performance rows: %w", err)
	}
	return ratings, nil
}
