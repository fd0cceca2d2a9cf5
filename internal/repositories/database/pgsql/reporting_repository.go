package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
)

// reportingRepository implements the read-only aggregate scans. Each scan is
// a single SQL statement, so all of its figures come from one snapshot and a
// concurrent uncommitted write can never be half-visible.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) GetDepartmentStats(ctx context.Context, departmentID int64) (*domain.DepartmentStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE department_id = $1) AS headcount,
			(SELECT COALESCE(SUM(salary), 0) FROM employees WHERE department_id = $1) AS total_salary,
			(SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE department_id = $1) AS total_expenses,
			(SELECT COALESCE(AVG(p.rating), 0)
				FROM performance p
				JOIN employees e ON p.employee_id = e.employee_id
				WHERE e.department_id = $1) AS average_rating;
	`
	var stats domain.DepartmentStats
	err := r.Pool.QueryRow(ctx, query, departmentID).Scan(
		&stats.Headcount,
		&stats.TotalSalary,
		&stats.TotalExpenses,
		&stats.AverageRating,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying department stats: %w", err)
	}
	return &stats, nil
}

func (r *reportingRepository) GetCategoryTotals(ctx context.Context, departmentID int64) ([]domain.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total
		FROM expenses
		WHERE department_id = $1
		GROUP BY category
		ORDER BY total DESC;
	`
	rows, err := r.Pool.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("error querying category totals: %w", err)
	}
	defer rows.Close()

	totals := []domain.CategoryTotal{}
	for rows.Next() {
		var t domain.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("error scanning category total: %w", err)
		}
		totals = append(totals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category totals: %w", err)
	}
	return totals, nil
}

func (r *reportingRepository) GetCompanyTotals(ctx context.Context, expensesSince time.Time) (*domain.CompanyTotals, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM employees) AS total_employees,
			(SELECT COALESCE(SUM(salary), 0) FROM employees) AS total_salary,
			(SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE expense_date >= $1) AS recent_expenses;
	`
	var totals domain.CompanyTotals
	err := r.Pool.QueryRow(ctx, query, expensesSince).Scan(
		&totals.TotalEmployees,
		&totals.TotalSalary,
		&totals.RecentExpenses,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying company totals: %w", err)
	}
	return &totals, nil
}
