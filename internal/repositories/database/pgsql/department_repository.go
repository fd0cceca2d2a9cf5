package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
)

// PgxDepartmentRepository persists departments and owns the cascade-delete
// transaction.
type PgxDepartmentRepository struct {
	BaseRepository
}

func newPgxDepartmentRepository(pool *pgxpool.Pool) portsrepo.DepartmentRepositoryFacade {
	return &PgxDepartmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DepartmentRepositoryFacade = (*PgxDepartmentRepository)(nil)

func (r *PgxDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error) {
	query := `
		INSERT INTO departments (name, description)
		VALUES ($1, $2)
		RETURNING department_id;
	`
	err := r.Pool.QueryRow(ctx, query, department.Name, department.Description).Scan(&department.DepartmentID)
	if err != nil {
		err = translateConstraintErr(err,
			fmt.Sprintf("department %q already exists", department.Name),
			"referenced row missing")
		return nil, fmt.Errorf("failed to save department: %w", err)
	}
	return &department, nil
}

func (r *PgxDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	query := `
		SELECT department_id, name, COALESCE(description, '')
		FROM departments
		WHERE department_id = $1;
	`
	var d domain.Department
	err := r.Pool.QueryRow(ctx, query, departmentID).Scan(&d.DepartmentID, &d.Name, &d.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: department %d", apperrors.ErrNotFound, departmentID)
		}
		return nil, fmt.Errorf("failed to find department %d: %w", departmentID, err)
	}
	return &d, nil
}

func (r *PgxDepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	query := `
		SELECT department_id, name, COALESCE(description, '')
		FROM departments
		WHERE LOWER(name) = LOWER($1);
	`
	var d domain.Department
	err := r.Pool.QueryRow(ctx, query, name).Scan(&d.DepartmentID, &d.Name, &d.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: department %q", apperrors.ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to find department %q: %w", name, err)
	}
	return &d, nil
}

func (r *PgxDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	query := `
		SELECT department_id, name, COALESCE(description, '')
		FROM departments
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := []domain.Department{}
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.DepartmentID, &d.Name, &d.Description); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}
	return departments, nil
}

func (r *PgxDepartmentRepository) CountDependents(ctx context.Context, departmentID int64) (domain.DependentCounts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE department_id = $1),
			(SELECT COUNT(*) FROM expenses WHERE department_id = $1);
	`
	var counts domain.DependentCounts
	err := r.Pool.QueryRow(ctx, query, departmentID).Scan(&counts.Employees, &counts.Expenses)
	if err != nil {
		return domain.DependentCounts{}, fmt.Errorf("failed to count department dependents: %w", err)
	}
	return counts, nil
}

// DeleteDepartment runs the whole delete, including the optional cascade, as
// one transaction. The cleanup order is fixed: performance rows, employees,
// expenses, then the department itself.
func (r *PgxDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID int64, force bool) (*domain.CascadeCounts, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	// Lock the department row so concurrent inserts of dependents serialize
	// against the dependent check below.
	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT department_id FROM departments WHERE department_id = $1 FOR UPDATE;`, departmentID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: department %d", apperrors.ErrNotFound, departmentID)
		}
		return nil, fmt.Errorf("failed to lock department %d: %w", departmentID, err)
	}

	var counts domain.DependentCounts
	err = tx.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM employees WHERE department_id = $1),
			(SELECT COUNT(*) FROM expenses WHERE department_id = $1);
	`, departmentID).Scan(&counts.Employees, &counts.Expenses)
	if err != nil {
		return nil, fmt.Errorf("failed to count department dependents: %w", err)
	}

	if !force && counts.Any() {
		return nil, fmt.Errorf("%w: department %d has %d employees and %d expenses; use force to delete anyway",
			apperrors.ErrConflict, departmentID, counts.Employees, counts.Expenses)
	}

	cascade := domain.CascadeCounts{}
	if force {
		tag, err := tx.Exec(ctx, `
			DELETE FROM performance
			WHERE employee_id IN (SELECT employee_id FROM employees WHERE department_id = $1);
		`, departmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to delete performance rows for department %d: %w", departmentID, err)
		}
		cascade.Performance = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM employees WHERE department_id = $1;`, departmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to delete employees for department %d: %w", departmentID, err)
		}
		cascade.Employees = tag.RowsAffected()

		tag, err = tx.Exec(ctx, `DELETE FROM expenses WHERE department_id = $1;`, departmentID)
		if err != nil {
			return nil, fmt.Errorf("failed to delete expenses for department %d: %w", departmentID, err)
		}
		cascade.Expenses = tag.RowsAffected()
	}

	if _, err := tx.Exec(ctx, `DELETE FROM departments WHERE department_id = $1;`, departmentID); err != nil {
		return nil, fmt.Errorf("failed to delete department %d: %w", departmentID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &cascade, nil
}
