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

// employeeNumberLockID is the advisory lock key that serializes employee
// number minting. Concurrent transactions computing the next number queue on
// this lock, so no two of them can observe the same maximum.
const employeeNumberLockID = int64(832041)

// PgxEmployeeRepository persists employees and owns the number-minting,
// cascade-delete and duplicate-merge transactions.
type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `employee_id, employee_number, name, role, department_id, salary, join_date`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(&e.EmployeeID, &e.EmployeeNumber, &e.Name, &e.Role, &e.DepartmentID, &e.Salary, &e.JoinDate)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// CreateEmployee mints the next employee number and inserts the row in a
// single transaction. The scan over existing numbers recomputes the maximum
// suffix instead of keeping a counter, so numbering stays correct across
// restarts and deletions never cause reuse of a lower value.
func (r *PgxEmployeeRepository) CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, employeeNumberLockID); err != nil {
		return nil, fmt.Errorf("failed to acquire employee number lock: %w", err)
	}

	rows, err := tx.Query(ctx, `SELECT employee_number FROM employees;`)
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee numbers: %w", err)
	}
	var maxSeq int64
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan employee number: %w", err)
		}
		if seq, ok := domain.EmployeeNumberSuffix(number); ok && seq > maxSeq {
			maxSeq = seq
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee numbers: %w", err)
	}

	number, err := domain.FormatEmployeeNumber(maxSeq + 1)
	if err != nil {
		return nil, err
	}
	employee.EmployeeNumber = number

	err = tx.QueryRow(ctx, `
		INSERT INTO employees (employee_number, name, role, department_id, salary, join_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING employee_id;
	`, employee.EmployeeNumber, employee.Name, employee.Role, employee.DepartmentID, employee.Salary, employee.JoinDate).Scan(&employee.EmployeeID)
	if err != nil {
		err = translateConstraintErr(err,
			fmt.Sprintf("employee number %q already exists", employee.EmployeeNumber),
			fmt.Sprintf("department %d does not exist", employee.DepartmentID))
		return nil, fmt.Errorf("failed to insert employee: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	e, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %d", apperrors.ErrNotFound, employeeID)
		}
		return nil, fmt.Errorf("failed to find employee %d: %w", employeeID, err)
	}
	return e, nil
}

func (r *PgxEmployeeRepository) FindEmployeeByNumber(ctx context.Context, employeeNumber string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_number = $1;`
	e, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee %q", apperrors.ErrNotFound, employeeNumber)
		}
		return nil, fmt.Errorf("failed to find employee %q: %w", employeeNumber, err)
	}
	return e, nil
}

func (r *PgxEmployeeRepository) FindEmployeesByIdentifier(ctx context.Context, identifier string) ([]domain.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE employee_number = $1 OR LOWER(name) = LOWER($1)
		ORDER BY employee_number;
	`
	return r.queryEmployees(ctx, query, identifier)
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, departmentID *int64) ([]domain.Employee, error) {
	if departmentID != nil {
		query := `
			SELECT ` + employeeColumns + `
			FROM employees
			WHERE department_id = $1
			ORDER BY employee_number;
		`
		return r.queryEmployees(ctx, query, *departmentID)
	}
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY employee_number;`
	return r.queryEmployees(ctx, query)
}

func (r *PgxEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.EmployeeID, &e.EmployeeNumber, &e.Name, &e.Role, &e.DepartmentID, &e.Salary, &e.JoinDate); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}
	return employees, nil
}

// DeleteEmployee removes the employee's performance rows and then the
// employee itself, atomically.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `DELETE FROM performance WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete performance rows for employee %d: %w", employeeID, err)
	}
	ratingsRemoved := tag.RowsAffected()

	tag, err = tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee %d: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, fmt.Errorf("%w: employee %d", apperrors.ErrNotFound, employeeID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return ratingsRemoved, nil
}

// ReconcileDuplicateGroup merges one duplicate group: the duplicates'
// performance rows move to the canonical employee, then the duplicate rows
// are deleted. The whole group is one transaction; a failure rolls the group
// back without affecting other groups.
func (r *PgxEmployeeRepository) ReconcileDuplicateGroup(ctx context.Context, canonicalID int64, duplicateIDs []int64) (int64, int64, error) {
	if len(duplicateIDs) == 0 {
		return 0, 0, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer r.Rollback(ctx, tx)

	tag, err := tx.Exec(ctx, `UPDATE performance SET employee_id = $1 WHERE employee_id = ANY($2);`, canonicalID, duplicateIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to reassign performance rows to employee %d: %w", canonicalID, err)
	}
	reassigned := tag.RowsAffected()

	tag, err = tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = ANY($1);`, duplicateIDs)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete duplicate employees: %w", err)
	}
	removed := tag.RowsAffected()
	if removed != int64(len(duplicateIDs)) {
		return 0, 0, fmt.Errorf("%w: expected to remove %d duplicates, removed %d (concurrent modification)",
			apperrors.ErrConflict, len(duplicateIDs), removed)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, 0, err
	}
	return reassigned, removed, nil
}
