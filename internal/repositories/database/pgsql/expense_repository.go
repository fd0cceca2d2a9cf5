package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
)

// PgxExpenseRepository persists expense rows. Expenses have no dependents, so
// every operation is a single statement.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	query := `
		INSERT INTO expenses (expense_date, amount, category, note, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING expense_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		expense.Date, expense.Amount, expense.Category, expense.Note, expense.DepartmentID,
	).Scan(&expense.ExpenseID)
	if err != nil {
		err = translateConstraintErr(err,
			"duplicate expense",
			fmt.Sprintf("department %d does not exist", expense.DepartmentID))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return &expense, nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	query := `
		SELECT expense_id, expense_date, amount, category, COALESCE(note, ''), department_id
		FROM expenses
		WHERE expense_id = $1;
	`
	var e domain.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&e.ExpenseID, &e.Date, &e.Amount, &e.Category, &e.Note, &e.DepartmentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %d", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to find expense %d: %w", expenseID, err)
	}
	return &e, nil
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, expense_date, amount, category, COALESCE(note, ''), department_id
		FROM expenses
		WHERE 1=1
	`
	args := []any{}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		query += ` AND department_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND expense_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND expense_date <= $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY expense_date DESC, expense_id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var e domain.Expense
		if err := rows.Scan(&e.ExpenseID, &e.Date, &e.Amount, &e.Category, &e.Note, &e.DepartmentID); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: expense %d", apperrors.ErrNotFound, expenseID)
	}
	return nil
}
