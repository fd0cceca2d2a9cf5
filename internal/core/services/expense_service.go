package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
)

// expenseService implements the ExpenseService interface.
type expenseService struct {
	BaseService
	expenseRepo    portsrepo.ExpenseRepositoryFacade
	departmentRepo portsrepo.DepartmentReader
}

// NewExpenseService creates a new expense service.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, departmentRepo portsrepo.DepartmentReader) portssvc.ExpenseService {
	return &expenseService{
		expenseRepo:    expenseRepo,
		departmentRepo: departmentRepo,
	}
}

var _ portssvc.ExpenseService = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, date *time.Time, amount decimal.Decimal, category, note string, departmentID int64) (*domain.Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: expense category must not be empty", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrValidation, amount)
	}

	if _, err := s.departmentRepo.FindDepartmentByID(ctx, departmentID); err != nil {
		return nil, err
	}

	when := time.Now()
	if date != nil {
		when = *date
	}

	expense, err := s.expenseRepo.SaveExpense(ctx, domain.Expense{
		Date:         when,
		Amount:       amount,
		Category:     category,
		Note:         strings.TrimSpace(note),
		DepartmentID: departmentID,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save expense",
			slog.String("category", category),
			slog.Int64("department_id", departmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created",
		slog.Int64("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.Int64("expense_id", expenseID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Expense deleted", slog.Int64("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) (*domain.ExpenseListing, error) {
	if filter.DepartmentID != nil {
		if _, err := s.departmentRepo.FindDepartmentByID(ctx, *filter.DepartmentID); err != nil {
			return nil, err
		}
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, err
	}

	total := decimal.Zero
	byCategory := map[string]decimal.Decimal{}
	for _, e := range expenses {
		total = total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	categories := make([]domain.CategoryTotal, 0, len(byCategory))
	for category, sum := range byCategory {
		categories = append(categories, domain.CategoryTotal{Category: category, Total: sum})
	}
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].Total.Equal(categories[j].Total) {
			return categories[i].Total.GreaterThan(categories[j].Total)
		}
		return categories[i].Category < categories[j].Category
	})

	return &domain.ExpenseListing{
		Expenses:   expenses,
		Total:      total,
		Categories: categories,
	}, nil
}
