package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// --- Mock DepartmentRepository ---

type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID int64) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	var department *domain.Department
	if args.Get(0) != nil {
		department = args.Get(0).(*domain.Department)
	}
	return department, args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartmentByName(ctx context.Context, name string) (*domain.Department, error) {
	args := m.Called(ctx, name)
	var department *domain.Department
	if args.Get(0) != nil {
		department = args.Get(0).(*domain.Department)
	}
	return department, args.Error(1)
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	var departments []domain.Department
	if args.Get(0) != nil {
		departments = args.Get(0).([]domain.Department)
	}
	return departments, args.Error(1)
}

func (m *MockDepartmentRepository) CountDependents(ctx context.Context, departmentID int64) (domain.DependentCounts, error) {
	args := m.Called(ctx, departmentID)
	return args.Get(0).(domain.DependentCounts), args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error) {
	args := m.Called(ctx, department)
	var saved *domain.Department
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Department)
	}
	return saved, args.Error(1)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID int64, force bool) (*domain.CascadeCounts, error) {
	args := m.Called(ctx, departmentID, force)
	var cascade *domain.CascadeCounts
	if args.Get(0) != nil {
		cascade = args.Get(0).(*domain.CascadeCounts)
	}
	return cascade, args.Error(1)
}

// --- Mock EmployeeRepository ---

type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByNumber(ctx context.Context, employeeNumber string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeNumber)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeesByIdentifier(ctx context.Context, identifier string) ([]domain.Employee, error) {
	args := m.Called(ctx, identifier)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, departmentID *int64) ([]domain.Employee, error) {
	args := m.Called(ctx, departmentID)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) CreateEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	var created *domain.Employee
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Employee)
	}
	return created, args.Error(1)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmployeeRepository) ReconcileDuplicateGroup(ctx context.Context, canonicalID int64, duplicateIDs []int64) (int64, int64, error) {
	args := m.Called(ctx, canonicalID, duplicateIDs)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// --- Mock ExpenseRepository ---

type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	args := m.Called(ctx, expense)
	var saved *domain.Expense
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Expense)
	}
	return saved, args.Error(1)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID int64) error {
	args := m.Called(ctx, expenseID)
	return args.Error(0)
}

// --- Mock PerformanceRepository ---

type MockPerformanceRepository struct {
	mock.Mock
}

func (m *MockPerformanceRepository) ListPerformanceByEmployee(ctx context.Context, employeeID int64) ([]domain.Performance, error) {
	args := m.Called(ctx, employeeID)
	var ratings []domain.Performance
	if args.Get(0) != nil {
		ratings = args.Get(0).([]domain.Performance)
	}
	return ratings, args.Error(1)
}

func (m *MockPerformanceRepository) SavePerformance(ctx context.Context, performance domain.Performance) (*domain.Performance, error) {
	args := m.Called(ctx, performance)
	var saved *domain.Performance
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Performance)
	}
	return saved, args.Error(1)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDepartmentStats(ctx context.Context, departmentID int64) (*domain.DepartmentStats, error) {
	args := m.Called(ctx, departmentID)
	var stats *domain.DepartmentStats
	if args.Get(0) != nil {
		stats = args.Get(0).(*domain.DepartmentStats)
	}
	return stats, args.Error(1)
}

func (m *MockReportingRepository) GetCategoryTotals(ctx context.Context, departmentID int64) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx, departmentID)
	var totals []domain.CategoryTotal
	if args.Get(0) != nil {
		totals = args.Get(0).([]domain.CategoryTotal)
	}
	return totals, args.Error(1)
}

func (m *MockReportingRepository) GetCompanyTotals(ctx context.Context, expensesSince time.Time) (*domain.CompanyTotals, error) {
	args := m.Called(ctx, expensesSince)
	var totals *domain.CompanyTotals
	if args.Get(0) != nil {
		totals = args.Get(0).(*domain.CompanyTotals)
	}
	return totals, args.Error(1)
}

// --- Mock Summarizer ---

type MockSummarizer struct {
	mock.Mock
}

func (m *MockSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockSummarizer) Model() string {
	args := m.Called()
	return args.String(0)
}
