package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
	"github.com/compstack/company_tracker_app/internal/core/services"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo    *MockExpenseRepository
	mockDepartmentRepo *MockDepartmentRepository
	service            portssvc.ExpenseService
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockDepartmentRepo = new(MockDepartmentRepository)
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockDepartmentRepo)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	ctx := context.Background()
	date := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(199.99)

	suite.mockDepartmentRepo.On("FindDepartmentByID", ctx, int64(1)).
		Return(&domain.Department{DepartmentID: 1, Name: "Tech"}, nil).Once()
	suite.mockExpenseRepo.On("SaveExpense", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category == "Software" && e.Amount.Equal(amount) && e.Date.Equal(date)
	})).Return(&domain.Expense{ExpenseID: 10, Date: date, Amount: amount, Category: "Software", DepartmentID: 1}, nil).Once()

	created, err := suite.service.CreateExpense(ctx, &date, amount, "Software", "", 1)

	suite.Require().NoError(err)
	suite.Equal(int64(10), created.ExpenseID)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_RejectsNonPositiveAmount() {
	ctx := context.Background()

	_, err := suite.service.CreateExpense(ctx, nil, decimal.Zero, "Software", "", 1)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateExpense(ctx, nil, decimal.NewFromInt(-5), "Software", "", 1)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.CreateExpense(ctx, nil, decimal.NewFromInt(5), "  ", "", 1)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_ReturnsDeletedRow() {
	ctx := context.Background()
	expense := &domain.Expense{ExpenseID: 5, Amount: decimal.NewFromInt(100), Category: "Travel"}

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, int64(5)).Return(expense, nil).Once()
	suite.mockExpenseRepo.On("DeleteExpense", ctx, int64(5)).Return(nil).Once()

	deleted, err := suite.service.DeleteExpense(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal("Travel", deleted.Category)
}

func (suite *ExpenseServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("FindExpenseByID", ctx, int64(5)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.DeleteExpense(ctx, 5)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_ComputesTotals() {
	ctx := context.Background()

	suite.mockExpenseRepo.On("ListExpenses", ctx, domain.ExpenseFilter{}).
		Return([]domain.Expense{
			{ExpenseID: 1, Amount: decimal.NewFromInt(100), Category: "Travel"},
			{ExpenseID: 2, Amount: decimal.NewFromInt(250), Category: "Software"},
			{ExpenseID: 3, Amount: decimal.NewFromInt(50), Category: "Travel"},
		}, nil).Once()

	listing, err := suite.service.ListExpenses(ctx, domain.ExpenseFilter{})

	suite.Require().NoError(err)
	suite.True(listing.Total.Equal(decimal.NewFromInt(400)), "total was %s", listing.Total)
	require.Len(suite.T(), listing.Categories, 2)
	// Largest category first.
	suite.Equal("Software", listing.Categories[0].Category)
	suite.True(listing.Categories[0].Total.Equal(decimal.NewFromInt(250)))
	suite.Equal("Travel", listing.Categories[1].Category)
	suite.True(listing.Categories[1].Total.Equal(decimal.NewFromInt(150)))
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
