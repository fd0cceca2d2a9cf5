package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
	"github.com/compstack/company_tracker_app/internal/core/services"
)

type PerformanceServiceTestSuite struct {
	suite.Suite
	mockPerformanceRepo *MockPerformanceRepository
	mockEmployeeRepo    *MockEmployeeRepository
	service             portssvc.PerformanceService
}

func (suite *PerformanceServiceTestSuite) SetupTest() {
	suite.mockPerformanceRepo = new(MockPerformanceRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewPerformanceService(suite.mockPerformanceRepo, suite.mockEmployeeRepo)
}

func (suite *PerformanceServiceTestSuite) TestCreatePerformance_Success() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(1)).
		Return(&domain.Employee{EmployeeID: 1, EmployeeNumber: "EMP0001"}, nil).Once()
	suite.mockPerformanceRepo.On("SavePerformance", ctx, domain.Performance{
		EmployeeID: 1,
		Rating:     4,
		Month:      "2026-07",
		Comments:   "Solid quarter",
	}).Return(&domain.Performance{PerformanceID: 9, EmployeeID: 1, Rating: 4, Month: "2026-07", Comments: "Solid quarter"}, nil).Once()

	created, err := suite.service.CreatePerformance(ctx, 1, 4, "2026-07", " Solid quarter ")

	suite.Require().NoError(err)
	suite.Equal(int64(9), created.PerformanceID)
}

func (suite *PerformanceServiceTestSuite) TestCreatePerformance_RatingOutOfRange() {
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := suite.service.CreatePerformance(ctx, 1, rating, "2026-07", "")
		suite.Require().ErrorIs(err, apperrors.ErrValidation, "rating %d", rating)
	}
	suite.mockPerformanceRepo.AssertNotCalled(suite.T(), "SavePerformance", mock.Anything, mock.Anything)
}

func (suite *PerformanceServiceTestSuite) TestCreatePerformance_BadMonth() {
	_, err := suite.service.CreatePerformance(context.Background(), 1, 3, "July 2026", "")
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PerformanceServiceTestSuite) TestCreatePerformance_DefaultsToCurrentMonth() {
	ctx := context.Background()
	currentMonth := time.Now().Format(domain.RatingMonthLayout)

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(1)).
		Return(&domain.Employee{EmployeeID: 1}, nil).Once()
	suite.mockPerformanceRepo.On("SavePerformance", ctx, mock.MatchedBy(func(p domain.Performance) bool {
		return p.Month == currentMonth
	})).Return(&domain.Performance{PerformanceID: 1, EmployeeID: 1, Rating: 3, Month: currentMonth}, nil).Once()

	created, err := suite.service.CreatePerformance(ctx, 1, 3, "", "")

	suite.Require().NoError(err)
	suite.Equal(currentMonth, created.Month)
}

func (suite *PerformanceServiceTestSuite) TestListPerformanceForEmployee_ByName() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeesByIdentifier", ctx, "Alice").
		Return([]domain.Employee{{EmployeeID: 1, EmployeeNumber: "EMP0001", Name: "Alice"}}, nil).Once()
	suite.mockPerformanceRepo.On("ListPerformanceByEmployee", ctx, int64(1)).
		Return([]domain.Performance{{PerformanceID: 1, EmployeeID: 1, Rating: 5, Month: "2026-06"}}, nil).Once()

	ratings, err := suite.service.ListPerformanceForEmployee(ctx, "Alice")

	suite.Require().NoError(err)
	suite.Require().Len(ratings, 1)
	suite.Equal(5, ratings[0].Rating)
}

func (suite *PerformanceServiceTestSuite) TestListPerformanceForEmployee_Ambiguous() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeesByIdentifier", ctx, "Alice").
		Return([]domain.Employee{
			{EmployeeID: 1, EmployeeNumber: "EMP0001"},
			{EmployeeID: 2, EmployeeNumber: "EMP0002"},
		}, nil).Once()

	_, err := suite.service.ListPerformanceForEmployee(ctx, "Alice")

	suite.Require().ErrorIs(err, apperrors.ErrAmbiguous)
	suite.mockPerformanceRepo.AssertNotCalled(suite.T(), "ListPerformanceByEmployee", mock.Anything, mock.Anything)
}

func TestPerformanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PerformanceServiceTestSuite))
}
