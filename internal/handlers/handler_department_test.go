package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
	"github.com/compstack/company_tracker_app/internal/handlers"
	"github.com/compstack/company_tracker_app/internal/platform/config"
)

// --- Mock DepartmentService ---

type MockDepartmentService struct {
	mock.Mock
}

func (m *MockDepartmentService) CreateDepartment(ctx context.Context, name, description string) (*domain.Department, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentService) GetDepartment(ctx context.Context, departmentID int64) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentService) DeleteDepartment(ctx context.Context, departmentID int64, force bool) (*domain.DepartmentDeleteResult, error) {
	args := m.Called(ctx, departmentID, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartmentDeleteResult), args.Error(1)
}

var _ portssvc.DepartmentService = (*MockDepartmentService)(nil)

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetDepartmentSummary(ctx context.Context, departmentID int64) (*domain.DepartmentSummary, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DepartmentSummary), args.Error(1)
}

func (m *MockReportingService) GetCompanyOverview(ctx context.Context) (*domain.CompanyOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyOverview), args.Error(1)
}

var _ portssvc.ReportingService = (*MockReportingService)(nil)

// --- Test Suite ---

type DepartmentHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	jwtSecret             string
	mockDepartmentService *MockDepartmentService
	mockReportingService  *MockReportingService
}

func (suite *DepartmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockDepartmentService = new(MockDepartmentService)
	suite.mockReportingService = new(MockReportingService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTIssuer:         "cta-test",
		JWTExpiryDuration: time.Hour,
		ServiceSecret:     "test-service-secret",
	}

	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Department: suite.mockDepartmentService,
		Reporting:  suite.mockReportingService,
	})
}

func (suite *DepartmentHandlerTestSuite) generateTestToken() string {
	claims := jwt.RegisteredClaims{
		Issuer:    "cta-test",
		Subject:   "assistant",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DepartmentHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartment_Success() {
	suite.mockDepartmentService.On("CreateDepartment", mock.Anything, "Tech", "Engineering").
		Return(&domain.Department{DepartmentID: 1, Name: "Tech", Description: "Engineering"}, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/departments",
		gin.H{"name": "Tech", "description": "Engineering"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"name":"Tech"`)
	suite.mockDepartmentService.AssertExpectations(suite.T())
}

func (suite *DepartmentHandlerTestSuite) TestCreateDepartment_ConflictMapsTo409() {
	suite.mockDepartmentService.On("CreateDepartment", mock.Anything, "Tech", "").
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/departments", gin.H{"name": "Tech"})

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), `"kind":"CONFLICT"`)
}

func (suite *DepartmentHandlerTestSuite) TestGetDepartment_NotFoundMapsTo404() {
	suite.mockDepartmentService.On("GetDepartment", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/departments/99", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), `"kind":"NOT_FOUND"`)
}

func (suite *DepartmentHandlerTestSuite) TestDeleteDepartment_ForceQueryIsForwarded() {
	suite.mockDepartmentService.On("DeleteDepartment", mock.Anything, int64(2), true).
		Return(&domain.DepartmentDeleteResult{
			DepartmentID: 2,
			Name:         "HR",
			Forced:       true,
			Cascade:      &domain.CascadeCounts{Employees: 1, Expenses: 2, Performance: 3},
		}, nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/departments/2?force=true", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"forced":true`)
	suite.mockDepartmentService.AssertExpectations(suite.T())
}

func (suite *DepartmentHandlerTestSuite) TestDeleteDepartment_InvalidID() {
	w := suite.doRequest(http.MethodDelete, "/api/v1/departments/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDepartmentService.AssertNotCalled(suite.T(), "DeleteDepartment",
		mock.Anything, mock.Anything, mock.Anything)
}

func (suite *DepartmentHandlerTestSuite) TestMissingToken_Unauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestDepartmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DepartmentHandlerTestSuite))
}
