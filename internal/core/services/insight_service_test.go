package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	"github.com/compstack/company_tracker_app/internal/core/services"
)

// MockReportingService stubs the reporting port the insight service reads.
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetDepartmentSummary(ctx context.Context, departmentID int64) (*domain.DepartmentSummary, error) {
	args := m.Called(ctx, departmentID)
	var summary *domain.DepartmentSummary
	if args.Get(0) != nil {
		summary = args.Get(0).(*domain.DepartmentSummary)
	}
	return summary, args.Error(1)
}

func (m *MockReportingService) GetCompanyOverview(ctx context.Context) (*domain.CompanyOverview, error) {
	args := m.Called(ctx)
	var overview *domain.CompanyOverview
	if args.Get(0) != nil {
		overview = args.Get(0).(*domain.CompanyOverview)
	}
	return overview, args.Error(1)
}

func TestAnalyzeCompany_PromptCarriesAggregates(t *testing.T) {
	ctx := context.Background()
	mockReporting := new(MockReportingService)
	mockSummarizer := new(MockSummarizer)
	service := services.NewInsightService(mockReporting, mockSummarizer)

	overview := &domain.CompanyOverview{
		TotalEmployees: 7,
		TotalSalary:    decimal.NewFromInt(560000),
		RecentExpenses: decimal.NewFromInt(3100),
	}
	mockReporting.On("GetCompanyOverview", ctx).Return(overview, nil).Once()
	mockSummarizer.On("Summarize", ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "which department spends most?") &&
			strings.Contains(prompt, `"totalEmployees": 7`)
	})).Return("Tech spends the most.", nil).Once()
	mockSummarizer.On("Model").Return("gemini-1.5-flash").Once()

	insight, err := service.AnalyzeCompany(ctx, "which department spends most?")

	require.NoError(t, err)
	assert.Equal(t, "Tech spends the most.", insight.Analysis)
	assert.Equal(t, "gemini-1.5-flash", insight.Model)
	assert.False(t, insight.GeneratedAt.IsZero())
	mockSummarizer.AssertExpectations(t)
}

func TestAnalyzeCompany_EmptyQuery(t *testing.T) {
	service := services.NewInsightService(new(MockReportingService), new(MockSummarizer))

	_, err := service.AnalyzeCompany(context.Background(), "   ")

	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAnalyzeCompany_NoSummarizerConfigured(t *testing.T) {
	service := services.NewInsightService(new(MockReportingService), nil)

	_, err := service.AnalyzeCompany(context.Background(), "how are we doing?")

	require.ErrorIs(t, err, services.ErrSummarizerUnavailable)
}
