package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
)

// performanceService implements the PerformanceService interface.
type performanceService struct {
	BaseService
	performanceRepo portsrepo.PerformanceRepositoryFacade
	employeeRepo    portsrepo.EmployeeReader
}

// NewPerformanceService creates a new performance service.
func NewPerformanceService(performanceRepo portsrepo.PerformanceRepositoryFacade, employeeRepo portsrepo.EmployeeReader) portssvc.PerformanceService {
	return &performanceService{
		performanceRepo: performanceRepo,
		employeeRepo:    employeeRepo,
	}
}

var _ portssvc.PerformanceService = (*performanceService)(nil)

func (s *performanceService) CreatePerformance(ctx context.Context, employeeID int64, rating int, month, comments string) (*domain.Performance, error) {
	if !domain.ValidRating(rating) {
		return nil, fmt.Errorf("%w: rating must be between %d and %d, got %d",
			apperrors.ErrValidation, domain.RatingMin, domain.RatingMax, rating)
	}

	month = strings.TrimSpace(month)
	if month == "" {
		month = time.Now().Format(domain.RatingMonthLayout)
	} else if _, err := time.Parse(domain.RatingMonthLayout, month); err != nil {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format, got %q", apperrors.ErrValidation, month)
	}

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}

	performance, err := s.performanceRepo.SavePerformance(ctx, domain.Performance{
		EmployeeID: employeeID,
		Rating:     rating,
		Month:      month,
		Comments:   strings.TrimSpace(comments),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save performance rating",
			slog.Int64("employee_id", employeeID),
			slog.Int("rating", rating))
		return nil, err
	}

	s.LogInfo(ctx, "Performance rating recorded",
		slog.Int64("performance_id", performance.PerformanceID),
		slog.Int64("employee_id", employeeID))
	return performance, nil
}

func (s *performanceService) ListPerformanceForEmployee(ctx context.Context, identifier string) ([]domain.Performance, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: employee identifier must not be empty", apperrors.ErrValidation)
	}

	matches, err := s.employeeRepo.FindEmployeesByIdentifier(ctx, identifier)
	if err != nil {
		s.LogError(ctx, err, "Failed to look up employee", slog.String("identifier", identifier))
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: employee %q", apperrors.ErrNotFound, identifier)
	case 1:
	default:
		numbers := make([]string, len(matches))
		for i, m := range matches {
			numbers[i] = m.EmployeeNumber
		}
		return nil, fmt.Errorf("%w: %q matches employees %s; use an employee number",
			apperrors.ErrAmbiguous, identifier, strings.Join(numbers, ", "))
	}

	ratings, err := s.performanceRepo.ListPerformanceByEmployee(ctx, matches[0].EmployeeID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list performance rows",
			slog.Int64("employee_id", matches[0].EmployeeID))
		return nil, err
	}
	return ratings, nil
}
