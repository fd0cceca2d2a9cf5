package dto

import (
	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// --- Performance DTOs ---

// CreatePerformanceRequest defines data for recording a rating. Month is
// validated against YYYY-MM by the custom ratingmonth rule.
type CreatePerformanceRequest struct {
	EmployeeID int64  `json:"employeeID" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	Month      string `json:"month" binding:"omitempty,ratingmonth"`
	Comments   string `json:"comments"`
}

// PerformanceResponse defines data returned for a performance rating.
type PerformanceResponse struct {
	PerformanceID int64  `json:"performanceID"`
	EmployeeID    int64  `json:"employeeID"`
	Rating        int    `json:"rating"`
	Month         string `json:"month"`
	Comments      string `json:"comments"`
}

// ToPerformanceResponse converts domain.Performance to DTO.
func ToPerformanceResponse(p *domain.Performance) PerformanceResponse {
	return PerformanceResponse{
		PerformanceID: p.PerformanceID,
		EmployeeID:    p.EmployeeID,
		Rating:        p.Rating,
		Month:         p.Month,
		Comments:      p.Comments,
	}
}

// ListPerformanceResponse wraps an employee's ratings.
type ListPerformanceResponse struct {
	Ratings []PerformanceResponse `json:"ratings"`
}

// ToListPerformanceResponse converts a slice of domain.Performance to DTO.
func ToListPerformanceResponse(ps []domain.Performance) ListPerformanceResponse {
	list := make([]PerformanceResponse, len(ps))
	for i, p := range ps {
		list[i] = ToPerformanceResponse(&p)
	}
	return ListPerformanceResponse{Ratings: list}
}
