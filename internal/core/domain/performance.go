package domain

// Rating bounds for performance reviews.
const (
	RatingMin = 1
	RatingMax = 5
)

// RatingMonthLayout is the time layout for the month a rating covers.
const RatingMonthLayout = "2006-01"

// Performance is a monthly rating recorded for one employee. Rows are never
// deleted directly; they are removed when the owning employee is deleted and
// reassigned during duplicate reconciliation.
type Performance struct {
	PerformanceID int64  `json:"performanceID"` // Primary key
	EmployeeID    int64  `json:"employeeID"`    // FK -> employees.employee_id
	Rating        int    `json:"rating"`        // RatingMin..RatingMax
	Month         string `json:"month"`         // RatingMonthLayout, e.g. "2026-08"
	Comments      string `json:"comments"`
}

// ValidRating reports whether a rating is inside the bounded scale.
func ValidRating(rating int) bool {
	return rating >= RatingMin && rating <= RatingMax
}
