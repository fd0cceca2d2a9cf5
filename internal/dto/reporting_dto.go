package dto

import (
	"github.com/compstack/company_tracker_app/internal/core/domain"
)

// --- Reporting DTOs ---

// DepartmentSummaryResponse pairs a department with its aggregates.
type DepartmentSummaryResponse struct {
	Department DepartmentResponse     `json:"department"`
	Stats      domain.DepartmentStats `json:"stats"`
	Categories []domain.CategoryTotal `json:"categories"`
}

// ToDepartmentSummaryResponse converts a domain summary to DTO.
func ToDepartmentSummaryResponse(s *domain.DepartmentSummary) DepartmentSummaryResponse {
	return DepartmentSummaryResponse{
		Department: ToDepartmentResponse(&s.Department),
		Stats:      s.Stats,
		Categories: s.Categories,
	}
}

// CompanyOverviewResponse is the whole-company report.
type CompanyOverviewResponse struct {
	TotalEmployees int64                       `json:"totalEmployees"`
	TotalSalary    string                      `json:"totalSalary"`
	RecentExpenses string                      `json:"recentExpenses"`
	Departments    []DepartmentSummaryResponse `json:"departments"`
}

// ToCompanyOverviewResponse converts a domain overview to DTO.
func ToCompanyOverviewResponse(o *domain.CompanyOverview) CompanyOverviewResponse {
	departments := make([]DepartmentSummaryResponse, len(o.Departments))
	for i, d := range o.Departments {
		departments[i] = ToDepartmentSummaryResponse(&d)
	}
	return CompanyOverviewResponse{
		TotalEmployees: o.TotalEmployees,
		TotalSalary:    o.TotalSalary.String(),
		RecentExpenses: o.RecentExpenses.String(),
		Departments:    departments,
	}
}
