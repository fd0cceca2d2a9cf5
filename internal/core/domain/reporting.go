package domain

import "github.com/shopspring/decimal"

// DepartmentStats is the per-department aggregate computed on demand from a
// single consistent snapshot. AverageRating is 0 when no ratings exist.
type DepartmentStats struct {
	Headcount     int64           `json:"headcount"`
	TotalSalary   decimal.Decimal `json:"totalSalary"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	AverageRating float64         `json:"averageRating"`
}

// DepartmentSummary pairs a department with its aggregates and, for the
// insight prompt, a per-category expense breakdown.
type DepartmentSummary struct {
	Department Department      `json:"department"`
	Stats      DepartmentStats `json:"stats"`
	Categories []CategoryTotal `json:"categories"`
}

// CompanyTotals are the whole-company figures computed in one scan.
type CompanyTotals struct {
	TotalEmployees int64           `json:"totalEmployees"`
	TotalSalary    decimal.Decimal `json:"totalSalary"`
	RecentExpenses decimal.Decimal `json:"recentExpenses"`
}

// CompanyOverview is the whole-company view handed to the AI summarizer.
type CompanyOverview struct {
	TotalEmployees int64               `json:"totalEmployees"`
	TotalSalary    decimal.Decimal     `json:"totalSalary"`
	RecentExpenses decimal.Decimal     `json:"recentExpenses"` // Trailing 30 days
	Departments    []DepartmentSummary `json:"departments"`
}
