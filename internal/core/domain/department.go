package domain

// Department groups employees and expenses under a single budget owner.
type Department struct {
	DepartmentID int64  `json:"departmentID"` // Primary key
	Name         string `json:"name"`         // Unique, compared case-insensitively
	Description  string `json:"description"`
}

// CascadeCounts reports how many dependent rows a department delete removed.
type CascadeCounts struct {
	Employees   int64 `json:"employees"`
	Expenses    int64 `json:"expenses"`
	Performance int64 `json:"performance"`
}

// DepartmentDeleteResult describes the outcome of a department deletion.
// Cascade is only populated when the delete was forced.
type DepartmentDeleteResult struct {
	DepartmentID int64          `json:"departmentID"`
	Name         string         `json:"name"`
	Forced       bool           `json:"forced"`
	Cascade      *CascadeCounts `json:"cascade,omitempty"`
}

// DependentCounts holds the number of rows that reference a department.
// A non-forced delete is refused while either count is non-zero.
type DependentCounts struct {
	Employees int64 `json:"employees"`
	Expenses  int64 `json:"expenses"`
}

func (d DependentCounts) Any() bool {
	return d.Employees > 0 || d.Expenses > 0
}
