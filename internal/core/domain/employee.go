package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/compstack/company_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Employee represents a member of staff assigned to one department.
type Employee struct {
	EmployeeID     int64           `json:"employeeID"`     // Primary key
	EmployeeNumber string          `json:"employeeNumber"` // Unique, immutable once assigned (e.g. EMP0001)
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	DepartmentID   int64           `json:"departmentID"` // FK -> departments.department_id
	Salary         decimal.Decimal `json:"salary"`
	JoinDate       time.Time       `json:"joinDate"`
}

// EmployeeDeleteResult describes a completed employee deletion, including how
// many performance rows the cascade removed.
type EmployeeDeleteResult struct {
	Employee       Employee `json:"employee"`
	RatingsRemoved int64    `json:"ratingsRemoved"`
}

const (
	employeeNumberPrefix = "EMP"
	employeeNumberWidth  = 4

	// MaxEmployeeNumberSeq is the last sequence value the fixed-width format
	// can represent. Minting beyond it fails with ErrExhausted.
	MaxEmployeeNumberSeq = 9999
)

// FormatEmployeeNumber renders a sequence value as a fixed-width employee
// number ("EMP0001".."EMP9999").
func FormatEmployeeNumber(seq int64) (string, error) {
	if seq < 1 || seq > MaxEmployeeNumberSeq {
		return "", fmt.Errorf("%w: employee number sequence %d outside 1..%d",
			apperrors.ErrExhausted, seq, MaxEmployeeNumberSeq)
	}
	return fmt.Sprintf("%s%0*d", employeeNumberPrefix, employeeNumberWidth, seq), nil
}

// EmployeeNumberSuffix extracts the numeric suffix of an employee number.
// Values that do not follow the EMPnnnn format report ok=false and are
// ignored when computing the next sequence value.
func EmployeeNumberSuffix(number string) (int64, bool) {
	rest, found := strings.CutPrefix(number, employeeNumberPrefix)
	if !found || rest == "" {
		return 0, false
	}
	seq, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || seq < 0 {
		return 0, false
	}
	return seq, true
}
