package domain

import (
	"sort"
	"strings"
)

// DuplicateGroup is a set of employees that are logical duplicates: identical
// name (case-insensitive) within the same department. The canonical employee
// is the one with the lowest employee number, i.e. the earliest-created row.
type DuplicateGroup struct {
	Name         string `json:"name"` // Lower-cased grouping key
	DepartmentID int64  `json:"departmentID"`

	Canonical  Employee   `json:"canonical"`
	Duplicates []Employee `json:"duplicates"` // Everything except the canonical row
}

// GroupResult records the outcome of reconciling one duplicate group.
type GroupResult struct {
	Name              string `json:"name"`
	DepartmentID      int64  `json:"departmentID"`
	CanonicalID       int64  `json:"canonicalID"`
	RemovedEmployees  int64  `json:"removedEmployees"`
	ReassignedRatings int64  `json:"reassignedRatings"`
	Error             string `json:"error,omitempty"`
}

// ReconcileReport summarises a full reconciliation run.
type ReconcileReport struct {
	GroupsProcessed int           `json:"groupsProcessed"`
	RowsRemoved     int64         `json:"rowsRemoved"`
	Groups          []GroupResult `json:"groups"`
}

// GroupDuplicates partitions a snapshot of employees into duplicate groups.
// Employees whose (lower(name), department) key is unique produce no group.
// Canonical selection prefers the lowest employee-number suffix; rows with a
// non-conforming number sort after conforming ones, ties break on EmployeeID.
func GroupDuplicates(employees []Employee) []DuplicateGroup {
	type key struct {
		name         string
		departmentID int64
	}
	buckets := make(map[key][]Employee)
	order := make([]key, 0)
	for _, e := range employees {
		k := key{name: strings.ToLower(e.Name), departmentID: e.DepartmentID}
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], e)
	}

	groups := make([]DuplicateGroup, 0)
	for _, k := range order {
		members := buckets[k]
		if len(members) < 2 {
			continue
		}
		sort.SliceStable(members, func(i, j int) bool {
			si, iok := EmployeeNumberSuffix(members[i].EmployeeNumber)
			sj, jok := EmployeeNumberSuffix(members[j].EmployeeNumber)
			if iok != jok {
				return iok
			}
			if iok && si != sj {
				return si < sj
			}
			return members[i].EmployeeID < members[j].EmployeeID
		})
		groups = append(groups, DuplicateGroup{
			Name:         k.name,
			DepartmentID: k.departmentID,
			Canonical:    members[0],
			Duplicates:   members[1:],
		})
	}
	return groups
}
