package services

import (
	"context"
	"log/slog"

	"github.com/compstack/company_tracker_app/internal/core/domain"
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
)

// reconcilerService implements the ReconcilerService interface.
type reconcilerService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewReconcilerService creates a new duplicate reconciler.
func NewReconcilerService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.ReconcilerService {
	return &reconcilerService{employeeRepo: employeeRepo}
}

var _ portssvc.ReconcilerService = (*reconcilerService)(nil)

// ReconcileDuplicates takes a snapshot of all employees, partitions it into
// duplicate groups and merges each group in its own transaction. A group that
// fails is reported in its result and does not stop the remaining groups.
func (s *reconcilerService) ReconcileDuplicates(ctx context.Context) (*domain.ReconcileReport, error) {
	snapshot, err := s.employeeRepo.ListEmployees(ctx, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot employees for reconciliation")
		return nil, err
	}

	groups := domain.GroupDuplicates(snapshot)
	report := &domain.ReconcileReport{
		GroupsProcessed: len(groups),
		Groups:          make([]domain.GroupResult, 0, len(groups)),
	}

	for _, group := range groups {
		duplicateIDs := make([]int64, len(group.Duplicates))
		for i, d := range group.Duplicates {
			duplicateIDs[i] = d.EmployeeID
		}

		result := domain.GroupResult{
			Name:         group.Name,
			DepartmentID: group.DepartmentID,
			CanonicalID:  group.Canonical.EmployeeID,
		}

		reassigned, removed, err := s.employeeRepo.ReconcileDuplicateGroup(ctx, group.Canonical.EmployeeID, duplicateIDs)
		if err != nil {
			s.LogError(ctx, err, "Failed to reconcile duplicate group",
				slog.String("name", group.Name),
				slog.Int64("department_id", group.DepartmentID))
			result.Error = err.Error()
		} else {
			result.ReassignedRatings = reassigned
			result.RemovedEmployees = removed
			report.RowsRemoved += removed
		}
		report.Groups = append(report.Groups, result)
	}

	s.LogInfo(ctx, "Duplicate reconciliation finished",
		slog.Int("groups", report.GroupsProcessed),
		slog.Int64("rows_removed", report.RowsRemoved))
	return report, nil
}
