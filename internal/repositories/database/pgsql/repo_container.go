package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
)

// RepositoryProvider bundles all pgx-backed repositories over one pool.
type RepositoryProvider struct {
	Department  portsrepo.DepartmentRepositoryFacade
	Employee    portsrepo.EmployeeRepositoryFacade
	Expense     portsrepo.ExpenseRepositoryFacade
	Performance portsrepo.PerformanceRepositoryFacade
	Reporting   portsrepo.ReportingRepository
}

// NewRepositoryProvider wires every repository to the given pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *RepositoryProvider {
	return &RepositoryProvider{
		Department:  newPgxDepartmentRepository(pool),
		Employee:    newPgxEmployeeRepository(pool),
		Expense:     newPgxExpenseRepository(pool),
		Performance: newPgxPerformanceRepository(pool),
		Reporting:   newReportingRepository(pool),
	}
}
