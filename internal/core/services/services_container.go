package services

import (
	portsrepo "github.com/compstack/company_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
)

// Repositories lists the repository ports the service layer depends on.
type Repositories struct {
	Department  portsrepo.DepartmentRepositoryFacade
	Employee    portsrepo.EmployeeRepositoryFacade
	Expense     portsrepo.ExpenseRepositoryFacade
	Performance portsrepo.PerformanceRepositoryFacade
	Reporting   portsrepo.ReportingRepository
}

// NewServiceContainer wires all services over the given repositories and the
// optional AI summarizer.
func NewServiceContainer(repos Repositories, summarizer portssvc.Summarizer) *portssvc.ServiceContainer {
	reporting := NewReportingService(repos.Reporting, repos.Department)
	return &portssvc.ServiceContainer{
		Department:  NewDepartmentService(repos.Department),
		Employee:    NewEmployeeService(repos.Employee, repos.Department),
		Expense:     NewExpenseService(repos.Expense, repos.Department),
		Performance: NewPerformanceService(repos.Performance, repos.Employee),
		Reconciler:  NewReconcilerService(repos.Employee),
		Reporting:   reporting,
		Insight:     NewInsightService(reporting, summarizer),
	}
}
