package services

// ServiceContainer holds all the service interfaces the handlers depend on.
type ServiceContainer struct {
	Department  DepartmentService
	Employee    EmployeeService
	Expense     ExpenseService
	Performance PerformanceService
	Reconciler  ReconcilerService
	Reporting   ReportingService
	Insight     InsightService
}
