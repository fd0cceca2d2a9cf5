package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
	"github.com/compstack/company_tracker_app/internal/dto"
	"github.com/compstack/company_tracker_app/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees, including
// duplicate reconciliation and per-employee performance listings.
type employeeHandler struct {
	employeeService    portssvc.EmployeeService
	performanceService portssvc.PerformanceService
	reconcilerService  portssvc.ReconcilerService
}

func newEmployeeHandler(es portssvc.EmployeeService, ps portssvc.PerformanceService, rs portssvc.ReconcilerService) *employeeHandler {
	return &employeeHandler{
		employeeService:    es,
		performanceService: ps,
		reconcilerService:  rs,
	}
}

// registerEmployeeRoutes registers employee routes. The :identifier segment
// accepts an employee number or an exact name.
func registerEmployeeRoutes(rg *gin.RouterGroup, es portssvc.EmployeeService, ps portssvc.PerformanceService, rs portssvc.ReconcilerService) {
	h := newEmployeeHandler(es, ps, rs)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.POST("/reconcile", h.reconcileDuplicates)
		employees.GET("/:identifier", h.getEmployee)
		employees.DELETE("/:identifier", h.deleteEmployee)
		employees.GET("/:identifier/performance", h.listPerformance)
	}
}

func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.CreateEmployee(
		c.Request.Context(), req.Name, req.Role, req.DepartmentID, req.Salary, req.JoinDateTime())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) listEmployees(c *gin.Context) {
	var departmentID *int64
	if raw := c.Query("department_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "department_id must be a positive integer"})
			return
		}
		departmentID = &id
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

func (h *employeeHandler) getEmployee(c *gin.Context) {
	employee, err := h.employeeService.GetEmployeeByNumber(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	result, err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDeleteEmployeeResponse(result))
}

func (h *employeeHandler) listPerformance(c *gin.Context) {
	ratings, err := h.performanceService.ListPerformanceForEmployee(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPerformanceResponse(ratings))
}

func (h *employeeHandler) reconcileDuplicates(c *gin.Context) {
	report, err := h.reconcilerService.ReconcileDuplicates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
