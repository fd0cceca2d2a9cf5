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

// departmentHandler handles HTTP requests related to departments.
type departmentHandler struct {
	departmentService portssvc.DepartmentService
	reportingService  portssvc.ReportingService
}

func newDepartmentHandler(ds portssvc.DepartmentService, rs portssvc.ReportingService) *departmentHandler {
	return &departmentHandler{
		departmentService: ds,
		reportingService:  rs,
	}
}

// registerDepartmentRoutes registers routes for departments and their
// summaries.
func registerDepartmentRoutes(rg *gin.RouterGroup, ds portssvc.DepartmentService, rs portssvc.ReportingService) {
	h := newDepartmentHandler(ds, rs)

	departments := rg.Group("/departments")
	{
		departments.POST("", h.createDepartment)
		departments.GET("", h.listDepartments)
		departments.GET("/:department_id", h.getDepartment)
		departments.DELETE("/:department_id", h.deleteDepartment)
		departments.GET("/:department_id/summary", h.getDepartmentSummary)
	}
}

func parseDepartmentID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("department_id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "department_id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func (h *departmentHandler) createDepartment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDepartment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	department, err := h.departmentService.CreateDepartment(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToDepartmentResponse(department))
}

func (h *departmentHandler) listDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepartmentsResponse(departments))
}

func (h *departmentHandler) getDepartment(c *gin.Context) {
	id, ok := parseDepartmentID(c)
	if !ok {
		return
	}
	department, err := h.departmentService.GetDepartment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentResponse(department))
}

func (h *departmentHandler) deleteDepartment(c *gin.Context) {
	id, ok := parseDepartmentID(c)
	if !ok {
		return
	}
	force := c.Query("force") == "true"

	result, err := h.departmentService.DeleteDepartment(c.Request.Context(), id, force)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDeleteDepartmentResponse(result))
}

func (h *departmentHandler) getDepartmentSummary(c *gin.Context) {
	id, ok := parseDepartmentID(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.GetDepartmentSummary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDepartmentSummaryResponse(summary))
}
