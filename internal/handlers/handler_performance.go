package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
	"github.com/compstack/company_tracker_app/internal/dto"
	"github.com/compstack/company_tracker_app/internal/middleware"
)

// performanceHandler handles HTTP requests that record performance ratings.
// Listings live under the employee routes.
type performanceHandler struct {
	performanceService portssvc.PerformanceService
}

func registerPerformanceRoutes(rg *gin.RouterGroup, ps portssvc.PerformanceService) {
	h := &performanceHandler{performanceService: ps}
	rg.POST("/performance", h.createPerformance)
}

func (h *performanceHandler) createPerformance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePerformanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePerformance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	rating, err := h.performanceService.CreatePerformance(
		c.Request.Context(), req.EmployeeID, req.Rating, req.Month, req.Comments)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPerformanceResponse(rating))
}
