package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
	"github.com/compstack/company_tracker_app/internal/core/services"
	"github.com/compstack/company_tracker_app/internal/dto"
	"github.com/compstack/company_tracker_app/internal/middleware"
)

// insightHandler serves AI commentary over the company aggregates.
type insightHandler struct {
	insightService portssvc.InsightService
}

func registerInsightRoutes(rg *gin.RouterGroup, is portssvc.InsightService) {
	h := &insightHandler{insightService: is}
	rg.POST("/insights", h.analyzeCompany)
}

func (h *insightHandler) analyzeCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AnalyzeCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AnalyzeCompany", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	insight, err := h.insightService.AnalyzeCompany(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, services.ErrSummarizerUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInsightResponse(insight))
}
