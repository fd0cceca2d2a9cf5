package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/compstack/company_tracker_app/internal/core/ports/services"
	"github.com/compstack/company_tracker_app/internal/dto"
)

// reportingHandler serves whole-company aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingService) {
	h := &reportingHandler{reportingService: rs}
	rg.GET("/reports/overview", h.getCompanyOverview)
}

func (h *reportingHandler) getCompanyOverview(c *gin.Context) {
	overview, err := h.reportingService.GetCompanyOverview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCompanyOverviewResponse(overview))
}
