package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/akerley/pocketledger/internal/apperrors"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
	"github.com/akerley/pocketledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for derived cross-wallet reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/totals", h.getTotalsByCurrency)
	}
}

func (h *reportingHandler) getTotalsByCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.reportingService.TotalsByCurrency(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Store unavailable building totals report", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable"})
		} else {
			logger.Error("Failed to build totals report", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build totals report"})
		}
		return
	}

	c.JSON(http.StatusOK, totals)
}
