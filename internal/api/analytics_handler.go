package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
)

// AnalyticsHandler serves the aggregated dashboard numbers.
type AnalyticsHandler struct {
	analyticsService core.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(as core.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: as}
}

// Snapshot handles GET /api/v1/analytics. The aggregation is scoped by the
// caller's role: clinics see their clinic, boarding/training their service,
// admin everything.
func (h *AnalyticsHandler) Snapshot(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	snap, err := h.analyticsService.Snapshot(c.Request.Context(), viewer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
