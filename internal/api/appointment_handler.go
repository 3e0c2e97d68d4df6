package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/models"
)

// AppointmentHandler handles the role-scoped appointment lists and the
// status workflow (accept / decline / done).
type AppointmentHandler struct {
	apptService core.AppointmentService
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(as core.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{apptService: as}
}

// List handles GET /api/v1/appointments. ?history=true switches staff
// dashboards from the Pending queue to the Accepted/Done history view.
func (h *AppointmentHandler) List(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	history := c.Query("history") == "true"
	appts, err := h.apptService.List(c.Request.Context(), viewer, history)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if appts == nil {
		appts = []*models.Appointment{}
	}
	c.JSON(http.StatusOK, appts)
}

// Get handles GET /api/v1/appointments/:apptId.
func (h *AppointmentHandler) Get(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	appt, err := h.apptService.GetByID(c.Request.Context(), viewer, c.Param("apptId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Accept handles POST /api/v1/appointments/:apptId/accept.
func (h *AppointmentHandler) Accept(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	appt, err := h.apptService.Accept(c.Request.Context(), viewer, c.Param("apptId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Decline handles POST /api/v1/appointments/:apptId/decline. The reason is
// mandatory; an empty one is rejected with 400.
func (h *AppointmentHandler) Decline(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	var req models.DeclineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Decline reason is required", Details: err.Error()})
		return
	}

	appt, err := h.apptService.Decline(c.Request.Context(), viewer, c.Param("apptId"), req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// MarkDone handles POST /api/v1/appointments/:apptId/done. Notes are
// optional; an empty body is accepted.
func (h *AppointmentHandler) MarkDone(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	// An absent body means no notes; EOF from binding covers both empty and
	// chunked requests without a payload.
	var req models.DoneRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid done payload", Details: err.Error()})
		return
	}

	appt, err := h.apptService.MarkDone(c.Request.Context(), viewer, c.Param("apptId"), req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Delete handles DELETE /api/v1/appointments/:apptId.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	if err := h.apptService.Delete(c.Request.Context(), viewer, c.Param("apptId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Appointment deleted"})
}
