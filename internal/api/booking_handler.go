package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/models"
)

// BookingHandler handles the public booking endpoint and the staff
// appointment modal.
type BookingHandler struct {
	bookingService core.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bs core.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bs}
}

// CreateBooking handles POST /api/v1/bookings. Public: the workflow creates
// the owner account when none exists for the submitted email.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid booking payload", Details: err.Error()})
		return
	}

	appt, err := h.bookingService.Book(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

// CreateForOwner handles POST /api/v1/appointments. Staff-only: creates an
// appointment for an existing owner.
func (h *BookingHandler) CreateForOwner(c *gin.Context) {
	var req models.StaffAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid appointment payload", Details: err.Error()})
		return
	}

	appt, err := h.bookingService.CreateForOwner(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}
