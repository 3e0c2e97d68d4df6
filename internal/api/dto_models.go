package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/middleware"
)

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// viewerFrom builds the core.Viewer from the identity the middleware chain
// resolved into the Gin context.
func viewerFrom(c *gin.Context) (core.Viewer, bool) {
	userID := c.GetString(middleware.ContextUserID)
	role, ok := middleware.RoleFrom(c)
	if userID == "" || !ok {
		return core.Viewer{}, false
	}
	return core.Viewer{UserID: userID, Role: role}, true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Validation errors become 400, scope violations 403, missing documents 404,
// illegal status moves and account conflicts 409; everything else is a 500
// with details.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrWeakPassword),
		errors.Is(err, core.ErrInvalidPhone),
		errors.Is(err, core.ErrPastSchedule),
		errors.Is(err, core.ErrNoServices),
		errors.Is(err, core.ErrUnknownService),
		errors.Is(err, core.ErrMissingPetName),
		errors.Is(err, core.ErrEmptyDeclineReason),
		errors.Is(err, core.ErrInvalidRoomStatus),
		errors.Is(err, core.ErrEmptyRoomLabel),
		errors.Is(err, core.ErrInvalidRating),
		errors.Is(err, core.ErrUnknownRole):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrForbiddenScope):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrAppointmentNotFound),
		errors.Is(err, core.ErrProfileNotFound),
		errors.Is(err, core.ErrOwnerNotFound),
		errors.Is(err, core.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, core.ErrInvalidTransition),
		errors.Is(err, core.ErrAccountExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error", Details: err.Error()})
	}
}
