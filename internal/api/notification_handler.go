package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
)

// NotificationHandler handles the derived notification feed.
type NotificationHandler struct {
	notificationService core.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(ns core.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: ns}
}

// Feed handles GET /api/v1/notifications.
func (h *NotificationHandler) Feed(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	feed, err := h.notificationService.Feed(c.Request.Context(), viewer)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if feed == nil {
		feed = []core.Notification{}
	}
	c.JSON(http.StatusOK, feed)
}

// MarkRead handles POST /api/v1/notifications/:apptId/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	viewer, ok := viewerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: viewer not resolved"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), viewer, c.Param("apptId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "Notification marked read"})
}
