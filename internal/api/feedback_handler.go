package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/middleware"
	"petcare-backend-go/internal/models"
)

// FeedbackHandler handles post-appointment feedback submission and listing.
type FeedbackHandler struct {
	feedbackService core.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(fs core.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: fs}
}

// Submit handles POST /api/v1/feedback.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
		return
	}

	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid feedback payload", Details: err.Error()})
		return
	}

	fb, err := h.feedbackService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fb)
}

// List handles GET /api/v1/feedback. Staff-only.
func (h *FeedbackHandler) List(c *gin.Context) {
	entries, err := h.feedbackService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if entries == nil {
		entries = []*models.Feedback{}
	}
	c.JSON(http.StatusOK, entries)
}
