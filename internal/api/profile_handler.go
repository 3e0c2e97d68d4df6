package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/middleware"
	"petcare-backend-go/internal/models"
)

// ProfileHandler handles profile initialization and management endpoints.
type ProfileHandler struct {
	profileService core.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(ps core.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// Initialize handles POST /api/v1/users/initialize. Called by a client after
// a Firebase authentication event; the profile was already resolved by the
// middleware chain, so this records the login event and echoes the profile.
func (h *ProfileHandler) Initialize(c *gin.Context) {
	profile, ok := middleware.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: profile not resolved"})
		return
	}

	h.profileService.RecordLogin(c.Request.Context(), models.LoginEvent{
		UserID:    profile.ID,
		Email:     profile.Email,
		Role:      profile.Role,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	})

	c.JSON(http.StatusOK, profile)
}

// GetMe handles GET /api/v1/users/me.
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, ok := middleware.ProfileFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: profile not resolved"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe handles PUT /api/v1/users/me.
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid profile payload", Details: err.Error()})
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// List handles GET /api/v1/users. Admin-only.
func (h *ProfileHandler) List(c *gin.Context) {
	profiles, err := h.profileService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if profiles == nil {
		profiles = []*models.Profile{}
	}
	c.JSON(http.StatusOK, profiles)
}

// SetRole handles PUT /api/v1/users/:userId/role. Admin-only; assigns a
// dashboard role to a user.
func (h *ProfileHandler) SetRole(c *gin.Context) {
	var req models.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid role payload", Details: err.Error()})
		return
	}

	profile, err := h.profileService.SetRole(c.Request.Context(), c.Param("userId"), req.Role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Delete handles DELETE /api/v1/users/:userId. Admin-only; removes the
// profile document and the auth account.
func (h *ProfileHandler) Delete(c *gin.Context) {
	if err := h.profileService.Delete(c.Request.Context(), c.Param("userId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "User deleted"})
}
