package middleware

import (
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/models"
)

// ErrorResponse is a local definition for sending standardized error
// messages. It mirrors the one in internal/api/dto_models.go to avoid import
// cycles.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Context keys populated by this middleware chain.
const (
	ContextUserID  = "userID"
	ContextEmail   = "userEmail"
	ContextName    = "userDisplayName"
	ContextPhoto   = "userPhotoURL"
	ContextProfile = "profile"
	ContextRole    = "role"
)

// AuthMiddleware provides Gin middleware for Firebase token authentication
// and session role resolution.
type AuthMiddleware struct {
	firebaseAuthClient *auth.Client
	profileService     core.ProfileService
}

// NewAuthMiddleware creates a new AuthMiddleware instance. It panics on nil
// dependencies, as authenticated routes cannot function without them.
func NewAuthMiddleware(fbAuthClient *auth.Client, ps core.ProfileService) *AuthMiddleware {
	if fbAuthClient == nil {
		panic("Firebase Auth client is not initialized for AuthMiddleware")
	}
	if ps == nil {
		panic("ProfileService is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{firebaseAuthClient: fbAuthClient, profileService: ps}
}

// VerifyToken verifies a Firebase ID token from the Authorization header and
// sets the token identity in the Gin context.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
			return
		}
		idToken := parts[1]

		token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), idToken)
		if err != nil {
			log.Printf("AuthMiddleware: Error verifying Firebase ID token: %v", err)
			// Generic message to the client; details stay server-side.
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
			return
		}

		c.Set(ContextUserID, token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set(ContextEmail, email)
		}
		if name, ok := token.Claims["name"].(string); ok {
			c.Set(ContextName, name)
		}
		if picture, ok := token.Claims["picture"].(string); ok {
			c.Set(ContextPhoto, picture)
		}

		c.Next()
	}
}

// ResolveAccount loads the caller's profile (creating an owner profile on
// first contact) and parses the stored role string into the Role enum once
// per request. Downstream handlers read the Viewer from context instead of
// re-parsing role strings.
func (m *AuthMiddleware) ResolveAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication error: User ID not found in context"})
			return
		}

		profile, _, err := m.profileService.GetOrCreate(
			c.Request.Context(),
			userID,
			c.GetString(ContextEmail),
			c.GetString(ContextName),
			c.GetString(ContextPhoto),
		)
		if err != nil {
			log.Printf("AuthMiddleware: failed to resolve profile for '%s': %v", userID, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve account"})
			return
		}

		c.Set(ContextProfile, profile)
		c.Set(ContextRole, profile.ParsedRole())
		c.Next()
	}
}

// RequireStaff rejects callers whose resolved role is not a staff dashboard
// role.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFrom(c)
		if !ok || !role.IsStaff() {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Staff access required"})
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects non-admin callers.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := RoleFrom(c)
		if !ok || role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
			return
		}
		c.Next()
	}
}

// RoleFrom extracts the resolved Role from the Gin context.
func RoleFrom(c *gin.Context) (models.Role, bool) {
	raw, exists := c.Get(ContextRole)
	if !exists {
		return "", false
	}
	role, ok := raw.(models.Role)
	return role, ok
}

// ProfileFrom extracts the resolved profile from the Gin context.
func ProfileFrom(c *gin.Context) (*models.Profile, bool) {
	raw, exists := c.Get(ContextProfile)
	if !exists {
		return nil, false
	}
	profile, ok := raw.(*models.Profile)
	return profile, ok
}
