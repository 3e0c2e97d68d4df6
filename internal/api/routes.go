package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is applied to the
// router before this is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	profileService core.ProfileService,
	bookingService core.BookingService,
	apptService core.AppointmentService,
	notificationService core.NotificationService,
	analyticsService core.AnalyticsService,
	roomService core.RoomService,
	feedbackService core.FeedbackService,
) {
	profileHandler := NewProfileHandler(profileService)
	bookingHandler := NewBookingHandler(bookingService)
	apptHandler := NewAppointmentHandler(apptService)
	notificationHandler := NewNotificationHandler(notificationService)
	analyticsHandler := NewAnalyticsHandler(analyticsService)
	roomHandler := NewRoomHandler(roomService)
	feedbackHandler := NewFeedbackHandler(feedbackService)

	apiV1 := router.Group("/api/v1")
	{
		// Public booking endpoint: the workflow creates the owner account
		// itself, so no token is required here.
		apiV1.POST("/bookings", bookingHandler.CreateBooking)

		// Everything below requires a verified token and a resolved profile.
		authed := apiV1.Group("", authMW.VerifyToken(), authMW.ResolveAccount())
		{
			usersGroup := authed.Group("/users")
			{
				usersGroup.POST("/initialize", profileHandler.Initialize)
				usersGroup.GET("/me", profileHandler.GetMe)
				usersGroup.PUT("/me", profileHandler.UpdateMe)
				usersGroup.GET("", authMW.RequireAdmin(), profileHandler.List)
				usersGroup.PUT("/:userId/role", authMW.RequireAdmin(), profileHandler.SetRole)
				usersGroup.DELETE("/:userId", authMW.RequireAdmin(), profileHandler.Delete)
			}

			apptsGroup := authed.Group("/appointments")
			{
				apptsGroup.GET("", apptHandler.List)
				apptsGroup.POST("", authMW.RequireStaff(), bookingHandler.CreateForOwner)
				apptsGroup.GET("/:apptId", apptHandler.Get)
				apptsGroup.POST("/:apptId/accept", authMW.RequireStaff(), apptHandler.Accept)
				apptsGroup.POST("/:apptId/decline", authMW.RequireStaff(), apptHandler.Decline)
				apptsGroup.POST("/:apptId/done", authMW.RequireStaff(), apptHandler.MarkDone)
				apptsGroup.DELETE("/:apptId", apptHandler.Delete)
			}

			notificationsGroup := authed.Group("/notifications")
			{
				notificationsGroup.GET("", notificationHandler.Feed)
				notificationsGroup.POST("/:apptId/read", notificationHandler.MarkRead)
			}

			authed.GET("/analytics", authMW.RequireStaff(), analyticsHandler.Snapshot)

			roomsGroup := authed.Group("/rooms", authMW.RequireStaff())
			{
				roomsGroup.GET("", roomHandler.List)
				roomsGroup.POST("/seed", roomHandler.Seed)
				roomsGroup.PUT("/:label/status", roomHandler.SetStatus)
				roomsGroup.PUT("/:label/image", roomHandler.SetImage)
				roomsGroup.DELETE("/:label", roomHandler.Delete)
			}

			feedbackGroup := authed.Group("/feedback")
			{
				feedbackGroup.POST("", feedbackHandler.Submit)
				feedbackGroup.GET("", authMW.RequireStaff(), feedbackHandler.List)
			}
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Petcare backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
