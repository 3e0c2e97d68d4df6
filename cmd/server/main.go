package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"petcare-backend-go/internal/api"
	"petcare-backend-go/internal/config"
	"petcare-backend-go/internal/core"
	"petcare-backend-go/internal/db"
	"petcare-backend-go/internal/middleware"
	"petcare-backend-go/internal/storage"
	"petcare-backend-go/pkg/cache"
	"petcare-backend-go/pkg/mailer"
)

func main() {
	// Load .env file. In production, environment variables are set directly.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Error loading .env file:", err)
		}
	}

	// --- 1. Initialize Logger (Zap) ---
	var zapLogger *zap.Logger
	var err error
	if strings.ToLower(os.Getenv("GIN_MODE")) == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Zap logger initialized successfully.")

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	// --- 3. Initialize Firebase Admin SDK (Firestore, Auth, Storage) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth, Storage) initialized successfully.")

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	storageBucket := db.GetStorageBucket()
	if firestoreClient == nil || firebaseAuthClient == nil || storageBucket == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase clients are nil after initialization. Application cannot start.")
	}

	// --- 4. Initialize Repositories and Adapters ---
	profileRepo := db.NewFirestoreProfileRepository(firestoreClient)
	apptRepo := db.NewFirestoreAppointmentRepository(firestoreClient)
	roomRepo := db.NewFirestoreRoomRepository(firestoreClient)
	feedbackRepo := db.NewFirestoreFeedbackRepository(firestoreClient)
	loginEventRepo := db.NewFirestoreLoginEventRepository(firestoreClient)
	authAccounts := db.NewFirebaseAuthAccounts(firebaseAuthClient)
	uploader := storage.NewBucketUploader(storageBucket, appConfig.StorageBucket)
	zapLogger.Info("Repositories initialized successfully.")

	// --- 5. Initialize Optional Infrastructure (mail, cache) ---
	var mail mailer.Mailer
	if appConfig.MailEndpointURL != "" {
		mailClient, err := mailer.NewClient(appConfig.MailEndpointURL, appConfig.MailFrom)
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize mail client", zap.Error(err))
		}
		mail = mailClient
		zapLogger.Info("Mail client initialized", zap.String("endpoint", appConfig.MailEndpointURL))
	} else {
		zapLogger.Warn("MAIL_ENDPOINT_URL not configured; transition emails are disabled.")
	}

	var snapshotCache cache.Cache
	if appConfig.RedisAddr != "" {
		snapshotCache, err = cache.NewRedisCache(initCtx, cache.NewRedisCacheConfig{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis", zap.Error(err))
		}
		zapLogger.Info("Analytics cache enabled", zap.String("redis", appConfig.RedisAddr))
	} else {
		zapLogger.Warn("REDIS_ADDR not configured; analytics snapshots are computed on every request.")
	}

	// --- 6. Initialize Services ---
	profileService := core.NewProfileService(profileRepo, loginEventRepo, authAccounts, uploader)
	bookingService := core.NewBookingService(apptRepo, profileRepo, authAccounts, uploader, appConfig.PlaceholderPhotoURL)
	apptService := core.NewAppointmentService(apptRepo, mail)
	notificationService := core.NewNotificationService(apptRepo)
	analyticsService := core.NewAnalyticsService(apptRepo, snapshotCache)
	roomService := core.NewRoomService(roomRepo, uploader)
	feedbackService := core.NewFeedbackService(feedbackRepo)
	zapLogger.Info("Core services initialized successfully.")

	// --- 7. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// --- 8. Apply Global Middleware (order matters) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 9. Setup API Routes ---
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient, profileService)
	api.SetupRoutes(
		router,
		zapLogger,
		authMW,
		profileService,
		bookingService,
		apptService,
		notificationService,
		analyticsService,
		roomService,
		feedbackService,
	)

	// --- 10. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 11. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	zapLogger.Info("Attempting graceful shutdown of HTTP server...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if firestoreClient != nil {
		firestoreClient.Close()
	}

	zapLogger.Info("Server exiting gracefully.")
}
