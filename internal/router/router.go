package router

import (
	"log"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/tuningapp/notification-service/internal/handlers"
	"github.com/tuningapp/notification-service/internal/mailer"
	"github.com/tuningapp/notification-service/internal/middleware"
	"github.com/tuningapp/notification-service/internal/models"
	"github.com/tuningapp/notification-service/internal/repositories"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(
	e *echo.Echo,
	pgdb *gorm.DB,
	firebaseAuthClient *auth.Client,
	sender handlers.NotificationSender,
	logRepo repositories.DispatchLogRepository,
	m mailer.Mailer,
) {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(&models.DispatchLog{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Protected routes (require a Firebase ID token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient))
	log.Println("Firebase authentication middleware applied to /api/v1 group.")

	// Notification send routes
	notificationHandler := handlers.NewNotificationHandler(sender)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	// Dispatch log routes
	dispatchLogHandler := handlers.NewDispatchLogHandler(logRepo)
	dispatchLogHandler.RegisterDispatchLogRoutes(api)
	log.Println("Dispatch log routes configured.")

	// Email relay routes
	emailHandler := handlers.NewEmailHandler(m)
	emailHandler.RegisterEmailRoutes(api)
	log.Println("Email routes configured.")

	log.Println("All routes configured.")
}
