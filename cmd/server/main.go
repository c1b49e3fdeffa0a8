package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/tuningapp/notification-service/internal/dispatch"
	"github.com/tuningapp/notification-service/internal/mailer"
	"github.com/tuningapp/notification-service/internal/queue"
	"github.com/tuningapp/notification-service/internal/repositories"
	"github.com/tuningapp/notification-service/internal/router"
	"github.com/tuningapp/notification-service/pkg/config"
	"github.com/tuningapp/notification-service/pkg/firebase"
	"github.com/tuningapp/notification-service/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg.PostgresConnStr)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}
	defer firebaseApp.Close()

	// --- Initialize repositories ---
	queueRepo := repositories.NewFirestoreQueueRepository(firebaseApp.FirestoreClient, cfg.QueueCollection)
	userRepo := repositories.NewFirestoreUserRepository(firebaseApp.FirestoreClient)
	prefRepo := repositories.NewFirestorePreferenceRepository(firebaseApp.FirestoreClient)
	logRepo := repositories.NewPostgresDispatchLogRepository(db.Postgres)

	// --- Initialize the dispatch core ---
	resolver := dispatch.NewRecipientResolver(userRepo, prefRepo)
	batcher := dispatch.NewBatchDispatcher(firebaseApp.MessagingClient)
	orchestrator := dispatch.NewOrchestrator(resolver, batcher, firebaseApp.MessagingClient, queueRepo, userRepo, logRepo)

	// SMTP relay for the email endpoints
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	// Start the queue listener
	listener := queue.NewListener(firebaseApp.FirestoreClient, cfg.QueueCollection, orchestrator)
	go func() {
		if err := listener.Run(ctx); err != nil {
			log.Fatalf("Queue listener stopped: %v", err)
		}
	}()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db.Postgres, firebaseApp.AuthClient, orchestrator, logRepo, smtpMailer)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
