package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "accreditation-backend/internal/api/http"
	"accreditation-backend/internal/config"
	"accreditation-backend/internal/jobs"
	"accreditation-backend/internal/logger"
	"accreditation-backend/internal/registration"
	"accreditation-backend/internal/repository/postgres"
	"accreditation-backend/internal/scheduler"
	"accreditation-backend/internal/security"
	"accreditation-backend/internal/service"
	"accreditation-backend/internal/workflow"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Accreditation Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	// Initialize Workflow Engine
	engine := workflow.NewEngine(
		store.ParticipantRepository,
		store.WorkflowRepository,
		store.ApprovalRepository,
		store.ParticipantTypeRepository,
		emailSvc,
	)
	quota := workflow.NewQuotaEvaluator(
		store.ParticipantRepository,
		store.WishlistRepository,
		store.ParticipantTypeRepository,
		*cfg.Registration.UnlimitedWhenUnconstrained,
	)
	codes := registration.NewCodeIssuer(registration.NewCodeGenerator(), store.ParticipantRepository)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	accreditationSvc := service.NewAccreditationService(
		engine,
		store.ParticipantRepository,
		store.WorkflowRepository,
		store.ApprovalRepository,
		store.InvitationRepository,
		store.UserRepository,
		store.NotificationRepository,
	)
	registrationSvc := service.NewRegistrationService(
		store.ParticipantRepository,
		store.InvitationRepository,
		store.ParticipantTypeRepository,
		store.WorkflowRepository,
		store.EventRepository,
		store.DraftRepository,
		quota,
		codes,
		emailSvc,
	)
	eventSvc := service.NewEventService(store.EventRepository, store.ParticipantTypeRepository, store.WorkflowRepository)
	invitationSvc := service.NewInvitationService(store.InvitationRepository)
	exportSvc := service.NewExportService(store.ParticipantRepository, store.ParticipantTypeRepository, store.EventRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP handlers and router
	handlers := httpapi.NewHandlers(authSvc, registrationSvc, accreditationSvc, eventSvc, invitationSvc, exportSvc, noteSvc)
	router := httpapi.NewRouter(handlers, tokenManager)

	// Initialize in-process scheduler
	jobRunner := jobs.NewJobRunner(db, store, engine, &jobs.Services{Email: emailSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// Serve until interrupted, then drain
	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
