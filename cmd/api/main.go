package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"empleaworks-backend/config"
	v1 "empleaworks-backend/internal/delivery/http/v1"
	"empleaworks-backend/internal/jobs"
	"empleaworks-backend/internal/repository/postgres"
	"empleaworks-backend/internal/repository/redisrepo"
	"empleaworks-backend/internal/usecase"
	"empleaworks-backend/pkg/database"
	"empleaworks-backend/pkg/email"
	"empleaworks-backend/pkg/logger"
	"empleaworks-backend/pkg/oauth"
	"empleaworks-backend/pkg/redis"
	"empleaworks-backend/pkg/storage"
	"empleaworks-backend/pkg/token"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting + reset tokens)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory rate limiting", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	offerRepo := postgres.NewOfferRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	savedOfferRepo := postgres.NewSavedOfferRepository(dbPool)
	resetTokenRepo := redisrepo.NewResetTokenRepository(redis.Client())

	// 6. Setup File Storage
	fileStore, err := newFileStore(cfg)
	if err != nil {
		logger.Log.Error("Failed to set up file storage", "error", err)
		os.Exit(1)
	}

	// 7. Setup Email Service
	mailer := email.NewMailer(cfg)
	if !mailer.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notification mails will be skipped")
	}

	// 8. Setup Session Tokens and Google OAuth
	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	google := oauth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL)

	// 9. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo, candidateRepo, companyRepo, resetTokenRepo, tokens, mailer, fileStore, validate, cfg.FrontendURL, cfg.DefaultLocale)
	candidateUC := usecase.NewCandidateUsecase(userRepo, candidateRepo, fileStore, validate)
	companyUC := usecase.NewCompanyUsecase(userRepo, companyRepo, fileStore, validate)
	offerUC := usecase.NewOfferUsecase(offerRepo, validate)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, offerRepo, userRepo, candidateRepo, mailer, fileStore)
	savedOfferUC := usecase.NewSavedOfferUsecase(savedOfferRepo, applicationRepo, offerRepo)
	cleanupUC := usecase.NewCleanupUsecase(offerRepo)

	// 10. Schedule Offer Cleanup
	cleanupRunner := jobs.NewCleanupRunner(cleanupUC, cfg.CleanupSchedule, cfg.OfferGraceDays)
	if err := cleanupRunner.Start(); err != nil {
		logger.Log.Error("Failed to schedule offer cleanup", "error", err)
		os.Exit(1)
	}

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		CandidateUC:   candidateUC,
		CompanyUC:     companyUC,
		OfferUC:       offerUC,
		ApplicationUC: applicationUC,
		SavedOfferUC:  savedOfferUC,
		Tokens:        tokens,
		Google:        google,
		Config:        cfg,
	})

	// 12. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	cleanupRunner.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

func newFileStore(cfg *config.Config) (storage.FileStore, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Store(context.Background(), storage.S3Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
		})
	}
	return storage.NewDiskStore(cfg.StorageDir)
}
