package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"portfolio-contact-backend/config"
	_ "portfolio-contact-backend/docs" // Important for Swagger
	"portfolio-contact-backend/internal/delivery/http/middleware"
	v1 "portfolio-contact-backend/internal/delivery/http/v1"
	"portfolio-contact-backend/internal/repository"
	"portfolio-contact-backend/internal/usecase"
	"portfolio-contact-backend/pkg/auth"
	"portfolio-contact-backend/pkg/email"
	"portfolio-contact-backend/pkg/logger"
	pkgredis "portfolio-contact-backend/pkg/redis"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Contact form backend for a personal portfolio site.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio contact backend", "port", cfg.Port, "test_mode", cfg.ContactTestMode)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	// 3. Setup Outcome Store (optional)
	outcomeRepo, closeStore, err := repository.OpenOutcomeStore(startupCtx, cfg)
	if err != nil {
		logger.Log.Error("Failed to open outcome store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// 4. Setup Redis (optional, rate limiting only)
	var redisClient *goredis.Client
	var redisPing usecase.Pinger
	if cfg.UpstashRedisURL != "" {
		redisClient, err = pkgredis.Connect(startupCtx, pkgredis.Config{
			URL:      cfg.UpstashRedisURL,
			Password: cfg.UpstashRedisPassword,
		})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			redisPing = pkgredis.HealthCheck(redisClient)
		}
	}

	// 5. Setup Email Client
	emailClient := email.NewClient(cfg)
	if !cfg.ContactTestMode && !emailClient.IsConfigured() {
		logger.Log.Warn("EmailJS not fully configured - contact form will be unavailable")
	}

	// 6. Setup UseCases
	contactUC := usecase.NewContactUsecase(emailClient, usecase.ContactConfigFrom(cfg), outcomeRepo)
	contactForms := usecase.NewContactForms(contactUC)
	adminUC := usecase.NewAdminUsecase(outcomeRepo)
	healthUC := usecase.NewHealthUsecase(contactUC, outcomeRepo, redisPing)

	// 7. Setup Admin Token Issuer
	adminIssuer := auth.NewIssuer(cfg.AdminJWTSecret)
	if !adminIssuer.Enabled() {
		logger.Log.Warn("ADMIN_JWT_SECRET not set - admin routes are disabled")
	}

	// 8. Setup Router
	limiter := middleware.NewRateLimiter(redisClient)
	defer limiter.Stop()

	router := v1.NewRouter(v1.RouterDeps{
		ContactForms:      contactForms,
		AdminUC:           adminUC,
		HealthUC:          healthUC,
		Owner:             usecase.OwnerProfileFrom(cfg),
		AdminIssuer:       adminIssuer,
		RateLimiter:       limiter,
		TrustedProxies:    cfg.TrustedProxies,
		FrontendURL:       cfg.FrontendURL,
		AllowLocalhost:    gin.Mode() != gin.ReleaseMode,
		GlobalRateLimit:   cfg.RateLimitGlobalThreshold,
		ContactRatePerMin: cfg.RateLimitContactPerMinute,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	// In-flight submissions may be waiting on the provider
	ctx, cancel := context.WithTimeout(context.Background(), cfg.EmailJSTimeout*3+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
