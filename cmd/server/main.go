package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"learnpath_backend/internal/api"
	"learnpath_backend/internal/app/service"
	"learnpath_backend/internal/common/security"
	"learnpath_backend/internal/domain/repository"
	"learnpath_backend/internal/platform/config"
	"learnpath_backend/internal/platform/database"
	"learnpath_backend/internal/platform/genai"
	"learnpath_backend/internal/platform/pdftext"
	"learnpath_backend/internal/platform/sessionstore"
)

func main() {
	// 1. Load Configuration (fails fast without the Gemini credential)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// 2. Logger
	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	// 3. Database
	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		logger.Fatalw("Database connection failed", "error", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// 4. Redis session store
	rdb, err := sessionstore.Connect(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatalw("Redis connection failed", "error", err)
	}
	defer rdb.Close()
	sessions := sessionstore.NewRedisStore(rdb)
	logger.Info("Redis connected")

	// 5. Generation client
	genClient, err := genai.NewClient(logger, cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Fatalw("Generation client init failed", "error", err)
	}

	// 6. Repositories & Services
	userRepo := repository.NewPgUserRepository(db)
	tokenAuth := security.NewTokenAuth(cfg.JWTKey)

	authService := service.NewAuthService(userRepo, sessions, tokenAuth, cfg.SessionExp)
	roadmapService := service.NewRoadmapService()
	gatewayService := service.NewGatewayService(genClient, pdftext.Extract, logger)

	// 7. Router & HTTP Server
	router := api.NewRouter(authService, roadmapService, gatewayService, sessions, tokenAuth, cfg.SessionExp)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infow("Server starting", "port", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("Could not listen", "port", cfg.APIPort, "error", err)
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalw("Server shutdown failed", "error", err)
	}

	logger.Info("Server stopped gracefully")
}
