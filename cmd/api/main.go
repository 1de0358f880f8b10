package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TanujaMore/modern-digital-banking-backend/internal/api/handlers"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/auth"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/config"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/logger"
	"github.com/TanujaMore/modern-digital-banking-backend/internal/store/postgres"
)

func main() {
	// Parse command-line flags
	var (
		port = flag.String("port", "", "HTTP server port (overrides PORT env)")
	)
	flag.Parse()

	cfg := config.Load()
	if *port != "" {
		cfg.Port = *port
	}

	// Initialize logger
	log := logger.New(cfg.LogLevel)

	// Initialize storage
	st, err := postgres.Open(cfg.DB.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer st.Close()

	authSvc := auth.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	handler := handlers.NewRouter(st, authSvc, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
