// Package main is the entry point for the website-builder bot service.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sitecraft-ai/sitecraft/internal/bot"
	"github.com/sitecraft-ai/sitecraft/internal/config"
	"github.com/sitecraft-ai/sitecraft/internal/generator"
	"github.com/sitecraft-ai/sitecraft/internal/keypool"
	"github.com/sitecraft-ai/sitecraft/internal/llm"
	"github.com/sitecraft-ai/sitecraft/internal/middleware"
	"github.com/sitecraft-ai/sitecraft/internal/ratelimit"
	"github.com/sitecraft-ai/sitecraft/internal/session"
	"github.com/sitecraft-ai/sitecraft/internal/store"
	"github.com/sitecraft-ai/sitecraft/pkg/logger"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// Initialize logger
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	logger.SetGlobal(log)

	log.Info("starting website builder bot",
		zap.Int("api_keys", len(cfg.APIKeys)),
		zap.String("model", cfg.Model),
	)
	if len(cfg.APIKeys) == 0 {
		log.Warn("no generation API keys configured, every run will fail")
	}

	// Open storage
	repo, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open database", zap.Error(err))
		os.Exit(1)
	}
	defer repo.Close()

	// Assemble the generation pipeline
	keys := keypool.New(cfg.APIKeys, cfg.KeyFailureCooldown)
	client := llm.NewOpenAIClient(cfg.APIBaseURL)
	pipeline := generator.NewPipeline(client, keys, repo, log, generator.Options{
		Model:          cfg.Model,
		Temperature:    cfg.Temperature,
		TopP:           cfg.TopP,
		MaxTokens:      cfg.MaxTokens,
		RequestTimeout: cfg.RequestTimeout,
		MaxRetries:     cfg.MaxRetries,
	})

	// Assemble the conversation controller
	sessions := session.NewStore(cfg.SessionTTL)
	limiter := ratelimit.New(cfg.RateLimitPerUser, cfg.RateLimitWindow)
	transport := bot.NewHTTPTransport(cfg.AdapterURL)
	controller := bot.NewController(sessions, limiter, pipeline, repo, transport, log, cfg.ProgressInterval)
	webhook := bot.NewWebhookHandler(controller, log)

	// Create router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(httprate.LimitByIP(cfg.AdminRateLimit, cfg.AdminRateWindow))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := repo.Ping(req.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/events", webhook.Routes())

	server := &http.Server{
		Addr:         ":" + cfg.AdminPort,
		Handler:      r,
		ReadTimeout:  cfg.AdminReadTimeout,
		WriteTimeout: cfg.AdminWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info("server listening", zap.String("port", cfg.AdminPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
	if err := controller.Shutdown(shutdownCtx); err != nil {
		log.Warn("generation runs did not finish before shutdown", zap.Error(err))
	}

	log.Info("stopped")
}
