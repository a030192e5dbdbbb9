package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/application/services"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/config"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/infrastructure/redeban"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/telemetry"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting bridge service",
		"port", cfg.Server.Port,
		"env", cfg.Primary.Env,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Primary.Env)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	docs, err := handlers.LoadDocs(ctx)
	if err != nil {
		logger.Error("failed to load openapi document", "error", err)
		os.Exit(1)
	}

	sdk := redeban.NewClient(cfg.Redeban, logger)
	bridge := services.NewBridge(sdk, logger)
	h := handlers.NewHandlers(bridge, docs, cfg.Server.CallTimeout, logger)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Timeout(cfg.Server.WriteTimeout))
	router.Use(middleware.Locale)
	h.AppendRoutes(router, middleware.Auth(cfg.Auth, logger))

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      otelhttp.NewHandler(router, "bridge.http"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := sdk.Drain(shutdownCtx); err != nil {
		logger.Warn("tokenization requests still in flight", "error", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited")
}
