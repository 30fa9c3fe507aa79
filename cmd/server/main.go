package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DanielPopoola/ficmart-payments-service/internal/application/services"
	"github.com/DanielPopoola/ficmart-payments-service/internal/config"
	"github.com/DanielPopoola/ficmart-payments-service/internal/infrastructure/metrics"
	"github.com/DanielPopoola/ficmart-payments-service/internal/infrastructure/persistence/memory"
	"github.com/DanielPopoola/ficmart-payments-service/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-payments-service/internal/interfaces/rest/middleware"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting payments service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	paymentRepo := memory.NewPaymentRepository()
	serviceMetrics := metrics.New(prometheus.DefaultRegisterer)
	paymentService := services.NewPaymentService(paymentRepo, logger, serviceMetrics)

	h := handlers.NewHandlers(paymentService, logger)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.ReadTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
