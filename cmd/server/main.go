package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/slabforge/tablecheck/internal"
	"github.com/slabforge/tablecheck/internal/constraint"
	"github.com/slabforge/tablecheck/internal/handler"
	"github.com/slabforge/tablecheck/internal/metrics"
	"github.com/slabforge/tablecheck/internal/middleware"
	"github.com/slabforge/tablecheck/internal/pricing"
	"github.com/slabforge/tablecheck/internal/rules"
	"github.com/slabforge/tablecheck/internal/validate"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Load rule tables (built-in defaults, optionally overridden)
	tables, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return fmt.Errorf("rule table initialization failed: %w", err)
	}
	if cfg.RulesPath != "" {
		logger.Info("Rule overrides loaded", "path", cfg.RulesPath)
	}

	// Initialize the validation engine and constraint calculator
	engine := validate.New(tables, logger)
	calculator := constraint.New(tables)

	// Initialize handlers
	validateHandler := handler.NewValidateHandler(engine, logger)
	constraintsHandler := handler.NewConstraintsHandler(calculator, logger)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics (basic auth when configured)
	metricsAuth := middleware.NewMetricsAuthMiddleware(cfg.MetricsUsername, cfg.MetricsPassword)
	mux.Handle("GET /metrics", metricsAuth.Handler(promhttp.Handler()))

	validateHandler.RegisterRoutes(mux)
	constraintsHandler.RegisterRoutes(mux)

	// Price lookups are optional; without a price file the endpoint is absent.
	if cfg.PricesPath != "" {
		prices, err := pricing.LoadCSV(cfg.PricesPath)
		if err != nil {
			return fmt.Errorf("price list initialization failed: %w", err)
		}
		priceHandler := handler.NewPriceHandler(prices, logger)
		priceHandler.RegisterRoutes(mux)
		logger.Info("Price list loaded", "path", cfg.PricesPath, "materials", len(prices.Materials()))
	}

	// Middleware stack: request ID, then logging, then metrics
	loggingMw := middleware.NewRequestLoggingMiddleware(logger)
	stack := middleware.Stack(middleware.RequestID, loggingMw.Handler, metrics.Middleware)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: stack(mux),
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-sigChan
	logger.Info("Shutdown signal received, initiating graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
