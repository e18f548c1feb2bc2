// Command footprintd serves the county environmental footprint engine. It
// loads the county reference table, factor table, and county universe at
// startup, then exposes the computation API over HTTP until interrupted.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/impactatlas/county-footprint/internal/adapter/httpapi"
	"github.com/impactatlas/county-footprint/internal/adapter/refdata"
	"github.com/impactatlas/county-footprint/internal/config"
	"github.com/impactatlas/county-footprint/internal/engine"
	"github.com/impactatlas/county-footprint/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Reference tables are loaded once and immutable for the process lifetime.
	universe, err := refdata.LoadUniverseFile(cfg.UniverseFilePath)
	if err != nil {
		logger.Error("failed to load county universe", "path", cfg.UniverseFilePath, "error", err)
		os.Exit(1)
	}
	counties, err := refdata.LoadCountiesFile(cfg.CountyTablePath)
	if err != nil {
		logger.Error("failed to load county table", "path", cfg.CountyTablePath, "error", err)
		os.Exit(1)
	}
	factors, err := refdata.LoadFactorsFile(cfg.FactorTablePath)
	if err != nil {
		logger.Error("failed to load factor table", "path", cfg.FactorTablePath, "error", err)
		os.Exit(1)
	}

	eng := engine.New(universe, counties, factors, logger, metrics)
	srv := httpapi.NewServer(cfg.HTTPAddr, eng, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
