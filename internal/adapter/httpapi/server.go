// Package httpapi exposes the computation engine to the rendering
// collaborator over HTTP, plus the usual health, readiness, and metrics
// endpoints.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/impactatlas/county-footprint/internal/domain"
	"github.com/impactatlas/county-footprint/internal/engine"
)

// TableComputer produces a classified county table from user input.
type TableComputer interface {
	Compute(input domain.UserInput, metric domain.Metric, notation domain.Notation) (domain.Table, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the engine API plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	computer   TableComputer
	logger     *slog.Logger
}

// TableRequest is the body of POST /api/v1/table. Metric and notation are
// optional; they default to carbon and fixed.
type TableRequest struct {
	PowerValue float64          `json:"power_value"`
	PowerUnit  domain.PowerUnit `json:"power_unit"`
	WaterValue float64          `json:"water_value"`
	WaterUnit  domain.WaterUnit `json:"water_unit"`
	Metric     domain.Metric    `json:"metric"`
	Notation   domain.Notation  `json:"notation"`
}

// UnitsResponse enumerates the accepted unit, metric, and notation tags for
// the collaborator's input dropdowns.
type UnitsResponse struct {
	PowerUnits []domain.PowerUnit `json:"power_units"`
	WaterUnits []domain.WaterUnit `json:"water_units"`
	Metrics    []domain.Metric    `json:"metrics"`
	Notations  []domain.Notation  `json:"notations"`
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(addr string, computer TableComputer, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		computer: computer,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /api/v1/table", s.handleTable)
	mux.HandleFunc("GET /api/v1/units", s.handleUnits)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.computer.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	var req TableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	table, err := s.computer.Compute(domain.UserInput{
		PowerValue: req.PowerValue,
		PowerUnit:  req.PowerUnit,
		WaterValue: req.WaterValue,
		WaterUnit:  req.WaterUnit,
	}, req.Metric, req.Notation)
	if err != nil {
		if isClientError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error("table computation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "computation failed")
		return
	}

	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handleUnits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, UnitsResponse{
		PowerUnits: domain.PowerUnits(),
		WaterUnits: domain.WaterUnits(),
		Metrics:    domain.Metrics(),
		Notations:  []domain.Notation{domain.NotationFixed, domain.NotationScientific},
	})
}

// isClientError reports whether the failure is the caller's fault: bad units,
// bad metric, negative values.
func isClientError(err error) bool {
	return errors.Is(err, domain.ErrInvalidUnit) ||
		errors.Is(err, engine.ErrInvalidMetric) ||
		errors.Is(err, engine.ErrInvalidNotation) ||
		errors.Is(err, engine.ErrNegativeInput)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
