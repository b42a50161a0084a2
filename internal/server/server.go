// Package server exposes GF(2^M) evaluation and verification sweeps over
// HTTP with Prometheus instrumentation. The API is read-only: evaluation
// requests are GETs with query parameters, results are JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/gfcalc/internal/cli"
	"github.com/agbru/gfcalc/internal/config"
	"github.com/agbru/gfcalc/internal/logging"
	"github.com/agbru/gfcalc/internal/progress"
	"github.com/agbru/gfcalc/internal/sweep"
)

const (
	// ShutdownTimeout bounds how long a graceful shutdown may take.
	ShutdownTimeout = 5 * time.Second

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout = 10 * time.Second
)

// Server is the HTTP front end. It serves field evaluation on /v1/eval,
// verification sweeps on /v1/sweep, liveness on /healthz and Prometheus
// metrics on /metrics.
type Server struct {
	addr       string
	logger     logging.Logger
	metrics    *Metrics
	security   SecurityConfig
	factory    sweep.Factory
	httpServer *http.Server
}

// New creates a Server listening on addr with the default security
// configuration and backend factory.
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		logger:   logger,
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
		factory:  sweep.NewDefaultFactory(),
	}
}

// Run starts the HTTP server and blocks until the context is canceled or
// the listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info("HTTP server listening", logging.String("addr", s.addr))

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	}
}

// Handler builds the route table with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.wrap(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrap(s.handleMetrics))
	mux.HandleFunc("/v1/eval", s.wrap(s.handleEval))
	mux.HandleFunc("/v1/sweep", s.wrap(s.handleSweep))
	return mux
}

// wrap applies the standard middleware chain to a handler.
func (s *Server) wrap(h http.HandlerFunc) http.HandlerFunc {
	return SecurityMiddleware(s.security, s.loggingMiddleware(s.metricsMiddleware(h)))
}

// metricsMiddleware tracks the active request gauge and total counter.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest()
		next(w, r)
	}
}

// loggingMiddleware logs each request with its duration.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next(w, r)
		if s.logger != nil {
			s.logger.Debug("request served",
				logging.String("method", r.Method),
				logging.String("path", r.URL.Path),
				logging.String("duration", time.Since(start).String()),
			)
		}
	}
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics serves the Prometheus exposition endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// evalResponse is the JSON body returned by /v1/eval.
type evalResponse struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Poly       string `json:"poly"`
	Width      int    `json:"width"`
	Backend    string `json:"backend"`
}

// handleEval evaluates a single field expression.
//
// Query parameters: expr (required), poly, width, backend.
func (s *Server) handleEval(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}

	expr := r.URL.Query().Get("expr")
	if expr == "" {
		s.writeError(w, http.StatusBadRequest, "missing required parameter: expr")
		return
	}

	poly, width, backend, err := s.fieldParams(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := s.factory.Get(backend); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	op, a, b, err := cli.ParseExpression(expr)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := cli.Evaluate(cli.EvalRequest{
		Poly: poly, Width: width, Backend: backend,
		Op: op, A: a, B: b,
	})
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, evalResponse{
		Expression: expr,
		Result:     result,
		Poly:       fmt.Sprintf("%#x", poly),
		Width:      width,
		Backend:    backend,
	})
}

// sweepResponse is the JSON body returned by /v1/sweep.
type sweepResponse struct {
	Digest     string `json:"digest"`
	Ops        uint64 `json:"ops"`
	DurationMS int64  `json:"duration_ms"`
	Poly       string `json:"poly"`
	Width      int    `json:"width"`
	Backend    string `json:"backend"`
}

// handleSweep runs a verification sweep and returns its digest.
//
// Query parameters: poly, width, backend, points. The points value is
// capped by SecurityConfig.MaxSamplePoints.
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.methodNotAllowed(w, r)
		return
	}

	poly, width, backend, err := s.fieldParams(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if backend == "all" {
		backend = sweep.NameComputation
	}

	points := uint64(0)
	if raw := r.URL.Query().Get("points"); raw != "" {
		points, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid points value: %q", raw))
			return
		}
	}
	if points == 0 || points > s.security.MaxSamplePoints {
		points = s.security.MaxSamplePoints
	}

	sweeper, err := s.factory.Get(backend)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Sweep progress sends never block, so a dead-end channel is fine.
	progressChan := make(chan progress.ProgressUpdate, 1)

	start := time.Now()
	summary, err := sweeper.Sweep(r.Context(), progressChan, 0, sweep.Options{
		Poly:         poly,
		Width:        width,
		SamplePoints: points,
	})
	duration := time.Since(start)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.metrics.ObserveSweepDuration(duration)
	s.writeJSON(w, http.StatusOK, sweepResponse{
		Digest:     fmt.Sprintf("0x%016x", summary.Digest),
		Ops:        summary.Ops,
		DurationMS: duration.Milliseconds(),
		Poly:       fmt.Sprintf("%#x", poly),
		Width:      width,
		Backend:    backend,
	})
}

// fieldParams extracts the poly/width/backend parameters common to the
// evaluation endpoints, applying the configuration defaults.
func (s *Server) fieldParams(r *http.Request) (poly uint64, width int, backend string, err error) {
	q := r.URL.Query()

	poly = config.DefaultPoly
	if raw := q.Get("poly"); raw != "" {
		poly, err = config.ParsePoly(raw)
		if err != nil {
			return 0, 0, "", err
		}
	}

	width = config.DefaultWidth
	if raw := q.Get("width"); raw != "" {
		width, err = strconv.Atoi(raw)
		if err != nil || (width != 8 && width != 16 && width != 32 && width != 64) {
			return 0, 0, "", fmt.Errorf("invalid width: %q (want 8, 16, 32 or 64)", raw)
		}
	}

	backend = q.Get("backend")
	if backend == "" {
		backend = sweep.NameComputation
	}

	return poly, width, backend, nil
}

// writeJSON writes v as a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && s.logger != nil {
		s.logger.Error("failed to encode response", err)
	}
}

// writeError writes a JSON error body and logs the failure.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	if s.logger != nil {
		s.logger.Debug("request rejected",
			logging.Int("status", status),
			logging.String("reason", msg),
		)
	}
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// methodNotAllowed rejects non-GET requests to GET-only endpoints.
func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if s.logger != nil {
		s.logger.Debug("method not allowed",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
		)
	}
	w.Header().Set("Allow", http.MethodGet)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
