// Package server provides the HTTP JSON service that recomputes records,
// sweeps and chart documents on request.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/theirongolddev/coopcost/internal/chart"
	"github.com/theirongolddev/coopcost/internal/model"
	"github.com/theirongolddev/coopcost/internal/pipeline"
)

// Config controls the service runtime behavior.
type Config struct {
	Addr   string
	Chart  chart.Options
	Held   model.Values // defaults applied under query-string values
	Logger *slog.Logger
}

// Status is served at /v1/status.
type Status struct {
	StartedAt time.Time `json:"started_at"`
	Addr      string    `json:"addr"`
	Variables int       `json:"variables"`
	Requests  int64     `json:"requests"`
	Errors    int64     `json:"errors"`
	LastError string    `json:"last_error,omitempty"`
}

// Service provides the HTTP API over a cost model.
type Service struct {
	cfg Config
	src pipeline.Source
	log *slog.Logger

	mu        sync.RWMutex
	startedAt time.Time
	requests  int64
	errors    int64
	lastError string
}

// New returns a new service computing from src.
func New(cfg Config, src pipeline.Source) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8765"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		cfg:       cfg,
		src:       src,
		log:       logger.With("component", "server"),
		startedAt: time.Now(),
	}
}

// Handler returns the service routes.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/variables", s.handleVariables)
	mux.HandleFunc("GET /v1/records", s.handleRecords)
	mux.HandleFunc("GET /v1/summary", s.handleSummary)
	mux.HandleFunc("GET /v1/sweep", s.handleSweep)
	mux.HandleFunc("GET /v1/charts/{kind}", s.handleChart)
	return s.logRequests(mux)
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("listening", "addr", s.cfg.Addr)

	select {
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt: s.startedAt,
		Addr:      s.cfg.Addr,
		Variables: len(s.src.Variables()),
		Requests:  s.requests,
		Errors:    s.errors,
		LastError: s.lastError,
	}
}

// held parses query parameters named after variables into settings, on
// top of the configured defaults. Parameters listed in skip are ignored.
func (s *Service) held(r *http.Request, skip ...string) (model.Values, error) {
	vars := s.src.Variables()
	out := make(model.Values, len(s.cfg.Held))
	for k, v := range s.cfg.Held {
		out[k] = v
	}

query:
	for name, raw := range r.URL.Query() {
		for _, k := range skip {
			if name == k {
				continue query
			}
		}
		if len(raw) == 0 {
			continue
		}
		v, err := vars.Parse(name, raw[len(raw)-1])
		if err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, nil
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleVariables(w http.ResponseWriter, _ *http.Request) {
	vars := s.src.Variables()
	out := make([]VariableInfo, 0, len(vars))
	for _, v := range vars {
		out = append(out, describe(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleRecords(w http.ResponseWriter, r *http.Request) {
	held, err := s.held(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	recs, err := pipeline.AggregateWith(s.src.Scenarios, s.src.Variables(), held)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// SummaryResponse is served at /v1/summary.
type SummaryResponse struct {
	Values model.Values  `json:"values"`
	Costs  model.Amounts `json:"costs"`
	Total  float64       `json:"total"`
}

func (s *Service) handleSummary(w http.ResponseWriter, r *http.Request) {
	held, err := s.held(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	vars := s.src.Variables()
	vals, err := vars.Resolve(held)
	if err != nil {
		s.fail(w, err)
		return
	}
	costs, err := pipeline.Summarize(s.src.Monthly, vars, vals)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{Values: vals, Costs: costs, Total: costs.Total()})
}

func (s *Service) handleSweep(w http.ResponseWriter, r *http.Request) {
	active := r.URL.Query().Get("active")
	if active == "" {
		s.fail(w, fmt.Errorf("%w: missing active parameter", pipeline.ErrUnknownActive))
		return
	}
	held, err := s.held(r, "active")
	if err != nil {
		s.fail(w, err)
		return
	}
	vars := s.src.Variables()
	vals, err := vars.Resolve(held)
	if err != nil {
		s.fail(w, err)
		return
	}
	seq, err := pipeline.Sweep(s.src.Monthly, vars, active, vals)
	if err != nil {
		s.fail(w, err)
		return
	}

	series := model.SweepSeries{Variable: active, Held: vals[active], Points: []model.SweepPoint{}}
	for p, err := range seq {
		if err != nil {
			s.fail(w, err)
			return
		}
		series.Points = append(series.Points, p)
	}
	writeJSON(w, http.StatusOK, series)
}

func (s *Service) handleChart(w http.ResponseWriter, r *http.Request) {
	kind, err := chart.ParseKind(r.PathValue("kind"))
	if err != nil {
		s.fail(w, err)
		return
	}
	held, err := s.held(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	spec, _, err := chart.Build(kind, s.src, s.cfg.Chart, held)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := chart.Write(w, spec); err != nil {
		s.log.Error("writing chart", "kind", kind, "err", err)
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// fail answers 400: every computation depends only on request input.
func (s *Service) fail(w http.ResponseWriter, err error) {
	s.mu.Lock()
	s.errors++
	s.lastError = err.Error()
	s.mu.Unlock()

	s.log.Warn("request failed", "err", err)
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
