package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/diillson/bizcase-simulator-go/internal/adapter/driven/cache"
	"github.com/diillson/bizcase-simulator-go/internal/domain/entity"
	"github.com/diillson/bizcase-simulator-go/internal/domain/repository"
	"github.com/diillson/bizcase-simulator-go/internal/shared/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodyBytes = 1 << 20

// ComputeFunc runs one projection.
type ComputeFunc func(entity.Parameters) entity.ProjectionResult

// Options configures the server handlers.
type Options struct {
	Compute       ComputeFunc
	Cache         repository.CacheRepository
	CacheTTL      time.Duration
	Export        repository.ExportRepository
	Logger        *slog.Logger
	ExposeMetrics bool
	// Registry defaults to a fresh registry when nil.
	Registry *prometheus.Registry
}

type Server struct {
	srv     *http.Server
	opts    Options
	metrics *Metrics
}

func New(addr string, opts Options) *Server {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	s := &Server{opts: opts, metrics: NewMetrics(opts.Registry)}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("GET /v1/defaults", s.handleDefaults)
	mux.HandleFunc("POST /v1/projections", s.handleProjection)
	mux.HandleFunc("POST /v1/projections/csv", s.handleProjectionCSV)

	if opts.ExposeMetrics {
		mux.Handle("GET /metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, entity.DefaultParameters())
}

func (s *Server) handleProjection(w http.ResponseWriter, r *http.Request) {
	result, ok := s.project(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleProjectionCSV(w http.ResponseWriter, r *http.Request) {
	result, ok := s.project(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="projection.csv"`)
	if err := s.opts.Export.WriteCSV(w, result.Rows); err != nil {
		s.opts.Logger.Error("csv write failed", "err", err, "run_id", result.RunID)
	}
}

// project decodes the request, validates it and serves the result from cache when possible.
// It writes the error response itself and reports false when the request cannot be served.
func (s *Server) project(w http.ResponseWriter, r *http.Request) (entity.ProjectionResult, bool) {
	params, err := decodeParameters(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return entity.ProjectionResult{}, false
	}

	key, err := cache.Fingerprint(params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return entity.ProjectionResult{}, false
	}

	ctx := r.Context()
	if s.opts.Cache != nil {
		cached, err := s.opts.Cache.Get(ctx, key)
		switch {
		case err == nil:
			s.metrics.Projections.WithLabelValues("hit").Inc()
			s.opts.Logger.Debug("projection cache hit", "key", key, "run_id", cached.RunID)
			return cached, true
		case !errors.Is(err, types.ErrCacheMiss):
			s.opts.Logger.Warn("cache read failed", "key", key, "err", err)
		}
	}

	start := time.Now()
	result := s.opts.Compute(params)
	s.metrics.Duration.Observe(time.Since(start).Seconds())
	s.metrics.Projections.WithLabelValues("miss").Inc()

	s.opts.Logger.Info("projection computed",
		"run_id", result.RunID,
		"horizon_months", params.HorizonMonths,
		"elapsed", time.Since(start).String(),
	)

	if s.opts.Cache != nil {
		if err := s.opts.Cache.Set(ctx, key, result, s.opts.CacheTTL); err != nil {
			s.opts.Logger.Warn("cache write failed", "key", key, "err", err)
		}
	}
	return result, true
}

// decodeParameters lays the request body over the default scenario. An empty body
// means the defaults; the body must hold exactly one JSON object.
func decodeParameters(body io.Reader) (entity.Parameters, error) {
	params := entity.DefaultParameters()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	err := dec.Decode(&params)
	switch {
	case errors.Is(err, io.EOF):
		// corpo vazio
	case err != nil:
		return params, fmt.Errorf("invalid parameters: %w", err)
	default:
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return params, errors.New("invalid parameters: body must contain a single JSON object")
		}
	}

	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
