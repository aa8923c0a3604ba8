package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

// TrackProvider resolves storm tracks from registered datasets.
type TrackProvider interface {
	Track(ctx context.Context, dataset, stormID string, mode domain.IDMode) (domain.Track, error)
	Datasets() []string
	CheckReadiness(ctx context.Context) error
}

// Server exposes the track query API plus health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	provider   TrackProvider
	logger     *slog.Logger
}

// NewServer creates an HTTP server routing track queries to provider.
func NewServer(addr string, provider TrackProvider, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		provider: provider,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/datasets", s.handleDatasets)
	mux.HandleFunc("GET /v1/datasets/{dataset}/storms/{id}/track", s.handleTrack)

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

	if err := s.provider.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleDatasets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"datasets": s.provider.Datasets()})
}

func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	dataset := r.PathValue("dataset")
	stormID := r.PathValue("id")

	mode := domain.IDMode(r.URL.Query().Get("mode"))
	if mode != "" && !mode.Valid() {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("unknown identifier mode %q", string(mode)),
		})
		return
	}

	track, err := s.provider.Track(r.Context(), dataset, stormID, mode)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrStormNotFound), errors.Is(err, domain.ErrUnknownDataset):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		default:
			s.logger.Error("track lookup failed", "dataset", dataset, "storm_id", stormID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, track)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
