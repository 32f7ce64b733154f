// Package httpapi exposes the analytical engine over HTTP. Rendering is a
// client concern; every endpoint returns plain JSON.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/moltscope/moltscope/internal/config"
	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/domain"
)

// Reloader rebuilds and swaps in a fresh snapshot.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Pinger checks backing store connectivity. Nil when the corpus comes
// from the filesystem.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the query handlers. All state it reads is the immutable
// snapshot behind the holder, so handlers are safe to run concurrently.
type Server struct {
	holder   *corpus.Holder
	reloader Reloader
	pinger   Pinger
	query    config.QueryConfig
	logger   *zap.Logger
}

// NewServer creates the API server. pinger may be nil.
func NewServer(holder *corpus.Holder, reloader Reloader, pinger Pinger, query config.QueryConfig, logger *zap.Logger) *Server {
	return &Server{
		holder:   holder,
		reloader: reloader,
		pinger:   pinger,
		query:    query,
		logger:   logger,
	}
}

// Routes mounts all endpoints on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/posts", s.handlePosts)
		r.Get("/posts/{id}/similar", s.handleSimilar)
		r.Get("/aggregates/top", s.handleTop)
		r.Get("/aggregates/tags/grouped", s.handleGroupedTags)
		r.Get("/aggregates/histogram", s.handleHistogram)
		r.Post("/spatial/select", s.handleSpatialSelect)
		r.Get("/graphs/tags", s.handleTagGraph)
		r.Get("/graphs/bridges", s.handleBridgeGraph)
		r.Get("/integrity/duplicates", s.handleDuplicates)
		r.Get("/integrity/outliers", s.handleOutliers)
		r.Post("/admin/reload", s.handleReload)
	})
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	codeBadRequest    = "bad_request"
	codeNotFound      = "not_found"
	codeNotLoaded     = "snapshot_not_loaded"
	codeInternalError = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// snapshot resolves the active snapshot or writes a 503.
func (s *Server) snapshot(w http.ResponseWriter) (*corpus.Snapshot, bool) {
	snap, err := s.holder.Current()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, codeNotLoaded, "corpus snapshot not loaded")
		return nil, false
	}
	return snap, true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
	case errors.Is(err, domain.ErrSnapshotNotLoaded):
		writeError(w, http.StatusServiceUnavailable, codeNotLoaded, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}
