package httpapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/moltscope/moltscope/internal/corpus"
	"github.com/moltscope/moltscope/internal/domain"
	"github.com/moltscope/moltscope/internal/engine"
	"github.com/moltscope/moltscope/internal/logger"
	"github.com/moltscope/moltscope/internal/metrics"
)

// observe counts one engine query and returns the duration callback.
func observe(kind string) func() {
	metrics.EngineQueriesTotal.WithLabelValues(kind).Inc()
	start := time.Now()
	return func() {
		metrics.EngineQueryDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}
}

// PostsResponse is the filtered, sorted, paginated post listing.
type PostsResponse struct {
	Total int           `json:"total"`
	Posts []domain.Post `json:"posts"`
}

// handlePosts handles GET /v1/posts.
func (s *Server) handlePosts(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("filter")()

	values := r.URL.Query()
	spec := DecodeFilterSpec(values)
	posts := engine.Filter(snap, spec)

	if field, active := sortField(values.Get("sort")); active {
		posts = engine.SortPosts(posts, field, values.Get("order") == "desc")
	}

	total := len(posts)
	limit := s.intParam(values.Get("limit"), s.query.DefaultPageSize, s.query.MaxPageSize)
	offset := s.intParam(values.Get("offset"), 0, total)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	writeJSON(w, http.StatusOK, PostsResponse{Total: total, Posts: posts[offset:end]})
}

// handleSimilar handles GET /v1/posts/{id}/similar.
func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("similar")()

	id := chi.URLParam(r, "id")
	if _, ok := snap.PostByID(id); !ok {
		writeError(w, http.StatusNotFound, codeNotFound, "unknown post id")
		return
	}

	k := s.intParam(r.URL.Query().Get("k"), s.query.DefaultNeighbors, s.query.MaxNeighbors)
	// a post without an embedding yields an empty result, not an error
	posts := engine.Nearest(snap, id, k)
	if posts == nil {
		posts = []domain.Post{}
	}
	writeJSON(w, http.StatusOK, posts)
}

// handleTop handles GET /v1/aggregates/top.
func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("top")()

	values := r.URL.Query()
	posts := engine.Filter(snap, DecodeFilterSpec(values))
	limit := s.intParam(values.Get("limit"), s.query.DefaultTopLimit, s.query.MaxPageSize)

	var items []engine.RankedItem
	switch kind := values.Get("kind"); kind {
	case "submolts":
		items = engine.TopSubmolts(posts, limit)
	case "authors":
		items = engine.TopAuthors(posts, limit)
	case "tags":
		items = engine.TopTags(snap, posts, limit)
	case "notes":
		items = engine.TopClassNotes(snap, posts, limit)
	default:
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"kind must be one of submolts, authors, tags, notes")
		return
	}
	if items == nil {
		items = []engine.RankedItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

// handleGroupedTags handles GET /v1/aggregates/tags/grouped.
func (s *Server) handleGroupedTags(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("grouped_tags")()

	posts := engine.Filter(snap, DecodeFilterSpec(r.URL.Query()))
	groups := engine.GroupedTags(snap, posts)
	if groups == nil {
		groups = []engine.TagGroup{}
	}
	writeJSON(w, http.StatusOK, groups)
}

// handleHistogram handles GET /v1/aggregates/histogram.
func (s *Server) handleHistogram(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("histogram")()

	values := r.URL.Query()
	field, ok := numericField(values.Get("field"))
	if !ok {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"field must be one of upvotes, downvotes, comments, content_len")
		return
	}

	posts := engine.Filter(snap, DecodeFilterSpec(values))
	bins := s.intParam(values.Get("bins"), s.query.DefaultBins, s.query.MaxBins)
	buckets := engine.Histogram(posts, field, bins)
	if buckets == nil {
		buckets = []engine.Bucket{}
	}
	writeJSON(w, http.StatusOK, buckets)
}

// SpatialSelectRequest selects points inside a data-space rectangle.
type SpatialSelectRequest struct {
	Space string      `json:"space"` // posts (default) or submolts
	Rect  engine.Rect `json:"rect"`
}

// SpatialSelectResponse lists the selected ids, sorted for determinism.
type SpatialSelectResponse struct {
	IDs []string `json:"ids"`
}

// handleSpatialSelect handles POST /v1/spatial/select.
func (s *Server) handleSpatialSelect(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("spatial")()

	var req SpatialSelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "invalid request body: "+err.Error())
		return
	}

	var points []engine.Point
	switch req.Space {
	case "", "posts":
		points = engine.PostPoints(snap)
	case "submolts":
		points = engine.CommunityPoints(snap)
	default:
		writeError(w, http.StatusBadRequest, codeBadRequest, "space must be posts or submolts")
		return
	}

	selected := engine.PointsInRect(points, req.Rect)
	ids := make([]string, 0, len(selected))
	for id := range selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	writeJSON(w, http.StatusOK, SpatialSelectResponse{IDs: ids})
}

// handleTagGraph handles GET /v1/graphs/tags.
func (s *Server) handleTagGraph(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("tag_graph")()

	threshold := floatParam(r.URL.Query().Get("threshold"))
	writeJSON(w, http.StatusOK, engine.TagGraph(snap.TagEdges, threshold))
}

// handleBridgeGraph handles GET /v1/graphs/bridges.
func (s *Server) handleBridgeGraph(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("bridge_graph")()

	values := r.URL.Query()
	posts := engine.Filter(snap, DecodeFilterSpec(values))
	threshold := floatParam(values.Get("threshold"))
	writeJSON(w, http.StatusOK, engine.BridgeGraph(posts, threshold))
}

// handleDuplicates handles GET /v1/integrity/duplicates. Integrity checks
// assess the whole corpus unless scope=filtered is requested.
func (s *Server) handleDuplicates(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("duplicates")()

	groups := engine.Duplicates(s.integrityScope(snap, r))
	if groups == nil {
		groups = []engine.DuplicateGroup{}
	}
	writeJSON(w, http.StatusOK, groups)
}

// handleOutliers handles GET /v1/integrity/outliers.
func (s *Server) handleOutliers(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w)
	if !ok {
		return
	}
	defer observe("outliers")()

	outliers := engine.Outliers(s.integrityScope(snap, r))
	if outliers == nil {
		outliers = []engine.Outlier{}
	}
	writeJSON(w, http.StatusOK, outliers)
}

// handleReload handles POST /v1/admin/reload.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.reloader.Reload(r.Context()); err != nil {
		logger.FromContext(r.Context()).Error("snapshot reload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "reload failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"corpus": "ok"}
	status := http.StatusOK
	if !s.holder.Loaded() {
		checks["corpus"] = "error"
		status = http.StatusServiceUnavailable
	}
	if s.pinger != nil {
		checks["database"] = "ok"
		if err := s.pinger.Ping(r.Context()); err != nil {
			checks["database"] = "error"
			status = http.StatusServiceUnavailable
		}
	}
	overall := "ok"
	if status != http.StatusOK {
		overall = "error"
	}
	writeJSON(w, status, HealthResponse{Status: overall, Checks: checks})
}

// integrityScope returns the full corpus, or the filtered subset when the
// caller explicitly asks for scope=filtered.
func (s *Server) integrityScope(snap *corpus.Snapshot, r *http.Request) []domain.Post {
	values := r.URL.Query()
	if values.Get("scope") == "filtered" {
		return engine.Filter(snap, DecodeFilterSpec(values))
	}
	return snap.Posts
}

func sortField(raw string) (engine.SortField, bool) {
	switch raw {
	case "created_at":
		return engine.SortByCreated, true
	case "upvotes":
		return engine.SortByUpvotes, true
	case "comments":
		return engine.SortByComments, true
	case "content_len":
		return engine.SortByContentLen, true
	default:
		return "", false
	}
}

func numericField(raw string) (engine.NumericField, bool) {
	switch raw {
	case "upvotes":
		return engine.FieldUpvotes, true
	case "downvotes":
		return engine.FieldDownvotes, true
	case "comments":
		return engine.FieldComments, true
	case "content_len":
		return engine.FieldContentLen, true
	default:
		return "", false
	}
}

// intParam parses a non-negative integer with a default and a cap.
func (s *Server) intParam(raw string, def, max int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	if max > 0 && v > max {
		return max
	}
	return v
}

func floatParam(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
