// Package handler provides HTTP handlers for all API endpoints.
// The roster is handed in once at construction and only read afterwards;
// every derived view (verdicts, cards, profiles) is computed per request from
// the scoring package.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/worth-the-bag/internal/api/respond"
	"github.com/albapepper/worth-the-bag/internal/cache"
	"github.com/albapepper/worth-the-bag/internal/config"
	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/roster"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	players []provider.Player
	load    roster.LoadResult
	cache   *cache.Cache
	cfg     *config.Config
	logger  *slog.Logger
	started time.Time
}

// New creates a Handler over a loaded roster.
func New(players []provider.Player, load roster.LoadResult, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		players: players,
		load:    load,
		cache:   c,
		cfg:     cfg,
		logger:  logger,
		started: time.Now(),
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and where the docs live.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":      "Worth The Bag API",
		"version":   "1.0.0",
		"status":    "running",
		"docs":      "/docs",
		"dashboard": "/dashboard",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"uptime":    time.Since(h.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckRoster reports what was loaded at startup.
// @Summary Roster health check
// @Description Returns the roster source, column count and player count. An empty roster is reported as degraded.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/roster [get]
func (h *Handler) HealthCheckRoster(w http.ResponseWriter, r *http.Request) {
	status, code := "healthy", http.StatusOK
	if len(h.players) == 0 {
		status, code = "degraded", http.StatusServiceUnavailable
	}
	respond.WriteJSONObject(w, code, map[string]interface{}{
		"status":    status,
		"source":    h.load.Source,
		"columns":   len(h.load.Columns),
		"players":   len(h.players),
		"teams":     h.load.Teams,
		"load_time": h.load.Duration.String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns whether the cache is enabled, how many keys it stores and how many are still live.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// serveCached writes a cached roster view, building and storing it on a miss.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func() interface{}) {
	view, hit, err := h.cache.Load(key, ttl, func() ([]byte, error) {
		return json.Marshal(build())
	})
	if err != nil {
		h.logger.Error("encode response", "key", key, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, respond.CodeInternal, "Failed to encode response")
		return
	}

	if cache.Matches(r.Header.Get("If-None-Match"), view.ETag) {
		respond.WriteNotModified(w, view.ETag)
		return
	}
	respond.WriteJSON(w, view.Body, view.ETag, ttl, hit)
}

// lookupPlayer resolves the {name} path parameter, writing a 404 when no
// player matches.
func (h *Handler) lookupPlayer(w http.ResponseWriter, r *http.Request) (provider.Player, bool) {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, respond.CodeInvalidParam, "name is not a valid path segment")
		return provider.Player{}, false
	}
	p, ok := roster.Find(h.players, name)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, respond.CodeNotFound, "player not found: "+name)
		return provider.Player{}, false
	}
	return p, true
}
