package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/worth-the-bag/internal/api/handler"
	"github.com/albapepper/worth-the-bag/internal/cache"
	"github.com/albapepper/worth-the-bag/internal/config"
	"github.com/albapepper/worth-the-bag/internal/provider"
	"github.com/albapepper/worth-the-bag/internal/roster"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(players []provider.Player, load roster.LoadResult, appCache *cache.Cache, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware(logger))
	r.Use(TimingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(players, load, appCache, cfg, logger)

	// --- Routes ---

	r.Get("/", h.Root)
	r.Get("/dashboard", h.Dashboard)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/roster", h.HealthCheckRoster)
		r.Get("/cache", h.HealthCheckCache)
	})

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Players
		r.Get("/players", h.ListPlayers)
		r.Route("/players/{name}", func(r chi.Router) {
			r.Get("/", h.GetPlayer)
			r.Get("/verdict", h.GetVerdict)
			r.Get("/advanced", h.GetAdvanced)
			r.Get("/profile", h.GetProfile)
		})

		// Metrics
		r.Get("/impact", h.GetImpactLabel)
		r.Get("/impact/tables", h.GetImpactTables)

		// Bootstrap
		r.Get("/teams", h.GetTeams)
		r.Get("/autofill", h.GetAutofillDatabase)
	})

	return r
}
