package api

import (
	"comicsim/internal/sim"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig contains all dependencies needed to construct the HTTP router.
// This struct is designed for dependency injection and testability.
type RouterConfig struct {
	// Pool is the snapshot pool the running simulation publishes to (required).
	Pool *sim.SnapshotPool

	// RateLimiter is an optional pre-configured rate limiter. If nil, a new
	// one is created using RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is used only if RateLimiter is nil.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins overrides the default localhost-only CORS origins.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful for benchmarks).
	DisableLogging bool
}

// routerHandlers holds the handler functions for the router.
type routerHandlers struct {
	pool *sim.SnapshotPool
}

// NewRouter constructs the HTTP router with all middleware and routes.
//
// IMPORTANT: This function opens no network listeners, so it's safe to use
// directly in tests with httptest.NewServer. When cfg.RateLimiter is nil, the
// IPRateLimiter it creates starts its own cleanup goroutine.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{"http://localhost:*", "http://127.0.0.1:*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	h := &routerHandlers{pool: cfg.Pool}

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", h.handleGetState)
		r.Get("/stats", h.handleGetStats)
	})

	return r
}
