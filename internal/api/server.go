package api

import (
	"log"
	"net/http"

	"comicsim/internal/sim"

	"github.com/go-chi/chi/v5"
)

// Server is the HTTP API server with WebSocket support: a read-only
// observation surface over a running simulation's published snapshots. It
// never mutates World state.
type Server struct {
	pool        *sim.SnapshotPool
	router      *chi.Mux
	wsHub       *WebSocketHub
	rateLimiter *IPRateLimiter
}

// NewServer creates a new API server observing pool's published snapshots.
//
// IMPORTANT: The WebSocket hub and broadcast loop do NOT start until Start()
// is called, and no network listener is opened before then; the rate
// limiter's cleanup goroutine does start here. Use Router() directly for
// httptest-based tests.
func NewServer(pool *sim.SnapshotPool) *Server {
	s := &Server{
		pool:  pool,
		wsHub: NewWebSocketHub(),
	}

	s.rateLimiter = NewIPRateLimiter(DefaultRateLimitConfig)
	s.router = NewRouter(RouterConfig{
		Pool:        pool,
		RateLimiter: s.rateLimiter,
	})
	s.setupWebSocketRoutes()

	return s
}

func (s *Server) setupWebSocketRoutes() {
	s.router.Get("/ws", s.handleWS)
}

// Start begins the HTTP server and background workers. Call only once; to
// stop, signal the process.
func (s *Server) Start(addr string) error {
	go s.wsHub.Run()
	s.wsHub.StartBroadcastLoop(s.pool, 10)

	log.Printf("API server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Router returns the HTTP handler for use with httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// Stop performs graceful shutdown of background workers.
func (s *Server) Stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.wsHub.HandleWebSocket(w, r)
}
