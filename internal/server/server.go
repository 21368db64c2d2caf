// Package server is the thin HTTP boundary over the savings engine. It is
// only responsible for input ingestion, engine orchestration and output
// serialization; it never performs savings logic itself.
package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/evshift/ev-savings-calculator/internal/calculation"
	"github.com/evshift/ev-savings-calculator/internal/vehicle"
)

// Server wires the savings engine and vehicle catalog to HTTP routes.
type Server struct {
	engine  *calculation.Engine
	catalog *vehicle.Catalog
	mux     *http.ServeMux
	limiter *RateLimiter
	log     *zap.SugaredLogger
	version string
}

// New creates a server. The rate limiter may be nil to disable limiting.
func New(engine *calculation.Engine, catalog *vehicle.Catalog, limiter *RateLimiter, log *zap.SugaredLogger, version string) *Server {
	s := &Server{
		engine:  engine,
		catalog: catalog,
		mux:     http.NewServeMux(),
		limiter: limiter,
		log:     log,
		version: version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mux.Handle("POST /calculate", s.limited(http.HandlerFunc(s.handleCalculate)))
	s.mux.Handle("POST /compare", s.limited(http.HandlerFunc(s.handleCompare)))
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

func (s *Server) limited(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return RateLimitMiddleware(s.limiter, next)
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Errorw("failed to encode response", "error", err)
	}
}
