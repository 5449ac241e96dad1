package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
//
// Endpoint paths match the original reservation API so existing
// front-ends keep working unchanged.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.Get("/health", s.handleHealth)

	// Booking operations
	r.Post("/book", s.handleBook)
	r.Post("/random-occupancy", s.handleRandomOccupancy)
	r.Post("/reset", s.handleReset)

	// Read-only snapshots
	r.Get("/rooms", s.handleGetRooms)
	r.Get("/statistics", s.handleGetStatistics)

	// Booking-event audit trail
	r.Get("/audit", s.handleListAudit)

	// WebSocket occupancy feed
	r.Get(s.wsPath(), s.handleWebSocket)

	return r
}

// wsPath returns the configured WebSocket path, defaulting to /ws.
func (s *Server) wsPath() string {
	if s.wsCfg.Path != "" {
		return s.wsCfg.Path
	}
	return "/ws"
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
