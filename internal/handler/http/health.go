package http

import (
	"context"
	"net/http"
	"time"
)

const healthPingTimeout = 2 * time.Second

// Welcome handles GET /: a minimal landing payload for smoke checks.
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, http.StatusOK, envelope{
		"success": true,
		"message": "Shop Rent Management API is running",
	})
}

// Health handles GET /health: reports process liveness and database
// readiness. The endpoint stays green even when the database is down so the
// process itself can be observed while the connection recovers.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	// Ping regardless of the bootstrap outcome: the lazily opened handle can
	// recover once the database comes back, and then the endpoint should say
	// so without a restart.
	reachable := h.db.Ping(ctx) == nil

	h.respond(w, r, http.StatusOK, envelope{
		"success": true,
		"status":  "ok",
		"database": envelope{
			"connected": h.db.Connected() || reachable,
			"target":    h.db.Target(),
			"reachable": reachable,
		},
	})
}
