package handlers

import (
	"log"
	"net/http"
	"time"

	"traderedge-backend/internal/store"
)

type HealthHandler struct {
	store   store.Backend
	profile string
}

// NewHealthHandler reports liveness for the selected backend profile
// ("mongodb" or "memory").
func NewHealthHandler(backend store.Backend, profile string) *HealthHandler {
	return &HealthHandler{store: backend, profile: profile}
}

// --- GET /api/health ---

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		log.Printf("❌ Health check failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	database := "connected"
	if h.profile == "memory" {
		database = "fallback"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "API is running",
	})
}
