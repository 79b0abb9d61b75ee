package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// CompatHandler carries legacy frontend endpoints that predate the enhanced
// API. They acknowledge or answer fixed shapes so old clients keep working.
type CompatHandler struct{}

func NewCompatHandler() *CompatHandler {
	return &CompatHandler{}
}

// --- GET /api/dashboard-data ---

func (h *CompatHandler) DashboardData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data": map[string]any{
			"totalTrades":    0,
			"winRate":        0,
			"totalPnL":       0,
			"accountBalance": 5000,
		},
	})
}

// --- POST /api/dashboard/save ---

func (h *CompatHandler) SaveDashboard(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	log.Printf("Save dashboard data request: %v", payload)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Dashboard data saved successfully",
	})
}

// --- POST /user/progress ---

func (h *CompatHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	log.Printf("Save user progress request: %v", payload)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "User progress saved successfully",
	})
}
