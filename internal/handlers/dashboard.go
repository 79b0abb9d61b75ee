package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"traderedge-backend/internal/repository"
	"traderedge-backend/internal/store"

	"github.com/go-chi/chi/v5"
)

type DashboardHandler struct {
	store         store.Backend
	userRepo      *repository.UserRepo
	dashboardRepo *repository.DashboardRepo
	signalRepo    *repository.SignalRepo
}

func NewDashboardHandler(backend store.Backend, userRepo *repository.UserRepo, dashboardRepo *repository.DashboardRepo, signalRepo *repository.SignalRepo) *DashboardHandler {
	return &DashboardHandler{
		store:         backend,
		userRepo:      userRepo,
		dashboardRepo: dashboardRepo,
		signalRepo:    signalRepo,
	}
}

// --- GET /api/enhanced/dashboard/{email} ---

// Get merges the user record with their questionnaire (questionnaire fields
// win on collision), and attaches the dashboard record plus every tracked
// signal.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	userDoc, err := h.store.FindOne(r.Context(), store.Users, store.Document{"email": email})
	if err != nil {
		log.Printf("❌ Get dashboard data error: %v", err)
		writeInternalError(w, err)
		return
	}
	if userDoc == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	userID := userDoc["_id"]

	questionnaireDoc, err := h.store.FindOne(r.Context(), store.Questionnaires, store.Document{"user_id": userID})
	if err != nil {
		log.Printf("❌ Get dashboard data error: %v", err)
		writeInternalError(w, err)
		return
	}

	dashboardDoc, err := h.store.FindOne(r.Context(), store.DashboardData, store.Document{"user_id": userID})
	if err != nil {
		log.Printf("❌ Get dashboard data error: %v", err)
		writeInternalError(w, err)
		return
	}

	signals, err := h.store.FindMany(r.Context(), store.Signals, store.Document{"user_id": userID}, 0)
	if err != nil {
		log.Printf("❌ Get dashboard data error: %v", err)
		writeInternalError(w, err)
		return
	}

	profile := make(store.Document, len(userDoc))
	for key, value := range userDoc {
		profile[key] = value
	}
	for key, value := range questionnaireDoc {
		profile[key] = value
	}
	delete(profile, "password_hash")

	writeJSON(w, http.StatusOK, map[string]any{
		"success":            true,
		"user_profile":       profile,
		"dashboard_overview": dashboardDoc,
		"signal_performance": signals,
		"timestamp":          time.Now().UTC().Format(time.RFC3339),
	})
}

type DashboardUpdateRequest struct {
	UserEmail       string   `json:"user_email"`
	CurrentEquity   *float64 `json:"current_equity"`
	TotalPnL        *float64 `json:"total_pnl"`
	TotalTrades     *int     `json:"total_trades"`
	WinningTrades   *int     `json:"winning_trades"`
	LosingTrades    *int     `json:"losing_trades"`
	WinRate         *float64 `json:"win_rate"`
	MaxDrawdown     *float64 `json:"max_drawdown"`
	CurrentDrawdown *float64 `json:"current_drawdown"`
	DailyPnL        *float64 `json:"daily_pnl"`
	SignalsWon      *int     `json:"signals_won"`
	SignalsLost     *int     `json:"signals_lost"`
}

// --- POST /api/enhanced/dashboard/update ---

// Update merge-patches the performance counters: omitted fields are left
// untouched, and last_active is always refreshed.
func (h *DashboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req DashboardUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserEmail == "" {
		writeError(w, http.StatusBadRequest, "Missing user_email")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.UserEmail)
	if err != nil {
		log.Printf("❌ Update dashboard data error: %v", err)
		writeInternalError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	set := store.Document{}
	setFloat(set, "current_equity", req.CurrentEquity)
	setFloat(set, "total_pnl", req.TotalPnL)
	setInt(set, "total_trades", req.TotalTrades)
	setInt(set, "winning_trades", req.WinningTrades)
	setInt(set, "losing_trades", req.LosingTrades)
	setFloat(set, "win_rate", req.WinRate)
	setFloat(set, "max_drawdown", req.MaxDrawdown)
	setFloat(set, "current_drawdown", req.CurrentDrawdown)
	setFloat(set, "daily_pnl", req.DailyPnL)
	setInt(set, "signals_won", req.SignalsWon)
	setInt(set, "signals_lost", req.SignalsLost)

	modified, err := h.dashboardRepo.Merge(r.Context(), user.ID, set)
	if err != nil {
		log.Printf("❌ Update dashboard data error: %v", err)
		writeInternalError(w, err)
		return
	}

	log.Printf("✅ Dashboard data updated successfully: %s", req.UserEmail)
	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"message":       "Dashboard data updated successfully",
		"rows_affected": modified,
	})
}

func setFloat(set store.Document, key string, value *float64) {
	if value != nil {
		set[key] = *value
	}
}

func setInt(set store.Document, key string, value *int) {
	if value != nil {
		set[key] = *value
	}
}
