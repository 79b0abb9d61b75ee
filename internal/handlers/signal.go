package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/repository"

	"github.com/google/uuid"
)

type SignalHandler struct {
	userRepo      *repository.UserRepo
	dashboardRepo *repository.DashboardRepo
	signalRepo    *repository.SignalRepo
}

func NewSignalHandler(userRepo *repository.UserRepo, dashboardRepo *repository.DashboardRepo, signalRepo *repository.SignalRepo) *SignalHandler {
	return &SignalHandler{
		userRepo:      userRepo,
		dashboardRepo: dashboardRepo,
		signalRepo:    signalRepo,
	}
}

type TrackSignalRequest struct {
	UserEmail       string  `json:"user_email"`
	SignalID        string  `json:"signal_id"`
	SignalSymbol    string  `json:"signal_symbol"`
	SignalType      string  `json:"signal_type"`
	SignalPrice     float64 `json:"signal_price"`
	SignalMilestone string  `json:"signal_milestone"`
	ConfidenceScore float64 `json:"confidence_score"`
	TakenByUser     *bool   `json:"taken_by_user"`
	Outcome         string  `json:"outcome"`
	PnL             float64 `json:"pnl"`
	RiskAmount      float64 `json:"risk_amount"`
}

// --- POST /api/enhanced/signals/track ---

func (h *SignalHandler) Track(w http.ResponseWriter, r *http.Request) {
	var req TrackSignalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.UserEmail == "":
		writeError(w, http.StatusBadRequest, "Missing required field: user_email")
		return
	case req.SignalID == "":
		writeError(w, http.StatusBadRequest, "Missing required field: signal_id")
		return
	case req.SignalSymbol == "":
		writeError(w, http.StatusBadRequest, "Missing required field: signal_symbol")
		return
	case req.SignalMilestone == "":
		writeError(w, http.StatusBadRequest, "Missing required field: signal_milestone")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.UserEmail)
	if err != nil {
		log.Printf("❌ Signal tracking error: %v", err)
		writeInternalError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	// Nullable back-reference: signals can be tracked before onboarding
	// creates the dashboard record
	var dashboardID *string
	dashboardDoc, err := h.dashboardRepo.FindByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("❌ Signal tracking error: %v", err)
		writeInternalError(w, err)
		return
	}
	if dashboardDoc != nil {
		if id, ok := dashboardDoc["_id"].(string); ok {
			dashboardID = &id
		}
	}

	takenByUser := true
	if req.TakenByUser != nil {
		takenByUser = *req.TakenByUser
	}

	signal := &models.SignalTrack{
		ID:              uuid.NewString(),
		UserID:          user.ID,
		DashboardDataID: dashboardID,
		SignalID:        req.SignalID,
		SignalSymbol:    req.SignalSymbol,
		SignalType:      req.SignalType,
		SignalPrice:     req.SignalPrice,
		SignalMilestone: req.SignalMilestone,
		ConfidenceScore: req.ConfidenceScore,
		TakenByUser:     takenByUser,
		TakenAt:         time.Now().UTC(),
		Outcome:         defaultString(req.Outcome, "pending"),
		PnL:             req.PnL,
		RiskAmount:      req.RiskAmount,
	}

	if err := h.signalRepo.Create(r.Context(), signal); err != nil {
		log.Printf("❌ Signal tracking error: %v", err)
		writeInternalError(w, err)
		return
	}

	log.Printf("✅ Signal tracked successfully: %s", req.UserEmail)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":            true,
		"message":            "Signal tracked successfully",
		"signal_tracking_id": signal.ID,
	})
}

// --- GET /api/signals ---

func (h *SignalHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := int64(100)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = parsed
		}
	}

	signals, err := h.signalRepo.FindAll(r.Context(), limit)
	if err != nil {
		log.Printf("❌ Get signals error: %v", err)
		writeInternalError(w, err)
		return
	}

	response := map[string]any{
		"success": true,
		"signals": signals,
	}
	if r.URL.Query().Get("with_meta") == "true" {
		response["meta"] = map[string]any{
			"total": len(signals),
			"limit": limit,
		}
	}
	writeJSON(w, http.StatusOK, response)
}

// --- GET /api/trades ---

// Trades exposes the user's tracked signals under the trade-history shape
// the frontend expects.
func (h *SignalHandler) Trades(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("userEmail")
	if email == "" {
		writeError(w, http.StatusBadRequest, "userEmail parameter required")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("❌ Get trades error: %v", err)
		writeInternalError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	signals, err := h.signalRepo.FindByUserID(r.Context(), user.ID)
	if err != nil {
		log.Printf("❌ Get trades error: %v", err)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"trades":  signals,
	})
}
