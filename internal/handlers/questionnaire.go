package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/repository"

	"github.com/google/uuid"
)

type QuestionnaireHandler struct {
	userRepo          *repository.UserRepo
	questionnaireRepo *repository.QuestionnaireRepo
	dashboardRepo     *repository.DashboardRepo
}

func NewQuestionnaireHandler(userRepo *repository.UserRepo, questionnaireRepo *repository.QuestionnaireRepo, dashboardRepo *repository.DashboardRepo) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		userRepo:          userRepo,
		questionnaireRepo: questionnaireRepo,
		dashboardRepo:     dashboardRepo,
	}
}

type QuestionnaireRequest struct {
	UserEmail         string   `json:"user_email"`
	TradesPerDay      string   `json:"trades_per_day"`
	TradingSession    string   `json:"trading_session"`
	CryptoAssets      []string `json:"crypto_assets"`
	ForexAssets       []string `json:"forex_assets"`
	CustomForexPairs  []string `json:"custom_forex_pairs"`
	HasAccount        string   `json:"has_account"`
	AccountEquity     float64  `json:"account_equity"`
	PropFirm          string   `json:"prop_firm"`
	AccountType       string   `json:"account_type"`
	AccountSize       float64  `json:"account_size"`
	AccountNumber     string   `json:"account_number"`
	RiskPercentage    float64  `json:"risk_percentage"`
	RiskRewardRatio   string   `json:"risk_reward_ratio"`
	ChallengeStep     string   `json:"challenge_step"`
	TradingExperience string   `json:"trading_experience"`
}

// --- POST /api/enhanced/questionnaire ---

// Submit stores the questionnaire and unconditionally creates the linked
// dashboard record seeded from it.
func (h *QuestionnaireHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req QuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.UserEmail == "":
		writeError(w, http.StatusBadRequest, "Missing required field: user_email")
		return
	case req.PropFirm == "":
		writeError(w, http.StatusBadRequest, "Missing required field: prop_firm")
		return
	case req.AccountType == "":
		writeError(w, http.StatusBadRequest, "Missing required field: account_type")
		return
	case req.AccountSize == 0:
		writeError(w, http.StatusBadRequest, "Missing required field: account_size")
		return
	case req.AccountNumber == "":
		writeError(w, http.StatusBadRequest, "Missing required field: account_number")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.UserEmail)
	if err != nil {
		log.Printf("❌ Questionnaire error: %v", err)
		writeInternalError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	level := models.MilestoneAccessLevel(req.AccountType)

	questionnaire := &models.Questionnaire{
		ID:                   uuid.NewString(),
		UserID:               user.ID,
		UserEmail:            req.UserEmail,
		UserName:             user.FullName(),
		TradesPerDay:         defaultString(req.TradesPerDay, "1-2"),
		TradingSession:       defaultString(req.TradingSession, "any"),
		CryptoAssets:         req.CryptoAssets,
		ForexAssets:          req.ForexAssets,
		CustomForexPairs:     req.CustomForexPairs,
		HasAccount:           defaultString(req.HasAccount, "no"),
		AccountEquity:        req.AccountEquity,
		PropFirm:             req.PropFirm,
		AccountType:          req.AccountType,
		AccountSize:          req.AccountSize,
		AccountNumber:        req.AccountNumber,
		RiskPercentage:       defaultFloat(req.RiskPercentage, 1.0),
		RiskRewardRatio:      defaultString(req.RiskRewardRatio, "2"),
		ChallengeStep:        req.ChallengeStep,
		TradingExperience:    defaultString(req.TradingExperience, "intermediate"),
		MilestoneAccessLevel: level,
	}

	if err := h.questionnaireRepo.Create(r.Context(), questionnaire); err != nil {
		log.Printf("❌ Questionnaire error: %v", err)
		writeInternalError(w, err)
		return
	}

	// Users with an existing account start from their current equity,
	// everyone else from the declared account size.
	initialBalance := req.AccountSize
	if questionnaire.HasAccount == "yes" {
		initialBalance = req.AccountEquity
	}

	dashboard := &models.DashboardData{
		ID:                   uuid.NewString(),
		UserID:               user.ID,
		QuestionnaireID:      questionnaire.ID,
		PropFirm:             req.PropFirm,
		AccountType:          req.AccountType,
		AccountSize:          req.AccountSize,
		CurrentEquity:        initialBalance,
		InitialBalance:       initialBalance,
		MilestoneAccessLevel: level,
	}

	if err := h.dashboardRepo.Create(r.Context(), dashboard); err != nil {
		log.Printf("❌ Questionnaire error: %v", err)
		writeInternalError(w, err)
		return
	}

	log.Printf("✅ Questionnaire completed successfully: %s", req.UserEmail)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":                true,
		"message":                "Questionnaire completed successfully",
		"questionnaire_id":       questionnaire.ID,
		"dashboard_id":           dashboard.ID,
		"milestone_access_level": level,
	})
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func defaultFloat(value, fallback float64) float64 {
	if value == 0 {
		return fallback
	}
	return value
}
