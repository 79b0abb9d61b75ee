package handlers

import (
	"log"
	"net/http"
	"time"

	"traderedge-backend/internal/repository"
	"traderedge-backend/internal/store"
)

// adminListCap bounds every admin aggregation query. The per-user join in
// Users is O(n) extra queries and only acceptable under this cap.
const adminListCap = 1000

type AdminHandler struct {
	store             store.Backend
	userRepo          *repository.UserRepo
	paymentRepo       *repository.PaymentRepo
	questionnaireRepo *repository.QuestionnaireRepo
}

func NewAdminHandler(backend store.Backend, userRepo *repository.UserRepo, paymentRepo *repository.PaymentRepo, questionnaireRepo *repository.QuestionnaireRepo) *AdminHandler {
	return &AdminHandler{
		store:             backend,
		userRepo:          userRepo,
		paymentRepo:       paymentRepo,
		questionnaireRepo: questionnaireRepo,
	}
}

// --- GET /api/enhanced/admin/users ---

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.FindMany(r.Context(), store.Users, nil, adminListCap)
	if err != nil {
		log.Printf("❌ Get all users error: %v", err)
		writeInternalError(w, err)
		return
	}

	enriched := make([]store.Document, 0, len(users))
	for _, user := range users {
		questionnaire, err := h.store.FindOne(r.Context(), store.Questionnaires, store.Document{"user_id": user["_id"]})
		if err != nil {
			log.Printf("❌ Get all users error: %v", err)
			writeInternalError(w, err)
			return
		}
		dashboard, err := h.store.FindOne(r.Context(), store.DashboardData, store.Document{"user_id": user["_id"]})
		if err != nil {
			log.Printf("❌ Get all users error: %v", err)
			writeInternalError(w, err)
			return
		}

		row := make(store.Document, len(user)+len(questionnaire)+1)
		for key, value := range user {
			row[key] = value
		}
		for key, value := range questionnaire {
			row[key] = value
		}
		delete(row, "password_hash")
		row["dashboard_data"] = dashboard
		enriched = append(enriched, row)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"users":       enriched,
		"total_count": len(enriched),
	})
}

// --- GET /api/enhanced/admin/stats ---

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	totalUsers, err := h.userRepo.Count(ctx)
	if err != nil {
		log.Printf("❌ Get admin stats error: %v", err)
		writeInternalError(w, err)
		return
	}
	activeUsers, err := h.userRepo.CountByStatus(ctx, "active")
	if err != nil {
		log.Printf("❌ Get admin stats error: %v", err)
		writeInternalError(w, err)
		return
	}

	totalPayments, err := h.paymentRepo.Count(ctx)
	if err != nil {
		log.Printf("❌ Get admin stats error: %v", err)
		writeInternalError(w, err)
		return
	}
	completedPayments, err := h.paymentRepo.CountByStatus(ctx, "completed")
	if err != nil {
		log.Printf("❌ Get admin stats error: %v", err)
		writeInternalError(w, err)
		return
	}
	totalRevenue, err := h.paymentRepo.SumCompleted(ctx, adminListCap)
	if err != nil {
		log.Printf("❌ Get admin stats error: %v", err)
		writeInternalError(w, err)
		return
	}
	avgPayment := 0.0
	if completedPayments > 0 {
		avgPayment = totalRevenue / float64(completedPayments)
	}

	totalQuestionnaires, err := h.questionnaireRepo.Count(ctx)
	if err != nil {
		log.Printf("❌ Get admin stats error: %v", err)
		writeInternalError(w, err)
		return
	}
	premiumUsers, err := h.questionnaireRepo.CountByLevel(ctx, 4)
	if err != nil {
		log.Printf("❌ Get admin stats error: %v", err)
		writeInternalError(w, err)
		return
	}
	uniquePropFirms, err := h.questionnaireRepo.CountDistinctPropFirms(ctx, adminListCap)
	if err != nil {
		log.Printf("❌ Get admin stats error: %v", err)
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user_stats": map[string]any{
			"total_users":     totalUsers,
			"active_users":    activeUsers,
			"new_users_week":  0,
			"new_users_month": 0,
		},
		"payment_stats": map[string]any{
			"total_payments":     totalPayments,
			"completed_payments": completedPayments,
			"total_revenue":      totalRevenue,
			"avg_payment":        avgPayment,
		},
		"questionnaire_stats": map[string]any{
			"total_questionnaires": totalQuestionnaires,
			"unique_prop_firms":    uniquePropFirms,
			"premium_users":        premiumUsers,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
