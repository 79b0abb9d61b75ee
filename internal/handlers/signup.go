package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"traderedge-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type SignupRequest struct {
	FirstName               string  `json:"first_name"`
	LastName                string  `json:"last_name"`
	Email                   string  `json:"email"`
	Password                string  `json:"password"`
	Phone                   string  `json:"phone"`
	Company                 string  `json:"company"`
	Country                 string  `json:"country"`
	SelectedPlanName        string  `json:"selected_plan_name"`
	SelectedPlanPrice       float64 `json:"selected_plan_price"`
	SelectedPlanPeriod      string  `json:"selected_plan_period"`
	SelectedPlanDescription string  `json:"selected_plan_description"`
	AgreeToTerms            bool    `json:"agree_to_terms"`
	AgreeToMarketing        bool    `json:"agree_to_marketing"`
}

// --- POST /api/enhanced/signup ---

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	required := []struct{ name, value string }{
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"email", req.Email},
		{"password", req.Password},
	}
	for _, field := range required {
		if field.value == "" {
			writeError(w, http.StatusBadRequest, "Missing required field: "+field.name)
			return
		}
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("❌ Signup error: %v", err)
		writeInternalError(w, err)
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "User with this email already exists")
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Error hashing password: %v", err)
		writeInternalError(w, err)
		return
	}

	country := req.Country
	if country == "" {
		country = "United States"
	}

	user := &models.User{
		ID:                      uuid.NewString(),
		FirstName:               req.FirstName,
		LastName:                req.LastName,
		Email:                   req.Email,
		Phone:                   req.Phone,
		Company:                 req.Company,
		Country:                 country,
		PasswordHash:            string(passwordHash),
		SelectedPlanName:        req.SelectedPlanName,
		SelectedPlanPrice:       req.SelectedPlanPrice,
		SelectedPlanPeriod:      req.SelectedPlanPeriod,
		SelectedPlanDescription: req.SelectedPlanDescription,
		AgreeToTerms:            req.AgreeToTerms,
		AgreeToMarketing:        req.AgreeToMarketing,
		UniqueID:                fmt.Sprintf("USER_%d", time.Now().Unix()),
		AccessToken:             uuid.NewString(), // opaque audit value, not a session credential
		RegistrationMethod:      "api",
		Status:                  "active",
	}

	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("❌ Signup error: %v", err)
		writeInternalError(w, err)
		return
	}

	log.Printf("✅ User registered successfully: %s", req.Email)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "User registered successfully",
		"user": map[string]any{
			"id":       user.ID,
			"email":    user.Email,
			"fullName": user.FullName(),
			"uniqueId": user.UniqueID,
			"status":   user.Status,
		},
		"access_token": user.AccessToken,
	})
}
