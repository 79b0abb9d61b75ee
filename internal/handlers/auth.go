package handlers

import (
	"crypto/rand"
	"encoding/json"
	"log"
	"math/big"
	"net/http"

	"traderedge-backend/internal/auth"
	"traderedge-backend/internal/mailer"
	"traderedge-backend/internal/models"
	"traderedge-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	userRepo *repository.UserRepo
	otpRepo  *repository.OTPRepo
	tokens   *auth.Manager
	mailer   mailer.Mailer
}

func NewAuthHandler(userRepo *repository.UserRepo, otpRepo *repository.OTPRepo, tokens *auth.Manager, m mailer.Mailer) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		tokens:   tokens,
		mailer:   m,
	}
}

// --- Request / Response types ---

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SendOTPRequest struct {
	Email string `json:"email"`
}

type VerifyOTPRequest struct {
	Email   string `json:"email"`
	OTPCode string `json:"otpCode"`
}

func userSummary(user *models.User) map[string]any {
	return map[string]any{
		"id":       user.ID,
		"email":    user.Email,
		"fullName": user.FullName(),
		"status":   user.Status,
	}
}

// --- POST /api/auth/login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("❌ Login error: %v", err)
		writeInternalError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("❌ Error signing token: %v", err)
		writeInternalError(w, err)
		return
	}

	log.Printf("✅ User logged in successfully: %s", req.Email)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    userSummary(user),
	})
}

// --- POST /api/auth/send-otp ---

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("❌ Send OTP error: %v", err)
		writeInternalError(w, err)
		return
	}
	if user == nil {
		// Don't reveal whether the email exists
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "If an account with this email exists, an OTP has been sent.",
		})
		return
	}

	code, err := generateOTPCode()
	if err != nil {
		log.Printf("❌ Error generating OTP: %v", err)
		writeInternalError(w, err)
		return
	}

	if _, err := h.otpRepo.Replace(r.Context(), req.Email, code); err != nil {
		log.Printf("❌ Error storing OTP: %v", err)
		writeInternalError(w, err)
		return
	}

	// Best-effort delivery: the code is stored either way
	if err := h.mailer.SendOTP(r.Context(), req.Email, code); err != nil {
		log.Printf("❌ Error sending OTP email: %v", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "OTP sent successfully",
	})
}

// --- POST /api/auth/verify-otp ---

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.OTPCode == "" {
		writeError(w, http.StatusBadRequest, "Email and OTP code are required")
		return
	}

	otp, err := h.otpRepo.FindValid(r.Context(), req.Email, req.OTPCode)
	if err != nil {
		log.Printf("❌ Verify OTP error: %v", err)
		writeInternalError(w, err)
		return
	}
	if otp == nil {
		writeError(w, http.StatusUnauthorized, "Invalid or expired OTP")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("❌ Verify OTP error: %v", err)
		writeInternalError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Email)
	if err != nil {
		log.Printf("❌ Error signing token: %v", err)
		writeInternalError(w, err)
		return
	}

	// Single use: consume the code once verified
	if err := h.otpRepo.Consume(r.Context(), otp.ID); err != nil {
		log.Printf("⚠️  Warning: failed to delete consumed OTP: %v", err)
	}

	log.Printf("✅ OTP verified and user logged in: %s", req.Email)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "OTP verified successfully",
		"token":   token,
		"user":    userSummary(user),
	})
}

func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return (n.Add(n, big.NewInt(100000))).String(), nil
}
