package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"traderedge-backend/internal/models"
	"traderedge-backend/internal/repository"

	"github.com/google/uuid"
)

type PaymentHandler struct {
	userRepo    *repository.UserRepo
	paymentRepo *repository.PaymentRepo
}

func NewPaymentHandler(userRepo *repository.UserRepo, paymentRepo *repository.PaymentRepo) *PaymentHandler {
	return &PaymentHandler{userRepo: userRepo, paymentRepo: paymentRepo}
}

type PaymentRequest struct {
	UserEmail                string  `json:"user_email"`
	PlanName                 string  `json:"plan_name_payment"`
	OriginalPrice            float64 `json:"original_price"`
	DiscountAmount           float64 `json:"discount_amount"`
	FinalPrice               float64 `json:"final_price"`
	CouponCode               string  `json:"coupon_code"`
	CouponApplied            bool    `json:"coupon_applied"`
	PaymentMethod            string  `json:"payment_method"`
	PaymentProvider          string  `json:"payment_provider"`
	TransactionID            string  `json:"transaction_id"`
	PaymentStatus            string  `json:"payment_status"`
	CryptoCurrency           string  `json:"crypto_currency"`
	CryptoNetwork            string  `json:"crypto_network"`
	CryptoTransactionHash    string  `json:"crypto_transaction_hash"`
	CryptoFromAddress        string  `json:"crypto_from_address"`
	CryptoToAddress          string  `json:"crypto_to_address"`
	CryptoAmount             string  `json:"crypto_amount"`
	CryptoVerificationStatus string  `json:"crypto_verification_status"`
	StripePaymentIntentID    string  `json:"stripe_payment_intent_id"`
	PayPalOrderID            string  `json:"paypal_order_id"`
	CryptomusOrderID         string  `json:"cryptomus_order_id"`
}

// --- POST /api/enhanced/payment ---

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case req.UserEmail == "":
		writeError(w, http.StatusBadRequest, "Missing required field: user_email")
		return
	case req.PlanName == "":
		writeError(w, http.StatusBadRequest, "Missing required field: plan_name_payment")
		return
	case req.FinalPrice == 0:
		writeError(w, http.StatusBadRequest, "Missing required field: final_price")
		return
	case req.PaymentMethod == "":
		writeError(w, http.StatusBadRequest, "Missing required field: payment_method")
		return
	case req.TransactionID == "":
		writeError(w, http.StatusBadRequest, "Missing required field: transaction_id")
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.UserEmail)
	if err != nil {
		log.Printf("❌ Payment error: %v", err)
		writeInternalError(w, err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	originalPrice := req.OriginalPrice
	if originalPrice == 0 {
		originalPrice = req.FinalPrice
	}
	status := req.PaymentStatus
	if status == "" {
		status = "completed"
	}
	cryptoVerification := req.CryptoVerificationStatus
	if cryptoVerification == "" {
		cryptoVerification = "pending"
	}

	payment := &models.Payment{
		ID:                       uuid.NewString(),
		UserID:                   user.ID,
		UserEmail:                req.UserEmail,
		UserName:                 user.FullName(),
		PlanName:                 req.PlanName,
		OriginalPrice:            originalPrice,
		DiscountAmount:           req.DiscountAmount,
		FinalPrice:               req.FinalPrice,
		CouponCode:               req.CouponCode,
		CouponApplied:            req.CouponApplied,
		PaymentMethod:            req.PaymentMethod,
		PaymentProvider:          req.PaymentProvider,
		TransactionID:            req.TransactionID,
		PaymentStatus:            status,
		CryptoCurrency:           req.CryptoCurrency,
		CryptoNetwork:            req.CryptoNetwork,
		CryptoTransactionHash:    req.CryptoTransactionHash,
		CryptoFromAddress:        req.CryptoFromAddress,
		CryptoToAddress:          req.CryptoToAddress,
		CryptoAmount:             req.CryptoAmount,
		CryptoVerificationStatus: cryptoVerification,
		StripePaymentIntentID:    req.StripePaymentIntentID,
		PayPalOrderID:            req.PayPalOrderID,
		CryptomusOrderID:         req.CryptomusOrderID,
		PaymentCompletedAt:       time.Now().UTC(),
	}

	if err := h.paymentRepo.Create(r.Context(), payment); err != nil {
		log.Printf("❌ Payment error: %v", err)
		writeInternalError(w, err)
		return
	}

	log.Printf("✅ Payment recorded successfully: %s", req.UserEmail)
	writeJSON(w, http.StatusCreated, map[string]any{
		"success":        true,
		"message":        "Payment recorded successfully",
		"payment_id":     payment.ID,
		"transaction_id": payment.TransactionID,
		"status":         payment.PaymentStatus,
	})
}
