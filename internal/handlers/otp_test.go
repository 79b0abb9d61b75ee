package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"traderedge-backend/internal/store"
)

func TestSendOTPSupersedesPriorCode(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@b.com")

	if status, _ := env.request(t, http.MethodPost, "/api/auth/send-otp", "", map[string]any{"email": "a@b.com"}); status != http.StatusOK {
		t.Fatalf("first send-otp returned %d", status)
	}
	first := env.storedOTP(t, "a@b.com")

	if status, _ := env.request(t, http.MethodPost, "/api/auth/send-otp", "", map[string]any{"email": "a@b.com"}); status != http.StatusOK {
		t.Fatalf("second send-otp returned %d", status)
	}

	count, err := env.backend.Count(context.Background(), store.OTPs, store.Document{"email": "a@b.com"})
	if err != nil {
		t.Fatalf("count OTPs: %v", err)
	}
	if count != 1 {
		t.Errorf("active OTP count = %d, want 1 (second request supersedes first)", count)
	}

	second := env.storedOTP(t, "a@b.com")
	if first != second {
		status, _ := env.request(t, http.MethodPost, "/api/auth/verify-otp", "", map[string]any{"email": "a@b.com", "otpCode": first})
		if status != http.StatusUnauthorized {
			t.Errorf("superseded code verified with status %d, want 401", status)
		}
	}
}

func TestVerifyOTPSingleUse(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@b.com")

	if status, _ := env.request(t, http.MethodPost, "/api/auth/send-otp", "", map[string]any{"email": "a@b.com"}); status != http.StatusOK {
		t.Fatal("send-otp failed")
	}
	code := env.storedOTP(t, "a@b.com")

	status, body := env.request(t, http.MethodPost, "/api/auth/verify-otp", "", map[string]any{"email": "a@b.com", "otpCode": code})
	if status != http.StatusOK {
		t.Fatalf("verify-otp returned %d: %v", status, body)
	}
	if token, _ := body["token"].(string); token == "" {
		t.Error("verify-otp returned no session token")
	}

	// Consumed: the same code must fail the second time
	status, body = env.request(t, http.MethodPost, "/api/auth/verify-otp", "", map[string]any{"email": "a@b.com", "otpCode": code})
	if status != http.StatusUnauthorized {
		t.Fatalf("second verify returned %d, want 401", status)
	}
	if body["error"] != "Invalid or expired OTP" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestVerifyOTPRejectsWrongAndExpired(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "a@b.com")

	if status, _ := env.request(t, http.MethodPost, "/api/auth/send-otp", "", map[string]any{"email": "a@b.com"}); status != http.StatusOK {
		t.Fatal("send-otp failed")
	}

	status, _ := env.request(t, http.MethodPost, "/api/auth/verify-otp", "", map[string]any{"email": "a@b.com", "otpCode": "000000"})
	if status != http.StatusUnauthorized {
		t.Errorf("wrong code returned %d, want 401", status)
	}

	// Force the stored code past its expiry
	code := env.storedOTP(t, "a@b.com")
	if _, err := env.backend.UpdateOne(context.Background(), store.OTPs,
		store.Document{"email": "a@b.com"},
		store.Document{"expires_at": time.Now().UTC().Add(-time.Minute)}); err != nil {
		t.Fatalf("expire OTP: %v", err)
	}
	status, _ = env.request(t, http.MethodPost, "/api/auth/verify-otp", "", map[string]any{"email": "a@b.com", "otpCode": code})
	if status != http.StatusUnauthorized {
		t.Errorf("expired code returned %d, want 401", status)
	}
}

func TestSendOTPDoesNotRevealUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/api/auth/send-otp", "", map[string]any{"email": "nobody@b.com"})
	if status != http.StatusOK {
		t.Fatalf("send-otp for unknown email returned %d, want 200", status)
	}
	if body["success"] != true {
		t.Errorf("body = %v, want generic success", body)
	}

	count, err := env.backend.Count(context.Background(), store.OTPs, store.Document{"email": "nobody@b.com"})
	if err != nil {
		t.Fatalf("count OTPs: %v", err)
	}
	if count != 0 {
		t.Errorf("OTP stored for unknown email, count = %d", count)
	}
}
