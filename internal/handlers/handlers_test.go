package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"traderedge-backend/internal/auth"
	"traderedge-backend/internal/mailer"
	"traderedge-backend/internal/repository"
	"traderedge-backend/internal/store"

	"github.com/go-chi/chi/v5"
)

type testEnv struct {
	router  chi.Router
	backend *store.Memory
	tokens  *auth.Manager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	backend := store.NewMemory()
	tokens := auth.NewManager("test-secret")

	userRepo := repository.NewUserRepo(backend)
	otpRepo := repository.NewOTPRepo(backend)
	paymentRepo := repository.NewPaymentRepo(backend)
	questionnaireRepo := repository.NewQuestionnaireRepo(backend)
	dashboardRepo := repository.NewDashboardRepo(backend)
	signalRepo := repository.NewSignalRepo(backend)

	router := NewRouter(Deps{
		Health:        NewHealthHandler(backend, "memory"),
		Auth:          NewAuthHandler(userRepo, otpRepo, tokens, mailer.NewLogMailer()),
		Payment:       NewPaymentHandler(userRepo, paymentRepo),
		Questionnaire: NewQuestionnaireHandler(userRepo, questionnaireRepo, dashboardRepo),
		Dashboard:     NewDashboardHandler(backend, userRepo, dashboardRepo, signalRepo),
		Signal:        NewSignalHandler(userRepo, dashboardRepo, signalRepo),
		Admin:         NewAdminHandler(backend, userRepo, paymentRepo, questionnaireRepo),
		Compat:        NewCompatHandler(),
		Tokens:        tokens,
	})

	return &testEnv{router: router, backend: backend, tokens: tokens}
}

// request performs one JSON request against the full router and decodes the
// response body.
func (e *testEnv) request(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON response (%d): %s", rec.Code, rec.Body.String())
		}
	}
	return rec.Code, decoded
}

// signup registers a user through the API and returns a session token for
// protected routes.
func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()

	status, _ := e.request(t, http.MethodPost, "/api/enhanced/signup", "", map[string]any{
		"first_name": "A",
		"last_name":  "B",
		"email":      email,
		"password":   "pw",
	})
	if status != http.StatusCreated {
		t.Fatalf("signup returned %d, want 201", status)
	}

	status, body := e.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "pw",
	})
	if status != http.StatusOK {
		t.Fatalf("login returned %d, want 200", status)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login returned empty token")
	}
	return token
}

func (e *testEnv) storedOTP(t *testing.T, email string) string {
	t.Helper()

	doc, err := e.backend.FindOne(context.Background(), store.OTPs, store.Document{"email": email})
	if err != nil {
		t.Fatalf("lookup OTP: %v", err)
	}
	if doc == nil {
		t.Fatalf("no OTP stored for %s", email)
	}
	code, _ := doc["otp"].(string)
	return code
}
