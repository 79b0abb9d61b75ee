package handlers

import (
	"net/http"

	"traderedge-backend/internal/auth"
	customMiddleware "traderedge-backend/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps bundles everything the route surface needs. main wires it from the
// selected backend; tests wire it from the in-memory one.
type Deps struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	Payment       *PaymentHandler
	Questionnaire *QuestionnaireHandler
	Dashboard     *DashboardHandler
	Signal        *SignalHandler
	Admin         *AdminHandler
	Compat        *CompatHandler
	Tokens        *auth.Manager
}

// NewRouter builds the full route surface. Protected routes are grouped
// behind the auth middleware so they short-circuit before handler logic.
func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public routes
	r.Get("/api/health", d.Health.Check)
	r.Post("/api/auth/login", d.Auth.Login)
	r.Post("/api/auth/send-otp", d.Auth.SendOTP)
	r.Post("/api/auth/verify-otp", d.Auth.VerifyOTP)
	r.Post("/api/enhanced/signup", d.Auth.Signup)

	// Legacy frontend-compat routes
	r.Get("/api/dashboard-data", d.Compat.DashboardData)
	r.Post("/api/dashboard/save", d.Compat.SaveDashboard)
	r.Post("/user/progress", d.Compat.SaveProgress)
	r.Get("/api/trades", d.Signal.Trades)
	r.Get("/api/signals", d.Signal.List)

	// Protected routes (bearer token required)
	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.RequireAuth(d.Tokens))

		r.Post("/api/enhanced/payment", d.Payment.Record)
		r.Post("/api/enhanced/questionnaire", d.Questionnaire.Submit)
		r.Get("/api/enhanced/dashboard/{email}", d.Dashboard.Get)
		r.Post("/api/enhanced/dashboard/update", d.Dashboard.Update)
		r.Post("/api/enhanced/signals/track", d.Signal.Track)
		r.Get("/api/enhanced/admin/users", d.Admin.Users)
		r.Get("/api/enhanced/admin/stats", d.Admin.Stats)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Endpoint not found")
	})

	return r
}
