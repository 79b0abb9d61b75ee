package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"traderedge-backend/internal/auth"
	"traderedge-backend/internal/handlers"
	"traderedge-backend/internal/mailer"
	"traderedge-backend/internal/repository"
	"traderedge-backend/internal/store"

	"github.com/joho/godotenv"
)

// Insecure defaults carried over for drop-in compatibility. Production
// deployments must override both.
const (
	defaultJWTSecret = "your-jwt-secret-key-change-this-in-production"
	defaultMongoURI  = "mongodb://localhost:27017/traderedgepro"
)

func main() {
	// Load .env (ignore error in production — env vars set directly)
	_ = godotenv.Load()

	mongoURI := getEnv("MONGODB_URI", defaultMongoURI)
	dbName := getEnv("DB_NAME", "traderedgepro")
	jwtSecret := getEnv("JWT_SECRET", defaultJWTSecret)
	port := getEnv("PORT", "8080")
	profile := getEnv("DATA_BACKEND", "mongodb")

	if jwtSecret == defaultJWTSecret {
		log.Println("⚠️  Warning: JWT_SECRET not set, using insecure default")
	}

	// Select the data backend: the route surface is identical either way,
	// only persistence differs.
	var backend store.Backend
	switch profile {
	case "memory":
		log.Println("⚠️  Running with in-memory backend — no persistence")
		backend = store.NewMemory()
	default:
		mongoBackend, err := store.ConnectMongo(mongoURI, dbName)
		if err != nil {
			log.Fatalf("❌ Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoBackend.Close(ctx)
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mongoBackend.EnsureIndexes(ctx); err != nil {
			log.Printf("⚠️  Warning: failed to create indexes: %v", err)
		}
		cancel()
		backend = mongoBackend
	}

	// Repositories
	userRepo := repository.NewUserRepo(backend)
	otpRepo := repository.NewOTPRepo(backend)
	paymentRepo := repository.NewPaymentRepo(backend)
	questionnaireRepo := repository.NewQuestionnaireRepo(backend)
	dashboardRepo := repository.NewDashboardRepo(backend)
	signalRepo := repository.NewSignalRepo(backend)

	// OTP delivery — falls back to log-only in dev
	var otpMailer mailer.Mailer
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		otpMailer = mailer.NewResendMailer(apiKey, os.Getenv("FROM_EMAIL"))
	} else {
		log.Println("⚠️  RESEND_API_KEY not set, OTP codes will be logged instead of emailed")
		otpMailer = mailer.NewLogMailer()
	}

	tokens := auth.NewManager(jwtSecret)

	router := handlers.NewRouter(handlers.Deps{
		Health:        handlers.NewHealthHandler(backend, profile),
		Auth:          handlers.NewAuthHandler(userRepo, otpRepo, tokens, otpMailer),
		Payment:       handlers.NewPaymentHandler(userRepo, paymentRepo),
		Questionnaire: handlers.NewQuestionnaireHandler(userRepo, questionnaireRepo, dashboardRepo),
		Dashboard:     handlers.NewDashboardHandler(backend, userRepo, dashboardRepo, signalRepo),
		Signal:        handlers.NewSignalHandler(userRepo, dashboardRepo, signalRepo),
		Admin:         handlers.NewAdminHandler(backend, userRepo, paymentRepo, questionnaireRepo),
		Compat:        handlers.NewCompatHandler(),
		Tokens:        tokens,
	})

	log.Printf("🚀 TraderEdge backend starting on port %s (backend: %s)", port, profile)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
