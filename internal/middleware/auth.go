package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"traderedge-backend/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// RequireAuth guards protected routes: it verifies the bearer token and
// stores the identity in the request context, or short-circuits with a 401
// envelope before the handler runs. All failure classes answer the same
// status but are logged distinctly.
func RequireAuth(tokens *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				log.Println("❌ Missing or invalid Authorization header")
				writeUnauthorized(w, "Authentication required", "Please log in to access this resource")
				return
			}

			identity, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrExpiredToken):
					log.Println("❌ Token expired")
					writeUnauthorized(w, "Token expired", "Your session has expired. Please log in again.")
				default:
					log.Println("❌ Invalid token")
					writeUnauthorized(w, "Invalid token", "Authentication failed. Please log in again.")
				}
				return
			}

			log.Printf("✅ Authentication successful for user: %s", identity.Email)
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity returns the verified identity set by RequireAuth, or nil on
// unprotected routes.
func GetIdentity(ctx context.Context) *auth.Identity {
	identity, _ := ctx.Value(identityKey).(*auth.Identity)
	return identity
}

func writeUnauthorized(w http.ResponseWriter, errMsg, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":    errMsg,
		"message":  message,
		"redirect": "/login",
	})
}
