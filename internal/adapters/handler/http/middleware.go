package http

import (
	"context"
	"net/http"

	"github.com/anuragjais-11/UserService/internal/core/ports"
)

type contextKey string

// UserIDKey carries the authenticated user's ID in the request context.
const UserIDKey contextKey = "userID"

// RequireAuth gates a route on a live bearer token. It performs exactly one
// token lookup per request and never mutates session state.
func RequireAuth(authService ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value := extractBearerToken(r)
			if value == "" {
				http.Error(w, "Unauthorized: missing bearer token", http.StatusUnauthorized)
				return
			}

			user, err := authService.ValidateToken(r.Context(), value)
			if err != nil {
				http.Error(w, "failed to validate token", http.StatusInternalServerError)
				return
			}
			if user == nil {
				http.Error(w, "Unauthorized: invalid or expired token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
