package middleware

import (
	"context"
	"net/http"

	"github.com/devarsh/admin-user-portal/internal/auth"
)

// RequireAuth validates the bearer token (or session cookie), checks
// that its session has not been revoked, and injects the user_id into
// the request context. Every admin route goes through this gate.
func RequireAuth(secret []byte, sessions auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.TokenFromRequest(r)
			if token == "" {
				http.Error(w, `{"message":"Not authenticated"}`, http.StatusUnauthorized)
				return
			}

			claims, err := auth.ParseToken(token, secret)
			if err != nil {
				http.Error(w, `{"message":"Not authenticated"}`, http.StatusUnauthorized)
				return
			}

			userID, err := sessions.Get(r.Context(), claims.ID)
			if err != nil || userID == 0 || userID != claims.UserID {
				http.Error(w, `{"message":"Session expired"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
