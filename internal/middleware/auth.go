package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tastebase/tastebase-go/internal/model"
	"github.com/tastebase/tastebase-go/internal/service"
)

// SessionCookieName is the name of the HTTP-only session cookie.
const SessionCookieName = "tastebase_session"

type contextKey string

const userKey contextKey = "user"

// SessionAuth returns middleware that validates the session cookie and
// populates the request context with the authenticated user. Validation
// re-fetches the user row, so deleted accounts are rejected even while
// their tokens are still within expiry.
func SessionAuth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeJSONError(w, http.StatusUnauthorized, "not authenticated")
				return
			}

			user, err := auth.CurrentUser(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, service.ErrUserNotFound) {
					writeJSONError(w, http.StatusNotFound, "user not found")
					return
				}
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (model.UserResponse, bool) {
	user, ok := ctx.Value(userKey).(model.UserResponse)
	return user, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
