package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tastebase/tastebase-go/internal/middleware"
	"github.com/tastebase/tastebase-go/internal/model"
	"github.com/tastebase/tastebase-go/internal/service"
)

// AuthHandler handles HTTP requests for signup, login and sessions.
type AuthHandler struct {
	service       *service.AuthService
	sessionExpiry time.Duration
	cookieDomain  string
	production    bool
}

// NewAuthHandler creates a new AuthHandler. Cookies are SameSite=None and
// Secure in production so the SPA can be served from another origin; in
// development they stay Lax over plain HTTP.
func NewAuthHandler(svc *service.AuthService, expiry time.Duration, cookieDomain string, production bool) *AuthHandler {
	return &AuthHandler{
		service:       svc,
		sessionExpiry: expiry,
		cookieDomain:  cookieDomain,
		production:    production,
	}
}

// HandleSignup handles POST /api/signup requests.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/login requests. On success the session
// token is delivered via an HTTP-only cookie.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	resp, token, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/me requests. SessionAuth middleware has
// already validated the cookie and loaded the user.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("not authenticated"))
		return
	}

	writeJSON(w, http.StatusOK, model.MeResponse{User: user})
}

// HandleLogout handles POST /api/logout requests. Clearing the cookie is
// idempotent and always succeeds.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	sameSite := http.SameSiteLaxMode
	if h.production {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   int(h.sessionExpiry.Seconds()),
		HttpOnly: true,
		SameSite: sameSite,
		Secure:   h.production,
	})
}
