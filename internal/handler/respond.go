package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tastebase/tastebase-go/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// handleServiceError is the single error-to-status translation applied by
// every handler. Duplicate-username signups stay 400 with the message the
// SPA matches on; all other conflicts are 409. Unexpected errors are
// logged and surfaced only as a generic 500.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUsernameRequired),
		errors.Is(err, service.ErrPasswordRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse("Username and password are required."))
	case errors.Is(err, service.ErrRecipeIDRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse("Missing recipeId or userId"))
	case errors.Is(err, service.ErrUsernameTaken):
		writeJSON(w, http.StatusBadRequest, errorResponse("Username already taken."))
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse("Invalid username or password."))
	case errors.Is(err, service.ErrInvalidSession):
		writeJSON(w, http.StatusUnauthorized, errorResponse("invalid or expired session"))
	case errors.Is(err, service.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("User not found."))
	case errors.Is(err, service.ErrFavouriteNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("Recipe not found in favourites"))
	case errors.Is(err, service.ErrDuplicateFavourite):
		writeJSON(w, http.StatusConflict, errorResponse("Recipe already added to favourites."))
	default:
		slog.Error("unhandled service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Oops, something went wrong"))
	}
}
