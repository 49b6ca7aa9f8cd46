package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/tastebase/tastebase-go/internal/model"
	"github.com/tastebase/tastebase-go/internal/service"
)

// FavouriteHandler handles HTTP requests for favourite recipes.
type FavouriteHandler struct {
	service *service.FavouriteService
}

// NewFavouriteHandler creates a new FavouriteHandler.
func NewFavouriteHandler(svc *service.FavouriteService) *FavouriteHandler {
	return &FavouriteHandler{service: svc}
}

// HandleList handles GET /api/recipes/favourite?userId= requests and
// returns full recipe detail for every saved favourite.
func (h *FavouriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	rawID := r.URL.Query().Get("userId")
	if rawID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("User ID is required"))
		return
	}

	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("User ID is required"))
		return
	}

	results, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.InformationResults{Results: results})
}

// HandleAdd handles POST /api/recipes/favourite requests.
func (h *FavouriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.FavouriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	fav, err := h.service.Add(r.Context(), req.UserID, req.RecipeID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, fav)
}

// HandleRemove handles DELETE /api/recipes/favourite requests.
func (h *FavouriteHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.FavouriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	if err := h.service.Remove(r.Context(), req.UserID, req.RecipeID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
