package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tastebase/tastebase-go/internal/mealdb"
	"github.com/tastebase/tastebase-go/internal/model"
)

// randomRecipeCount is how many recipes GET /api/recipes/random returns.
const randomRecipeCount = 10

// RecipeHandler proxies recipe browsing requests to the upstream provider.
// Upstream failures have already been degraded to empty results by the
// client, so these handlers never 5xx on provider trouble.
type RecipeHandler struct {
	client *mealdb.Client
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(client *mealdb.Client) *RecipeHandler {
	return &RecipeHandler{client: client}
}

// HandleSearch handles GET /api/recipes/search?searchTerm=&page= requests.
func (h *RecipeHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchTerm")
	if term == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("searchTerm is required"))
		return
	}

	page := parsePage(r.URL.Query().Get("page"))
	results := h.client.Search(r.Context(), term, page)
	writeJSON(w, http.StatusOK, model.SearchResults{Results: results})
}

// HandleInformation handles GET /api/recipes/{recipeId}/information
// requests. Unknown ids serialize as a JSON null body.
func (h *RecipeHandler) HandleInformation(w http.ResponseWriter, r *http.Request) {
	recipeID := chi.URLParam(r, "recipeId")
	if recipeID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("recipeId is required"))
		return
	}

	info := h.client.Information(r.Context(), recipeID)
	writeJSON(w, http.StatusOK, info)
}

// HandleCategories handles GET /api/recipes/categories requests.
func (h *RecipeHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.client.Categories(r.Context())
	writeJSON(w, http.StatusOK, map[string][]model.Category{"results": categories})
}

// HandleAreas handles GET /api/recipes/areas requests.
func (h *RecipeHandler) HandleAreas(w http.ResponseWriter, r *http.Request) {
	areas := h.client.Areas(r.Context())
	writeJSON(w, http.StatusOK, map[string][]model.Area{"results": areas})
}

// HandleIngredients handles GET /api/recipes/ingredients requests.
func (h *RecipeHandler) HandleIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients := h.client.Ingredients(r.Context())
	writeJSON(w, http.StatusOK, map[string][]model.Ingredient{"results": ingredients})
}

// HandleAdvancedSearch handles GET /api/recipes/advanced-search requests.
// Exactly one of category, area and ingredient is applied, in that
// priority order; with none supplied the result set is empty.
func (h *RecipeHandler) HandleAdvancedSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := parsePage(q.Get("page"))

	results := h.client.FilterSearch(r.Context(), q.Get("category"), q.Get("area"), q.Get("ingredient"), page)
	writeJSON(w, http.StatusOK, model.SearchResults{Results: results})
}

// HandleRandom handles GET /api/recipes/random requests.
func (h *RecipeHandler) HandleRandom(w http.ResponseWriter, r *http.Request) {
	results := h.client.Random(r.Context(), randomRecipeCount)
	writeJSON(w, http.StatusOK, model.SearchResults{Results: results})
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0
	}
	return page
}
