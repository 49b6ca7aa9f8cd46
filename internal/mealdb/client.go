// Package mealdb is a client for the TheMealDB-style upstream recipe
// catalog. Every call is a single bounded request with no retry; failures
// are logged and degraded to empty results rather than surfaced, so the
// HTTP layer never hard-fails on upstream trouble.
package mealdb

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/tastebase/tastebase-go/internal/metrics"
	"github.com/tastebase/tastebase-go/internal/model"
)

// pageSize is the number of recipes returned per search page.
const pageSize = 10

// Client wraps the upstream provider's HTTP API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a provider client. The API key is part of the URL path
// on this provider; the free tier uses key "1".
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// get issues one request against the provider and decodes the JSON body
// into dest. Non-2xx responses and malformed payloads both fail closed.
func (c *Client) get(ctx context.Context, operation, endpoint string, params url.Values, dest any) error {
	u := fmt.Sprintf("%s/api/json/v1/%s/%s", c.baseURL, c.apiKey, endpoint)
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "error").Inc()
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "error").Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(operation, "error").Inc()
		return fmt.Errorf("decode upstream response: %w", err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(operation, "ok").Inc()
	return nil
}

// Search returns one page of recipe summaries matching the search term.
// The provider does not paginate, so pages are sliced client-side.
func (c *Client) Search(ctx context.Context, term string, page int) []model.Recipe {
	var env mealListEnvelope
	if err := c.get(ctx, "search", "search.php", url.Values{"s": {term}}, &env); err != nil {
		slog.Error("upstream search failed", "term", term, "error", err)
		return []model.Recipe{}
	}

	recipes := make([]model.Recipe, 0, len(env.Meals))
	for _, m := range env.Meals {
		recipes = append(recipes, m.toRecipe())
	}
	return paginate(recipes, page)
}

// Information returns the full detail for one recipe, or nil when the id
// is unknown upstream or the fetch fails.
func (c *Client) Information(ctx context.Context, id string) *model.RecipeInformation {
	var env mealDetailEnvelope
	if err := c.get(ctx, "information", "lookup.php", url.Values{"i": {id}}, &env); err != nil {
		slog.Error("upstream lookup failed", "id", id, "error", err)
		return nil
	}
	if len(env.Meals) == 0 {
		return nil
	}

	info := env.Meals[0].toInformation()
	return &info
}

// BulkInformation fetches detail for each id concurrently, dropping ids
// that resolve to nothing. Result order does not match input order.
func (c *Client) BulkInformation(ctx context.Context, ids []string) []model.RecipeInformation {
	results := make(chan *model.RecipeInformation, len(ids))

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			results <- c.Information(ctx, id)
		}(id)
	}
	wg.Wait()
	close(results)

	infos := make([]model.RecipeInformation, 0, len(ids))
	for info := range results {
		if info != nil {
			infos = append(infos, *info)
		}
	}
	return infos
}

// Categories returns the provider's category reference list.
func (c *Client) Categories(ctx context.Context) []model.Category {
	var env categoryEnvelope
	if err := c.get(ctx, "categories", "categories.php", nil, &env); err != nil {
		slog.Error("upstream categories failed", "error", err)
		return []model.Category{}
	}

	categories := make([]model.Category, 0, len(env.Categories))
	for _, e := range env.Categories {
		categories = append(categories, model.Category{
			Name:        e.Name,
			Thumbnail:   e.Thumb,
			Description: e.Description,
		})
	}
	return categories
}

// Areas returns the provider's cuisine area reference list.
func (c *Client) Areas(ctx context.Context) []model.Area {
	var env areaListEnvelope
	if err := c.get(ctx, "areas", "list.php", url.Values{"a": {"list"}}, &env); err != nil {
		slog.Error("upstream areas failed", "error", err)
		return []model.Area{}
	}

	areas := make([]model.Area, 0, len(env.Meals))
	for _, e := range env.Meals {
		areas = append(areas, model.Area{Name: e.Name})
	}
	return areas
}

// Ingredients returns the provider's ingredient reference list.
func (c *Client) Ingredients(ctx context.Context) []model.Ingredient {
	var env ingredientListEnvelope
	if err := c.get(ctx, "ingredients", "list.php", url.Values{"i": {"list"}}, &env); err != nil {
		slog.Error("upstream ingredients failed", "error", err)
		return []model.Ingredient{}
	}

	ingredients := make([]model.Ingredient, 0, len(env.Meals))
	for _, e := range env.Meals {
		ingredients = append(ingredients, model.Ingredient{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
		})
	}
	return ingredients
}

// FilterSearch applies exactly one filter, in priority order
// category > area > ingredient. Returns an empty page when no filter is
// supplied.
func (c *Client) FilterSearch(ctx context.Context, category, area, ingredient string, page int) []model.Recipe {
	params := url.Values{}
	switch {
	case category != "":
		params.Set("c", category)
	case area != "":
		params.Set("a", area)
	case ingredient != "":
		params.Set("i", ingredient)
	default:
		return []model.Recipe{}
	}

	var env mealListEnvelope
	if err := c.get(ctx, "filter", "filter.php", params, &env); err != nil {
		slog.Error("upstream filter search failed", "error", err)
		return []model.Recipe{}
	}

	recipes := make([]model.Recipe, 0, len(env.Meals))
	for _, m := range env.Meals {
		recipes = append(recipes, m.toRecipe())
	}
	return paginate(recipes, page)
}

// Random issues count independent random-recipe requests concurrently and
// returns the successfully resolved subset.
func (c *Client) Random(ctx context.Context, count int) []model.Recipe {
	results := make(chan *model.Recipe, count)

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var env mealDetailEnvelope
			if err := c.get(ctx, "random", "random.php", nil, &env); err != nil {
				slog.Error("upstream random failed", "error", err)
				results <- nil
				return
			}
			if len(env.Meals) == 0 {
				results <- nil
				return
			}
			r := model.Recipe{
				ID:    env.Meals[0].ID,
				Title: env.Meals[0].Name,
				Image: env.Meals[0].Thumb,
				Tags:  splitTags(env.Meals[0].Tags),
			}
			results <- &r
		}()
	}
	wg.Wait()
	close(results)

	recipes := make([]model.Recipe, 0, count)
	for r := range results {
		if r != nil {
			recipes = append(recipes, *r)
		}
	}
	return recipes
}

// paginate slices a full result set into the requested zero-based page.
func paginate(recipes []model.Recipe, page int) []model.Recipe {
	if page < 0 {
		page = 0
	}
	start := page * pageSize
	if start >= len(recipes) {
		return []model.Recipe{}
	}
	end := start + pageSize
	if end > len(recipes) {
		end = len(recipes)
	}
	return recipes[start:end]
}
