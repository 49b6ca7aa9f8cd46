package mealdb

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "1", 5*time.Second), srv
}

func TestSearch(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/json/v1/1/search.php" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("s"); got != "pasta" {
			t.Errorf("search term = %q, want %q", got, "pasta")
		}
		fmt.Fprint(w, `{"meals":[
			{"idMeal":"52772","strMeal":"Teriyaki Chicken","strMealThumb":"https://img/52772.jpg","strTags":"Meat,Casserole"},
			{"idMeal":"52804","strMeal":"Poutine","strMealThumb":"https://img/52804.jpg","strTags":null}
		]}`)
	}))

	results := client.Search(context.Background(), "pasta", 0)
	if len(results) != 2 {
		t.Fatalf("Search() returned %d results, want 2", len(results))
	}
	if results[0].ID != "52772" || results[0].Title != "Teriyaki Chicken" {
		t.Errorf("first result = %+v", results[0])
	}
	if len(results[0].Tags) != 2 || results[0].Tags[0] != "Meat" {
		t.Errorf("first result tags = %v, want [Meat Casserole]", results[0].Tags)
	}
	if results[1].Tags != nil {
		t.Errorf("second result tags = %v, want nil", results[1].Tags)
	}
}

func TestSearchPagination(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals":[`)
		for i := 0; i < 15; i++ {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"idMeal":"%d","strMeal":"Meal %d"}`, i, i)
		}
		fmt.Fprint(w, `]}`)
	}))

	if got := client.Search(context.Background(), "x", 0); len(got) != 10 {
		t.Errorf("page 0 returned %d results, want 10", len(got))
	}
	second := client.Search(context.Background(), "x", 1)
	if len(second) != 5 {
		t.Errorf("page 1 returned %d results, want 5", len(second))
	}
	if len(second) > 0 && second[0].ID != "10" {
		t.Errorf("page 1 starts at id %q, want %q", second[0].ID, "10")
	}
	if got := client.Search(context.Background(), "x", 2); len(got) != 0 {
		t.Errorf("page 2 returned %d results, want 0", len(got))
	}
}

func TestSearchNoMatches(t *testing.T) {
	// The provider sends a null meals array when nothing matches.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals":null}`)
	}))

	results := client.Search(context.Background(), "zzzz", 0)
	if results == nil {
		t.Fatal("Search() returned nil slice, want empty")
	}
	if len(results) != 0 {
		t.Errorf("Search() returned %d results, want 0", len(results))
	}
}

func TestSearchUpstreamFailureDegrades(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	if results := client.Search(context.Background(), "pasta", 0); len(results) != 0 {
		t.Errorf("Search() returned %d results on upstream failure, want 0", len(results))
	}
}

func TestSearchMalformedPayloadDegrades(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals": not json`)
	}))

	if results := client.Search(context.Background(), "pasta", 0); len(results) != 0 {
		t.Errorf("Search() returned %d results on malformed payload, want 0", len(results))
	}
}

func TestInformation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("i"); got != "52772" {
			t.Errorf("lookup id = %q, want %q", got, "52772")
		}
		fmt.Fprint(w, `{"meals":[{
			"idMeal":"52772","strMeal":"Teriyaki Chicken","strMealThumb":"https://img/52772.jpg",
			"strCategory":"Chicken","strArea":"Japanese","strInstructions":"Preheat oven to 350.",
			"strTags":"Meat","strSource":"https://example.com/recipe","strYoutube":"https://youtube/xyz",
			"strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
			"strIngredient2":"water","strMeasure2":"1/2 cup",
			"strIngredient3":"","strMeasure3":""
		}]}`)
	}))

	info := client.Information(context.Background(), "52772")
	if info == nil {
		t.Fatal("Information() returned nil")
	}
	if info.ID != "52772" || info.Category != "Chicken" || info.Area != "Japanese" {
		t.Errorf("Information() = %+v", info)
	}
	if len(info.Ingredients) != 2 {
		t.Fatalf("Information() ingredients = %d, want 2 (empty slots skipped)", len(info.Ingredients))
	}
	if info.Ingredients[0].Name != "soy sauce" || info.Ingredients[0].Measure != "3/4 cup" {
		t.Errorf("first ingredient = %+v", info.Ingredients[0])
	}
	if info.SourceURL != "https://example.com/recipe" {
		t.Errorf("SourceURL = %q", info.SourceURL)
	}
}

func TestInformationUnknownID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"meals":null}`)
	}))

	if info := client.Information(context.Background(), "99999"); info != nil {
		t.Errorf("Information() = %+v, want nil for unknown id", info)
	}
}

func TestBulkInformationDropsUnknownIDs(t *testing.T) {
	known := map[string]bool{"1": true, "2": true}
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("i")
		if !known[id] {
			fmt.Fprint(w, `{"meals":null}`)
			return
		}
		fmt.Fprintf(w, `{"meals":[{"idMeal":"%s","strMeal":"Meal %s"}]}`, id, id)
	}))

	infos := client.BulkInformation(context.Background(), []string{"1", "invalid", "2"})
	if len(infos) != 2 {
		t.Fatalf("BulkInformation() returned %d results, want 2", len(infos))
	}
	seen := map[string]bool{}
	for _, info := range infos {
		seen[info.ID] = true
	}
	if !seen["1"] || !seen["2"] {
		t.Errorf("BulkInformation() ids = %v, want 1 and 2", seen)
	}
}

func TestCategories(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/json/v1/1/categories.php" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		fmt.Fprint(w, `{"categories":[
			{"idCategory":"1","strCategory":"Beef","strCategoryThumb":"https://img/beef.png","strCategoryDescription":"Beef is meat."},
			{"idCategory":"3","strCategory":"Seafood","strCategoryThumb":"https://img/fish.png","strCategoryDescription":"Fish and such."}
		]}`)
	}))

	categories := client.Categories(context.Background())
	if len(categories) != 2 {
		t.Fatalf("Categories() returned %d entries, want 2", len(categories))
	}
	if categories[1].Name != "Seafood" || categories[1].Thumbnail != "https://img/fish.png" {
		t.Errorf("second category = %+v", categories[1])
	}
}

func TestAreas(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("a"); got != "list" {
			t.Errorf("list param a = %q, want %q", got, "list")
		}
		fmt.Fprint(w, `{"meals":[{"strArea":"American"},{"strArea":"Japanese"}]}`)
	}))

	areas := client.Areas(context.Background())
	if len(areas) != 2 || areas[1].Name != "Japanese" {
		t.Errorf("Areas() = %+v", areas)
	}
}

func TestIngredients(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("i"); got != "list" {
			t.Errorf("list param i = %q, want %q", got, "list")
		}
		fmt.Fprint(w, `{"meals":[{"idIngredient":"1","strIngredient":"Chicken","strDescription":"A bird."}]}`)
	}))

	ingredients := client.Ingredients(context.Background())
	if len(ingredients) != 1 || ingredients[0].Name != "Chicken" {
		t.Errorf("Ingredients() = %+v", ingredients)
	}
}

func TestFilterSearchPriority(t *testing.T) {
	var gotQuery atomic.Value
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		fmt.Fprint(w, `{"meals":[{"idMeal":"52772","strMeal":"Fish Pie","strMealThumb":"https://img/pie.jpg"}]}`)
	}))

	// Category wins over simultaneously supplied area and ingredient.
	results := client.FilterSearch(context.Background(), "Seafood", "Canadian", "salmon", 0)
	if len(results) != 1 {
		t.Fatalf("FilterSearch() returned %d results, want 1", len(results))
	}

	q := gotQuery.Load().(url.Values)
	if got := q["c"]; len(got) != 1 || got[0] != "Seafood" {
		t.Errorf("filter c = %v, want [Seafood]", got)
	}
	if len(q["a"]) != 0 || len(q["i"]) != 0 {
		t.Errorf("lower-priority filters were sent: %v", q)
	}
}

func TestFilterSearchAreaWhenNoCategory(t *testing.T) {
	var gotQuery atomic.Value
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query())
		fmt.Fprint(w, `{"meals":[]}`)
	}))

	client.FilterSearch(context.Background(), "", "Canadian", "salmon", 0)

	q := gotQuery.Load().(url.Values)
	if got := q["a"]; len(got) != 1 || got[0] != "Canadian" {
		t.Errorf("filter a = %v, want [Canadian]", got)
	}
}

func TestFilterSearchNoFilters(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))

	results := client.FilterSearch(context.Background(), "", "", "", 0)
	if len(results) != 0 {
		t.Errorf("FilterSearch() returned %d results, want 0", len(results))
	}
	if calls.Load() != 0 {
		t.Error("FilterSearch() hit upstream with no filter supplied")
	}
}

func TestRandom(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		fmt.Fprintf(w, `{"meals":[{"idMeal":"%d","strMeal":"Random %d"}]}`, n, n)
	}))

	results := client.Random(context.Background(), 10)
	if len(results) != 10 {
		t.Errorf("Random() returned %d results, want 10", len(results))
	}
	if calls.Load() != 10 {
		t.Errorf("Random() issued %d upstream requests, want 10", calls.Load())
	}
}

func TestRandomPartialFailure(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1)%2 == 0 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"meals":[{"idMeal":"1","strMeal":"Random"}]}`)
	}))

	results := client.Random(context.Background(), 10)
	if len(results) != 5 {
		t.Errorf("Random() returned %d results with half the requests failing, want 5", len(results))
	}
}
