package model

// Recipe is a lightweight search result reshaped from the upstream provider.
// Never persisted; reconstructed on every request.
type Recipe struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Image string   `json:"image"`
	Tags  []string `json:"tags,omitempty"`
}

// RecipeIngredient pairs an ingredient name with its measure for one recipe.
type RecipeIngredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// RecipeInformation is the full detail view of a single recipe.
type RecipeInformation struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Image        string             `json:"image"`
	Category     string             `json:"category,omitempty"`
	Area         string             `json:"area,omitempty"`
	Instructions string             `json:"instructions"`
	Tags         []string           `json:"tags,omitempty"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	SourceURL    string             `json:"sourceUrl,omitempty"`
	YoutubeURL   string             `json:"youtubeUrl,omitempty"`
}

// Category is a reference list entry for category browsing.
type Category struct {
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description,omitempty"`
}

// Area is a reference list entry for cuisine areas.
type Area struct {
	Name string `json:"name"`
}

// Ingredient is a reference list entry for ingredient browsing.
type Ingredient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SearchResults wraps a list of recipe summaries.
type SearchResults struct {
	Results []Recipe `json:"results"`
}

// InformationResults wraps a list of full recipe details.
type InformationResults struct {
	Results []RecipeInformation `json:"results"`
}
