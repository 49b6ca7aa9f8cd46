package mealdb

import (
	"strings"

	"github.com/tastebase/tastebase-go/internal/model"
)

// Wire-level projections of the provider's JSON. The provider returns
// {"meals": null} rather than an empty array when nothing matches, so
// every envelope field is nilable. Reshaping into internal models happens
// here, at the deserialization boundary.

type mealListEnvelope struct {
	Meals []mealSummary `json:"meals"`
}

type mealSummary struct {
	ID    string `json:"idMeal"`
	Name  string `json:"strMeal"`
	Thumb string `json:"strMealThumb"`
	Tags  string `json:"strTags"`
}

func (m mealSummary) toRecipe() model.Recipe {
	return model.Recipe{
		ID:    m.ID,
		Title: m.Name,
		Image: m.Thumb,
		Tags:  splitTags(m.Tags),
	}
}

type mealDetailEnvelope struct {
	Meals []mealDetail `json:"meals"`
}

type mealDetail struct {
	ID           string `json:"idMeal"`
	Name         string `json:"strMeal"`
	Thumb        string `json:"strMealThumb"`
	Category     string `json:"strCategory"`
	Area         string `json:"strArea"`
	Instructions string `json:"strInstructions"`
	Tags         string `json:"strTags"`
	Source       string `json:"strSource"`
	Youtube      string `json:"strYoutube"`

	Ingredient1  string `json:"strIngredient1"`
	Ingredient2  string `json:"strIngredient2"`
	Ingredient3  string `json:"strIngredient3"`
	Ingredient4  string `json:"strIngredient4"`
	Ingredient5  string `json:"strIngredient5"`
	Ingredient6  string `json:"strIngredient6"`
	Ingredient7  string `json:"strIngredient7"`
	Ingredient8  string `json:"strIngredient8"`
	Ingredient9  string `json:"strIngredient9"`
	Ingredient10 string `json:"strIngredient10"`
	Ingredient11 string `json:"strIngredient11"`
	Ingredient12 string `json:"strIngredient12"`
	Ingredient13 string `json:"strIngredient13"`
	Ingredient14 string `json:"strIngredient14"`
	Ingredient15 string `json:"strIngredient15"`
	Ingredient16 string `json:"strIngredient16"`
	Ingredient17 string `json:"strIngredient17"`
	Ingredient18 string `json:"strIngredient18"`
	Ingredient19 string `json:"strIngredient19"`
	Ingredient20 string `json:"strIngredient20"`

	Measure1  string `json:"strMeasure1"`
	Measure2  string `json:"strMeasure2"`
	Measure3  string `json:"strMeasure3"`
	Measure4  string `json:"strMeasure4"`
	Measure5  string `json:"strMeasure5"`
	Measure6  string `json:"strMeasure6"`
	Measure7  string `json:"strMeasure7"`
	Measure8  string `json:"strMeasure8"`
	Measure9  string `json:"strMeasure9"`
	Measure10 string `json:"strMeasure10"`
	Measure11 string `json:"strMeasure11"`
	Measure12 string `json:"strMeasure12"`
	Measure13 string `json:"strMeasure13"`
	Measure14 string `json:"strMeasure14"`
	Measure15 string `json:"strMeasure15"`
	Measure16 string `json:"strMeasure16"`
	Measure17 string `json:"strMeasure17"`
	Measure18 string `json:"strMeasure18"`
	Measure19 string `json:"strMeasure19"`
	Measure20 string `json:"strMeasure20"`
}

func (m mealDetail) toInformation() model.RecipeInformation {
	return model.RecipeInformation{
		ID:           m.ID,
		Title:        m.Name,
		Image:        m.Thumb,
		Category:     m.Category,
		Area:         m.Area,
		Instructions: m.Instructions,
		Tags:         splitTags(m.Tags),
		Ingredients:  m.ingredients(),
		SourceURL:    m.Source,
		YoutubeURL:   m.Youtube,
	}
}

// ingredients collapses the provider's twenty numbered ingredient/measure
// slots into a list, skipping empty slots.
func (m mealDetail) ingredients() []model.RecipeIngredient {
	names := []string{
		m.Ingredient1, m.Ingredient2, m.Ingredient3, m.Ingredient4, m.Ingredient5,
		m.Ingredient6, m.Ingredient7, m.Ingredient8, m.Ingredient9, m.Ingredient10,
		m.Ingredient11, m.Ingredient12, m.Ingredient13, m.Ingredient14, m.Ingredient15,
		m.Ingredient16, m.Ingredient17, m.Ingredient18, m.Ingredient19, m.Ingredient20,
	}
	measures := []string{
		m.Measure1, m.Measure2, m.Measure3, m.Measure4, m.Measure5,
		m.Measure6, m.Measure7, m.Measure8, m.Measure9, m.Measure10,
		m.Measure11, m.Measure12, m.Measure13, m.Measure14, m.Measure15,
		m.Measure16, m.Measure17, m.Measure18, m.Measure19, m.Measure20,
	}

	var out []model.RecipeIngredient
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out = append(out, model.RecipeIngredient{
			Name:    name,
			Measure: strings.TrimSpace(measures[i]),
		})
	}
	return out
}

type categoryEnvelope struct {
	Categories []categoryEntry `json:"categories"`
}

type categoryEntry struct {
	Name        string `json:"strCategory"`
	Thumb       string `json:"strCategoryThumb"`
	Description string `json:"strCategoryDescription"`
}

type areaListEnvelope struct {
	Meals []areaEntry `json:"meals"`
}

type areaEntry struct {
	Name string `json:"strArea"`
}

type ingredientListEnvelope struct {
	Meals []ingredientEntry `json:"meals"`
}

type ingredientEntry struct {
	ID          string `json:"idIngredient"`
	Name        string `json:"strIngredient"`
	Description string `json:"strDescription"`
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
