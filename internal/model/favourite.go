package model

import "time"

// FavouriteRecipe is a user-owned bookmark referencing an upstream recipe id.
// The (UserID, RecipeID) pair is unique per user.
type FavouriteRecipe struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	RecipeID  string    `json:"recipeId"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// FavouriteRequest is the body of POST and DELETE /api/recipes/favourite.
type FavouriteRequest struct {
	RecipeID string `json:"recipeId"`
	UserID   int64  `json:"userId"`
}
