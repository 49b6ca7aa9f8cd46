package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tastebase/tastebase-go/internal/model"
)

var (
	ErrFavouriteNotFound  = errors.New("favourite not found")
	ErrDuplicateFavourite = errors.New("recipe already added to favourites")
)

// FavouriteRepository handles favourite recipe persistence operations.
type FavouriteRepository struct {
	db *sql.DB
}

// NewFavouriteRepository creates a new FavouriteRepository.
func NewFavouriteRepository(db *sql.DB) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

// Create inserts a favourite and sets the generated ID on the struct.
// The UNIQUE(user_id, recipe_id) key enforces one favourite per user per recipe.
func (r *FavouriteRepository) Create(ctx context.Context, fav *model.FavouriteRecipe) error {
	query := `INSERT INTO favourite_recipes (user_id, recipe_id) VALUES (?, ?)`

	result, err := r.db.ExecContext(ctx, query, fav.UserID, fav.RecipeID)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateFavourite
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	fav.ID = id
	return nil
}

// ListByUser retrieves all favourites belonging to the given user.
func (r *FavouriteRepository) ListByUser(ctx context.Context, userID int64) ([]model.FavouriteRecipe, error) {
	query := `SELECT id, user_id, recipe_id, created_at FROM favourite_recipes WHERE user_id = ?`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []model.FavouriteRecipe
	for rows.Next() {
		var f model.FavouriteRecipe
		if err := rows.Scan(&f.ID, &f.UserID, &f.RecipeID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}

	return favs, rows.Err()
}

// Delete removes the favourite matching both userID and recipeID.
// Scoping on both columns keeps favourites private to the owning user.
func (r *FavouriteRepository) Delete(ctx context.Context, userID int64, recipeID string) error {
	query := `DELETE FROM favourite_recipes WHERE user_id = ? AND recipe_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, recipeID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFavouriteNotFound
	}

	return nil
}
