package service

import (
	"context"
	"errors"

	"github.com/tastebase/tastebase-go/internal/model"
	"github.com/tastebase/tastebase-go/internal/repository"
)

var (
	ErrRecipeIDRequired   = errors.New("missing recipeId or userId")
	ErrDuplicateFavourite = errors.New("recipe already added to favourites")
	ErrFavouriteNotFound  = errors.New("recipe not found in favourites")
)

// FavouriteStore is the persistence surface FavouriteService needs.
// *repository.FavouriteRepository satisfies it.
type FavouriteStore interface {
	Create(ctx context.Context, fav *model.FavouriteRecipe) error
	ListByUser(ctx context.Context, userID int64) ([]model.FavouriteRecipe, error)
	Delete(ctx context.Context, userID int64, recipeID string) error
}

// RecipeProvider resolves favourite recipe ids into full detail. The
// mealdb client satisfies it; lookups are best-effort and unknown ids
// are silently dropped.
type RecipeProvider interface {
	BulkInformation(ctx context.Context, ids []string) []model.RecipeInformation
}

// FavouriteService manages a user's favourite recipes.
type FavouriteService struct {
	store    FavouriteStore
	provider RecipeProvider
}

// NewFavouriteService creates a new FavouriteService.
func NewFavouriteService(store FavouriteStore, provider RecipeProvider) *FavouriteService {
	return &FavouriteService{store: store, provider: provider}
}

// Add records a favourite for the user. Favouriting the same recipe twice
// fails with ErrDuplicateFavourite.
func (s *FavouriteService) Add(ctx context.Context, userID int64, recipeID string) (model.FavouriteRecipe, error) {
	if userID == 0 || recipeID == "" {
		return model.FavouriteRecipe{}, ErrRecipeIDRequired
	}

	fav := &model.FavouriteRecipe{
		UserID:   userID,
		RecipeID: recipeID,
	}

	if err := s.store.Create(ctx, fav); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavourite) {
			return model.FavouriteRecipe{}, ErrDuplicateFavourite
		}
		return model.FavouriteRecipe{}, err
	}

	return *fav, nil
}

// List returns full recipe detail for every favourite the user has saved.
// Ids the provider no longer knows are dropped from the result.
func (s *FavouriteService) List(ctx context.Context, userID int64) ([]model.RecipeInformation, error) {
	favs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.RecipeID)
	}

	return s.provider.BulkInformation(ctx, ids), nil
}

// Remove deletes the user's favourite for the given recipe. Removal is
// scoped by both user and recipe, so one user cannot touch another's
// favourites.
func (s *FavouriteService) Remove(ctx context.Context, userID int64, recipeID string) error {
	if userID == 0 || recipeID == "" {
		return ErrRecipeIDRequired
	}

	if err := s.store.Delete(ctx, userID, recipeID); err != nil {
		if errors.Is(err, repository.ErrFavouriteNotFound) {
			return ErrFavouriteNotFound
		}
		return err
	}

	return nil
}
