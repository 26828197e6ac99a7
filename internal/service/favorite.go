package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// FavoriteService handles a user's favorite recipes
type FavoriteService struct {
	db *gorm.DB
}

var _ IFavoriteService = (*FavoriteService)(nil)

// NewFavoriteService creates a new FavoriteService instance
func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// FavoriteRecipe marks a recipe as a favorite of userID. Marking it twice
// fails with database.ErrDuplicate. The check is best-effort: the table has
// no unique index on (user_id, recipe_id), so two concurrent calls can both
// insert.
func (s *FavoriteService) FavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*models.Favorite, error) {
	favorite := &models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := favorite.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureNotListed(tx, &models.Favorite{}, userID, recipeID); err != nil {
			return err
		}
		return tx.Create(favorite).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to favorite recipe: %w", database.TranslateError(err))
	}
	return favorite, nil
}

// UnfavoriteRecipe removes a recipe from userID's favorites
func (s *FavoriteService) UnfavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return removeListed(ctx, s.db, &models.Favorite{}, userID, recipeID)
}

// IsFavorited reports whether userID has favorited the recipe
func (s *FavoriteService) IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return isListed(ctx, s.db, &models.Favorite{}, userID, recipeID)
}

// GetFavoriteRecipes lists userID's favorites, most recently added first
func (s *FavoriteService) GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	return listedRecipes(ctx, s.db, "favorites", userID)
}

// The helpers below serve both favorites and shopping lists, which share a
// (user_id, recipe_id, added_date) shape.

func ensureNotListed(tx *gorm.DB, model interface{}, userID, recipeID uuid.UUID) error {
	var count int64
	if err := tx.Model(model).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

func removeListed(ctx context.Context, db *gorm.DB, model interface{}, userID, recipeID uuid.UUID) error {
	result := db.WithContext(ctx).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(model)
	if result.Error != nil {
		return fmt.Errorf("failed to remove recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

func isListed(ctx context.Context, db *gorm.DB, model interface{}, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check recipe: %w", err)
	}
	return count > 0, nil
}

func listedRecipes(ctx context.Context, db *gorm.DB, table string, userID uuid.UUID) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	join := fmt.Sprintf("JOIN %[1]s ON %[1]s.recipe_id = recipes.id", table)
	err := preloadRecipe(db.WithContext(ctx)).
		Joins(join).
		Where(table+".user_id = ?", userID).
		Order(table + ".added_date DESC").
		Order("recipes.id").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	return recipes, nil
}
