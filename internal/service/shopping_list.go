package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
)

// ShoppingListService handles the recipes in a user's shopping cart
type ShoppingListService struct {
	db *gorm.DB
}

var _ IShoppingListService = (*ShoppingListService)(nil)

// NewShoppingListService creates a new ShoppingListService instance
func NewShoppingListService(db *gorm.DB) *ShoppingListService {
	return &ShoppingListService{db: db}
}

// AddToShoppingList puts a recipe in userID's cart. Adding it twice fails
// with database.ErrDuplicate. Like FavoriteRecipe the check is not backed by
// a unique index, so concurrent adds can both insert.
func (s *ShoppingListService) AddToShoppingList(ctx context.Context, userID, recipeID uuid.UUID) (*models.ShoppingList, error) {
	entry := &models.ShoppingList{UserID: userID, RecipeID: recipeID}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureNotListed(tx, &models.ShoppingList{}, userID, recipeID); err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add recipe to shopping list: %w", database.TranslateError(err))
	}
	return entry, nil
}

// RemoveFromShoppingList takes a recipe out of userID's cart
func (s *ShoppingListService) RemoveFromShoppingList(ctx context.Context, userID, recipeID uuid.UUID) error {
	return removeListed(ctx, s.db, &models.ShoppingList{}, userID, recipeID)
}

// IsInShoppingList reports whether the recipe is in userID's cart
func (s *ShoppingListService) IsInShoppingList(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return isListed(ctx, s.db, &models.ShoppingList{}, userID, recipeID)
}

// GetShoppingListRecipes lists the recipes in userID's cart, most recently added first
func (s *ShoppingListService) GetShoppingListRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error) {
	return listedRecipes(ctx, s.db, "shopping_lists", userID)
}

// GetShoppingListTotals sums ingredient amounts over every recipe in userID's
// cart, one row per ingredient name and unit, ordered by name
func (s *ShoppingListService) GetShoppingListTotals(ctx context.Context, userID uuid.UUID) ([]models.IngredientTotal, error) {
	var totals []models.IngredientTotal
	err := s.db.WithContext(ctx).
		Table("shopping_lists").
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN recipe_ingredients ON recipe_ingredients.recipe_id = shopping_lists.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("shopping_lists.user_id = ?", userID).
		Group("ingredients.name, ingredients.measurement_unit").
		Order("ingredients.name").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total shopping list: %w", err)
	}
	return totals, nil
}
