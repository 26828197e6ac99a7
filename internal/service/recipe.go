package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe stores a recipe with its ingredient amounts and tags in one
// transaction. Tags are matched by ID and must already exist.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		if err := replaceIngredients(tx, recipe.ID, recipe.Ingredients); err != nil {
			return err
		}
		return replaceTags(tx, recipe.ID, recipe.TagIDs())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", database.TranslateError(err))
	}
	return s.GetRecipe(ctx, recipe.ID)
}

// GetRecipe retrieves a recipe by ID with author, tags and ingredients loaded
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := preloadRecipe(s.db.WithContext(ctx)).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &recipe, nil
}

// UpdateRecipe overwrites the editable fields of a recipe. Author and
// publication date never change. Ingredients and tags are replaced only
// when the incoming slices are non-nil.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *models.Recipe) (*models.Recipe, error) {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	recipe.ID = existing.ID
	recipe.AuthorID = existing.AuthorID
	recipe.PubDate = existing.PubDate
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":         recipe.Name,
			"image":        recipe.Image,
			"text":         recipe.Text,
			"cooking_time": recipe.CookingTime,
		}).Error; err != nil {
			return err
		}
		if recipe.Ingredients != nil {
			if err := replaceIngredients(tx, id, recipe.Ingredients); err != nil {
				return err
			}
		}
		if recipe.Tags != nil {
			return replaceTags(tx, id, recipe.TagIDs())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", database.TranslateError(err))
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe deletes a recipe. Its amounts, tag links, favorites and
// shopping list entries are removed by the database.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Recipe{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe: %w", database.TranslateDeleteError(result.Error))
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// ListRecipes lists recipes newest first, narrowed by filter
func (s *RecipeService) ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]*models.Recipe, error) {
	db := s.db.WithContext(ctx)
	query := preloadRecipe(db).Model(&models.Recipe{})

	if filter.AuthorID != nil {
		query = query.Where("author_id = ?", *filter.AuthorID)
	}
	if len(filter.TagSlugs) > 0 {
		tagged := db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.TagSlugs)
		query = query.Where("id IN (?)", tagged)
	}
	if filter.FavoritedBy != nil {
		favorited := db.Model(&models.Favorite{}).Select("recipe_id").Where("user_id = ?", *filter.FavoritedBy)
		query = query.Where("id IN (?)", favorited)
	}
	if filter.InCartOf != nil {
		inCart := db.Model(&models.ShoppingList{}).Select("recipe_id").Where("user_id = ?", *filter.InCartOf)
		query = query.Where("id IN (?)", inCart)
	}

	var recipes []*models.Recipe
	err := query.Order("pub_date DESC").Order("id").
		Limit(filter.EffectiveLimit()).Offset(filter.Offset).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// SetRecipeTags replaces the tags of a recipe
func (s *RecipeService) SetRecipeTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := recipeExists(tx, id); err != nil {
			return err
		}
		return replaceTags(tx, id, dedupeIDs(tagIDs))
	})
	if err != nil {
		return fmt.Errorf("failed to set recipe tags: %w", database.TranslateError(err))
	}
	return nil
}

// SetRecipeIngredients replaces the ingredient amounts of a recipe
func (s *RecipeService) SetRecipeIngredients(ctx context.Context, id uuid.UUID, ingredients []models.IngredientInRecipe) error {
	for i := range ingredients {
		if err := ingredients[i].Validate(); err != nil {
			return err
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := recipeExists(tx, id); err != nil {
			return err
		}
		return replaceIngredients(tx, id, ingredients)
	})
	if err != nil {
		return fmt.Errorf("failed to set recipe ingredients: %w", database.TranslateError(err))
	}
	return nil
}

func preloadRecipe(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Preload("Ingredients.Ingredient")
}

func recipeExists(tx *gorm.DB, id uuid.UUID) error {
	var count int64
	if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func replaceIngredients(tx *gorm.DB, recipeID uuid.UUID, items []models.IngredientInRecipe) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.IngredientInRecipe{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	rows := make([]models.IngredientInRecipe, len(items))
	for i, item := range items {
		rows[i] = models.IngredientInRecipe{
			RecipeID:     recipeID,
			IngredientID: item.IngredientID,
			Amount:       item.Amount,
		}
	}
	return tx.Omit(clause.Associations).Create(&rows).Error
}

func replaceTags(tx *gorm.DB, recipeID uuid.UUID, tagIDs []uuid.UUID) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]models.RecipeTag, len(tagIDs))
	for i, tagID := range tagIDs {
		rows[i] = models.RecipeTag{RecipeID: recipeID, TagID: tagID}
	}
	return tx.Create(&rows).Error
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
