package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const ingredientBatchSize = 500

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// IngredientService handles ingredient operations
type IngredientService struct {
	db *gorm.DB
}

var _ IIngredientService = (*IngredientService)(nil)

// NewIngredientService creates a new IngredientService instance
func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

// CreateIngredient stores an ingredient. The name must not be taken.
func (s *IngredientService) CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := ingredient.Validate(); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(ingredient).Error; err != nil {
		return nil, fmt.Errorf("failed to create ingredient: %w", database.TranslateError(err))
	}
	return ingredient, nil
}

// BulkCreateIngredients inserts ingredients in batches, skipping names that
// already exist, and reports how many rows were inserted
func (s *IngredientService) BulkCreateIngredients(ctx context.Context, ingredients []models.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}
	for i := range ingredients {
		if err := ingredients[i].Validate(); err != nil {
			return 0, fmt.Errorf("ingredient %d: %w", i+1, err)
		}
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		CreateInBatches(&ingredients, ingredientBatchSize)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to load ingredients: %w", database.TranslateError(result.Error))
	}
	return result.RowsAffected, nil
}

// GetIngredient retrieves an ingredient by ID
func (s *IngredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.WithContext(ctx).First(&ingredient, "id = ?", id).Error; err != nil {
		return nil, database.TranslateError(err)
	}
	return &ingredient, nil
}

// ListIngredients lists all ingredients ordered by name
func (s *IngredientService) ListIngredients(ctx context.Context) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	if err := s.db.WithContext(ctx).Order("name").Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

// SearchIngredients returns ingredients whose name starts with prefix,
// case-insensitively for any script
func (s *IngredientService) SearchIngredients(ctx context.Context, prefix string) ([]*models.Ingredient, error) {
	var ingredients []*models.Ingredient
	query := s.db.WithContext(ctx).Order("name")
	if prefix != "" {
		pattern := likeEscaper.Replace(strings.ToLower(prefix)) + "%"
		query = query.Where(database.LowerFunc(s.db)+`(name) LIKE ? ESCAPE '\'`, pattern)
	}
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	return ingredients, nil
}

// UpdateIngredient overwrites name and measurement unit
func (s *IngredientService) UpdateIngredient(ctx context.Context, id uuid.UUID, ingredient *models.Ingredient) (*models.Ingredient, error) {
	if err := ingredient.Validate(); err != nil {
		return nil, err
	}

	result := s.db.WithContext(ctx).Model(&models.Ingredient{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":             ingredient.Name,
		"measurement_unit": ingredient.MeasurementUnit,
	})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", database.TranslateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return nil, database.ErrNotFound
	}
	return s.GetIngredient(ctx, id)
}

// DeleteIngredient deletes an ingredient together with every recipe amount
// that uses it. The recipes themselves are kept.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Ingredient{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ingredient: %w", database.TranslateDeleteError(result.Error))
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}
