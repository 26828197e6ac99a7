package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user, err := NewUserService(db).CreateUser(context.Background(), &models.User{
		Email:    fmt.Sprintf("%s@example.com", username),
		Username: username,
	})
	require.NoError(t, err)
	return user
}

func createTestIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient, err := NewIngredientService(db).CreateIngredient(context.Background(), &models.Ingredient{
		Name:            name,
		MeasurementUnit: unit,
	})
	require.NoError(t, err)
	return ingredient
}

func createTestTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()
	tag, err := NewTagService(db).CreateTag(context.Background(), &models.Tag{Name: name, Slug: slug})
	require.NoError(t, err)
	return tag
}

func newTestRecipe(authorID uuid.UUID, name string) *models.Recipe {
	return &models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Image:       "recipes/images/" + name + ".jpg",
		Text:        "Mix everything and bake.",
		CookingTime: 30,
	}
}

func createTestRecipe(t *testing.T, db *gorm.DB, author *models.User, name string, amounts map[uuid.UUID]uint16, tags ...*models.Tag) *models.Recipe {
	t.Helper()
	recipe := newTestRecipe(author.ID, name)
	for ingredientID, amount := range amounts {
		recipe.Ingredients = append(recipe.Ingredients, models.IngredientInRecipe{
			IngredientID: ingredientID,
			Amount:       amount,
		})
	}
	for _, tag := range tags {
		recipe.Tags = append(recipe.Tags, *tag)
	}

	created, err := NewRecipeService(db).CreateRecipe(context.Background(), recipe)
	require.NoError(t, err)
	return created
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Where(query, args...).Count(&count).Error)
	return count
}
