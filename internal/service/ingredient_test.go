package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientService_NameIsUnique(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	createTestIngredient(t, db, "Flour", "g")
	_, err := svc.CreateIngredient(ctx, &models.Ingredient{Name: "Flour", MeasurementUnit: "kg"})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	ingredients, err := svc.ListIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "g", ingredients[0].MeasurementUnit)
}

func TestIngredientService_BulkCreateSkipsExisting(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	createTestIngredient(t, db, "Flour", "g")
	inserted, err := svc.BulkCreateIngredients(ctx, []models.Ingredient{
		{Name: "Flour", MeasurementUnit: "kg"},
		{Name: "Sugar", MeasurementUnit: "g"},
		{Name: "Milk", MeasurementUnit: "ml"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)

	ingredients, err := svc.ListIngredients(ctx)
	require.NoError(t, err)
	require.Len(t, ingredients, 3)
	assert.Equal(t, "Flour", ingredients[0].Name)
	assert.Equal(t, "g", ingredients[0].MeasurementUnit)

	inserted, err = svc.BulkCreateIngredients(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	_, err = svc.BulkCreateIngredients(ctx, []models.Ingredient{{Name: "Salt"}})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestIngredientService_SearchByPrefix(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	createTestIngredient(t, db, "Sugar", "g")
	createTestIngredient(t, db, "sugar_cane", "g")
	createTestIngredient(t, db, "Salt", "g")
	createTestIngredient(t, db, "Brown sugar", "g")

	found, err := svc.SearchIngredients(ctx, "SUG")
	require.NoError(t, err)
	require.Len(t, found, 2)

	found, err = svc.SearchIngredients(ctx, "sugar_")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "sugar_cane", found[0].Name)

	found, err = svc.SearchIngredients(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, found)

	found, err = svc.SearchIngredients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, found, 4)
}

func TestIngredientService_UpdateAndGet(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	flour := createTestIngredient(t, db, "Flour", "g")
	createTestIngredient(t, db, "Sugar", "g")

	updated, err := svc.UpdateIngredient(ctx, flour.ID, &models.Ingredient{Name: "Rye flour", MeasurementUnit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, "Rye flour", updated.Name)

	_, err = svc.UpdateIngredient(ctx, flour.ID, &models.Ingredient{Name: "Sugar", MeasurementUnit: "g"})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	_, err = svc.GetIngredient(ctx, uuid.New())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

// Flour scenario: unique names, cascading amounts, protected author.
func TestIngredientService_DeleteCascadesToAmounts(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	flour := createTestIngredient(t, db, "Flour", "g")
	_, err := svc.CreateIngredient(ctx, &models.Ingredient{Name: "Flour", MeasurementUnit: "kg"})
	require.ErrorIs(t, err, database.ErrDuplicate)

	author := createTestUser(t, db, "baker")
	recipe := createTestRecipe(t, db, author, "bread", map[uuid.UUID]uint16{flour.ID: 200})
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, uint16(200), recipe.Ingredients[0].Amount)

	require.NoError(t, svc.DeleteIngredient(ctx, flour.ID))
	assert.Zero(t, countRows(t, db, &models.IngredientInRecipe{}, "recipe_id = ?", recipe.ID))

	got, err := NewRecipeService(db).GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Ingredients)

	err = NewUserService(db).DeleteUser(ctx, author.ID)
	assert.ErrorIs(t, err, database.ErrProtected)

	assert.ErrorIs(t, svc.DeleteIngredient(ctx, flour.ID), database.ErrNotFound)
}

func TestIngredientService_SearchFoldsNonASCIICase(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewIngredientService(db)
	ctx := context.Background()

	createTestIngredient(t, db, "Мука", "г")
	createTestIngredient(t, db, "мускатный орех", "г")
	createTestIngredient(t, db, "Crème fraîche", "г")
	createTestIngredient(t, db, "Молоко", "мл")

	found, err := svc.SearchIngredients(ctx, "мук")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Мука", found[0].Name)

	found, err = svc.SearchIngredients(ctx, "МУ")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = svc.SearchIngredients(ctx, "CRÈME")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Crème fraîche", found[0].Name)
}
