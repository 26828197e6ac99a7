package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/database"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/testhelpers"
	"github.com/pageza/foodgram/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recipeNames(recipes []*models.Recipe) []string {
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return names
}

func TestRecipeService_CreateLoadsAssociations(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	author := createTestUser(t, db, "author")
	flour := createTestIngredient(t, db, "Flour", "g")
	milk := createTestIngredient(t, db, "Milk", "ml")
	breakfast := createTestTag(t, db, "Breakfast", "breakfast")

	recipe := createTestRecipe(t, db, author, "pancakes",
		map[uuid.UUID]uint16{flour.ID: 200, milk.ID: 300}, breakfast, breakfast)

	assert.False(t, recipe.PubDate.IsZero())
	require.NotNil(t, recipe.Author)
	assert.Equal(t, "author", recipe.Author.Username)
	require.Len(t, recipe.Tags, 1)
	assert.Equal(t, "breakfast", recipe.Tags[0].Slug)
	require.Len(t, recipe.Ingredients, 2)
	for _, item := range recipe.Ingredients {
		require.NotNil(t, item.Ingredient)
		assert.Equal(t, recipe.ID, item.RecipeID)
	}
}

func TestRecipeService_CreateRequiresAuthorAndCookingTime(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author")

	noTime := newTestRecipe(author.ID, "soup")
	noTime.CookingTime = 0
	_, err := svc.CreateRecipe(ctx, noTime)
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.CreateRecipe(ctx, newTestRecipe(uuid.Nil, "soup"))
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.CreateRecipe(ctx, newTestRecipe(uuid.New(), "soup"))
	assert.ErrorIs(t, err, database.ErrInvalidReference)

	assert.Zero(t, countRows(t, db, &models.Recipe{}, "1 = 1"))
}

func TestRecipeService_CreateIsAtomic(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author")
	flour := createTestIngredient(t, db, "Flour", "g")

	recipe := newTestRecipe(author.ID, "bread")
	recipe.Ingredients = []models.IngredientInRecipe{{IngredientID: flour.ID, Amount: 500}}
	recipe.Tags = []models.Tag{{ID: uuid.New()}}

	_, err := svc.CreateRecipe(ctx, recipe)
	assert.ErrorIs(t, err, database.ErrInvalidReference)
	assert.Zero(t, countRows(t, db, &models.Recipe{}, "1 = 1"))
	assert.Zero(t, countRows(t, db, &models.IngredientInRecipe{}, "1 = 1"))
}

func TestRecipeService_CreateRejectsZeroAmount(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	author := createTestUser(t, db, "author")
	flour := createTestIngredient(t, db, "Flour", "g")

	recipe := newTestRecipe(author.ID, "bread")
	recipe.Ingredients = []models.IngredientInRecipe{{IngredientID: flour.ID}}

	_, err := NewRecipeService(db).CreateRecipe(context.Background(), recipe)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRecipeService_CreateIgnoresCallerPubDate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()
	author := createTestUser(t, db, "author")

	recipe := newTestRecipe(author.ID, "stew")
	recipe.PubDate = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

	before := time.Now()
	created, err := svc.CreateRecipe(ctx, recipe)
	require.NoError(t, err)
	assert.WithinDuration(t, before, created.PubDate, 5*time.Second)

	var stored models.Recipe
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.WithinDuration(t, before, stored.PubDate, 5*time.Second)
	assert.True(t, stored.PubDate.After(time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestRecipeService_UpdateKeepsAuthorAndPubDate(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	other := createTestUser(t, db, "other")
	flour := createTestIngredient(t, db, "Flour", "g")
	sugar := createTestIngredient(t, db, "Sugar", "g")
	tag := createTestTag(t, db, "Dessert", "dessert")
	recipe := createTestRecipe(t, db, author, "cake", map[uuid.UUID]uint16{flour.ID: 300}, tag)

	changes := newTestRecipe(other.ID, "sponge cake")
	changes.PubDate = time.Now().Add(-48 * time.Hour)
	changes.CookingTime = 45
	changes.Ingredients = []models.IngredientInRecipe{{IngredientID: sugar.ID, Amount: 150}}

	updated, err := svc.UpdateRecipe(ctx, recipe.ID, changes)
	require.NoError(t, err)
	assert.Equal(t, "sponge cake", updated.Name)
	assert.Equal(t, uint16(45), updated.CookingTime)
	assert.Equal(t, author.ID, updated.AuthorID)
	assert.WithinDuration(t, recipe.PubDate, updated.PubDate, time.Second)
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, sugar.ID, updated.Ingredients[0].IngredientID)
	// nil Tags leaves the tags alone
	require.Len(t, updated.Tags, 1)

	noTags := newTestRecipe(author.ID, "sponge cake")
	noTags.Tags = []models.Tag{}
	updated, err = svc.UpdateRecipe(ctx, recipe.ID, noTags)
	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
	assert.Len(t, updated.Ingredients, 1)

	_, err = svc.UpdateRecipe(ctx, uuid.New(), noTags)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRecipeService_SetTagsAndIngredients(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	flour := createTestIngredient(t, db, "Flour", "g")
	lunch := createTestTag(t, db, "Lunch", "lunch")
	dinner := createTestTag(t, db, "Dinner", "dinner")
	recipe := createTestRecipe(t, db, author, "pasta", nil, lunch)

	require.NoError(t, svc.SetRecipeTags(ctx, recipe.ID, []uuid.UUID{dinner.ID, lunch.ID, dinner.ID}))
	require.NoError(t, svc.SetRecipeIngredients(ctx, recipe.ID, []models.IngredientInRecipe{{IngredientID: flour.ID, Amount: 250}}))

	got, err := svc.GetRecipe(ctx, recipe.ID)
	require.NoError(t, err)
	assert.Len(t, got.Tags, 2)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, "Flour", got.Ingredients[0].Ingredient.Name)

	err = svc.SetRecipeTags(ctx, uuid.New(), []uuid.UUID{lunch.ID})
	assert.ErrorIs(t, err, database.ErrNotFound)

	err = svc.SetRecipeIngredients(ctx, recipe.ID, []models.IngredientInRecipe{{IngredientID: uuid.New(), Amount: 1}})
	assert.ErrorIs(t, err, database.ErrInvalidReference)

	err = svc.SetRecipeIngredients(ctx, recipe.ID, []models.IngredientInRecipe{{IngredientID: flour.ID, Amount: 0}})
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRecipeService_DeleteCascades(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	reader := createTestUser(t, db, "reader")
	flour := createTestIngredient(t, db, "Flour", "g")
	tag := createTestTag(t, db, "Baking", "baking")
	recipe := createTestRecipe(t, db, author, "bread", map[uuid.UUID]uint16{flour.ID: 500}, tag)

	_, err := NewFavoriteService(db).FavoriteRecipe(ctx, reader.ID, recipe.ID)
	require.NoError(t, err)
	_, err = NewShoppingListService(db).AddToShoppingList(ctx, reader.ID, recipe.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, recipe.ID))

	assert.Zero(t, countRows(t, db, &models.IngredientInRecipe{}, "recipe_id = ?", recipe.ID))
	assert.Zero(t, countRows(t, db, &models.RecipeTag{}, "recipe_id = ?", recipe.ID))
	assert.Zero(t, countRows(t, db, &models.Favorite{}, "recipe_id = ?", recipe.ID))
	assert.Zero(t, countRows(t, db, &models.ShoppingList{}, "recipe_id = ?", recipe.ID))
	assert.Equal(t, int64(1), countRows(t, db, &models.Ingredient{}, "id = ?", flour.ID))
	assert.Equal(t, int64(1), countRows(t, db, &models.Tag{}, "id = ?", tag.ID))

	assert.ErrorIs(t, svc.DeleteRecipe(ctx, recipe.ID), database.ErrNotFound)

	// the author is free to go once their recipes are gone
	require.NoError(t, NewUserService(db).DeleteUser(ctx, author.ID))
}

func TestRecipeService_ListRecipesFilters(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	breakfast := createTestTag(t, db, "Breakfast", "breakfast")
	dinner := createTestTag(t, db, "Dinner", "dinner")

	base := time.Now().Add(-time.Hour)
	create := func(author *models.User, name string, age time.Duration, tags ...models.Tag) *models.Recipe {
		recipe := newTestRecipe(author.ID, name)
		recipe.Tags = tags
		created, err := svc.CreateRecipe(ctx, recipe)
		require.NoError(t, err)
		// pub_date is always the creation time; spread the rows out directly
		require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", created.ID).
			UpdateColumn("pub_date", base.Add(-age)).Error)
		return created
	}
	oatmeal := create(alice, "oatmeal", 3*time.Minute, *breakfast)
	create(alice, "steak", 2*time.Minute, *dinner)
	omelette := create(bob, "omelette", time.Minute, *breakfast, *dinner)

	all, err := svc.ListRecipes(ctx, types.RecipeFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"omelette", "steak", "oatmeal"}, recipeNames(all))

	byAuthor, err := svc.ListRecipes(ctx, types.RecipeFilter{AuthorID: &alice.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"steak", "oatmeal"}, recipeNames(byAuthor))

	byTag, err := svc.ListRecipes(ctx, types.RecipeFilter{TagSlugs: []string{"breakfast"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"omelette", "oatmeal"}, recipeNames(byTag))

	anyTag, err := svc.ListRecipes(ctx, types.RecipeFilter{TagSlugs: []string{"breakfast", "dinner"}})
	require.NoError(t, err)
	assert.Len(t, anyTag, 3)

	_, err = NewFavoriteService(db).FavoriteRecipe(ctx, bob.ID, oatmeal.ID)
	require.NoError(t, err)
	favorited, err := svc.ListRecipes(ctx, types.RecipeFilter{FavoritedBy: &bob.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"oatmeal"}, recipeNames(favorited))

	_, err = NewShoppingListService(db).AddToShoppingList(ctx, alice.ID, omelette.ID)
	require.NoError(t, err)
	inCart, err := svc.ListRecipes(ctx, types.RecipeFilter{InCartOf: &alice.ID, TagSlugs: []string{"dinner"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"omelette"}, recipeNames(inCart))

	page, err := svc.ListRecipes(ctx, types.RecipeFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"steak"}, recipeNames(page))
}
