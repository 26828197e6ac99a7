package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/pageza/foodgram/backend/internal/types"
)

// IUserService defines the persistence operations on users that the recipe schema depends on
type IUserService interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// ITagService defines the interface for tag operations
type ITagService interface {
	CreateTag(ctx context.Context, tag *models.Tag) (*models.Tag, error)
	GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error)
	ListTags(ctx context.Context) ([]*models.Tag, error)
	UpdateTag(ctx context.Context, id uuid.UUID, tag *models.Tag) (*models.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

// IIngredientService defines the interface for ingredient operations
type IIngredientService interface {
	CreateIngredient(ctx context.Context, ingredient *models.Ingredient) (*models.Ingredient, error)
	BulkCreateIngredients(ctx context.Context, ingredients []models.Ingredient) (int64, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*models.Ingredient, error)
	ListIngredients(ctx context.Context) ([]*models.Ingredient, error)
	SearchIngredients(ctx context.Context, prefix string) ([]*models.Ingredient, error)
	UpdateIngredient(ctx context.Context, id uuid.UUID, ingredient *models.Ingredient) (*models.Ingredient, error)
	DeleteIngredient(ctx context.Context, id uuid.UUID) error
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *models.Recipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	ListRecipes(ctx context.Context, filter types.RecipeFilter) ([]*models.Recipe, error)
	SetRecipeTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) error
	SetRecipeIngredients(ctx context.Context, id uuid.UUID, ingredients []models.IngredientInRecipe) error
}

// IFollowService defines the interface for subscriptions between users
type IFollowService interface {
	Follow(ctx context.Context, userID, authorID uuid.UUID) (*models.Follow, error)
	Unfollow(ctx context.Context, userID, authorID uuid.UUID) error
	IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]*models.User, error)
	ListFollowers(ctx context.Context, authorID uuid.UUID) ([]*models.User, error)
}

// IFavoriteService defines the interface for favorite recipes
type IFavoriteService interface {
	FavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*models.Favorite, error)
	UnfavoriteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	IsFavorited(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	GetFavoriteRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
}

// IShoppingListService defines the interface for a user's shopping list
type IShoppingListService interface {
	AddToShoppingList(ctx context.Context, userID, recipeID uuid.UUID) (*models.ShoppingList, error)
	RemoveFromShoppingList(ctx context.Context, userID, recipeID uuid.UUID) error
	IsInShoppingList(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	GetShoppingListRecipes(ctx context.Context, userID uuid.UUID) ([]*models.Recipe, error)
	GetShoppingListTotals(ctx context.Context, userID uuid.UUID) ([]models.IngredientTotal, error)
}
