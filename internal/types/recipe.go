package types

import (
	"github.com/google/uuid"
)

// DefaultRecipeLimit caps a recipe listing when the caller gives no limit
const DefaultRecipeLimit = 100

// RecipeFilter narrows a recipe listing. Zero values disable a criterion.
type RecipeFilter struct {
	AuthorID    *uuid.UUID `json:"author,omitempty"`
	TagSlugs    []string   `json:"tags,omitempty"`
	FavoritedBy *uuid.UUID `json:"is_favorited,omitempty"`
	InCartOf    *uuid.UUID `json:"is_in_shopping_cart,omitempty"`
	Limit       int        `json:"limit,omitempty"`
	Offset      int        `json:"offset,omitempty"`
}

// EffectiveLimit returns the limit to apply to the query
func (f RecipeFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultRecipeLimit
	}
	return f.Limit
}
