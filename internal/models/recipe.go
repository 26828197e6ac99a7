package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recipe is the central aggregate. Its author cannot be deleted while the
// recipe exists; its amounts, favorites and shopping list entries go with it.
type Recipe struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"author_id" validate:"required"`
	Author      *User                `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"author,omitempty" validate:"-"`
	Name        string               `gorm:"size:50;not null" json:"name" validate:"required,max=50"`
	Image       string               `gorm:"size:100;not null" json:"image" validate:"required,max=100"`
	Text        string               `gorm:"size:1000;not null" json:"text" validate:"required,max=1000"`
	CookingTime uint16               `gorm:"not null;check:cooking_time >= 1" json:"cooking_time" validate:"required,gte=1,lte=32767"`
	PubDate     time.Time            `gorm:"autoCreateTime;not null;index" json:"pub_date"`
	Tags        []Tag                `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags" validate:"-"`
	Ingredients []IngredientInRecipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients" validate:"dive"`
}

func (Recipe) TableName() string {
	return "recipes"
}

func (r *Recipe) Validate() error {
	return validateStruct("recipe", r)
}

func (r Recipe) String() string {
	return r.Name
}

// TagIDs returns the distinct tag ids in r.Tags, in order of first appearance
func (r *Recipe) TagIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(r.Tags))
	ids := make([]uuid.UUID, 0, len(r.Tags))
	for _, t := range r.Tags {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		ids = append(ids, t.ID)
	}
	return ids
}

// BeforeCreate stamps PubDate with the creation time, whatever the caller set.
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	assignID(&r.ID)
	r.PubDate = time.Now()
	return nil
}

// IngredientInRecipe carries the amount of one ingredient used by one recipe.
type IngredientInRecipe struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"recipe_id"`
	IngredientID uuid.UUID   `gorm:"type:uuid;not null;index" json:"ingredient_id" validate:"required"`
	Ingredient   *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"ingredient,omitempty" validate:"-"`
	Amount       uint16      `gorm:"not null;check:amount >= 1" json:"amount" validate:"gte=1,lte=32767"`
}

func (IngredientInRecipe) TableName() string {
	return "recipe_ingredients"
}

func (i *IngredientInRecipe) Validate() error {
	return validateStruct("recipe ingredient", i)
}

// String reads "<ingredient> in <recipe>"; unloaded sides fall back to their ids.
func (i IngredientInRecipe) String() string {
	ingredient := i.IngredientID.String()
	if i.Ingredient != nil {
		ingredient = i.Ingredient.Name
	}
	return fmt.Sprintf("%s in %s", ingredient, i.RecipeID)
}

func (i *IngredientInRecipe) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	return nil
}

// RecipeTag is a row of the recipe_tags join table behind Recipe.Tags.
type RecipeTag struct {
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID    uuid.UUID `gorm:"type:uuid;primaryKey"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
