package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingList is one recipe placed in a user's shopping cart.
type ShoppingList struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id" validate:"required"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id" validate:"required"`
	Recipe    *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty" validate:"-"`
	AddedDate time.Time `gorm:"autoCreateTime;not null" json:"added_date"`
}

func (ShoppingList) TableName() string {
	return "shopping_lists"
}

func (s *ShoppingList) Validate() error {
	return validateStruct("shopping list entry", s)
}

func (s *ShoppingList) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

// IngredientTotal is the summed amount of one ingredient over a shopping list.
type IngredientTotal struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}
