package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite marks a recipe as favorited by a user.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id" validate:"required"`
	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipe_id" validate:"required"`
	Recipe    *Recipe   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe,omitempty" validate:"-"`
	AddedDate time.Time `gorm:"autoCreateTime;not null" json:"added_date"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) Validate() error {
	return validateStruct("favorite", f)
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}
