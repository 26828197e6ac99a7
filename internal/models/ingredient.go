package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is shared reference data; the name identifies it globally.
type Ingredient struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:50;not null;uniqueIndex:unique_ingredient_name" json:"name" validate:"required,max=50"`
	MeasurementUnit string    `gorm:"size:10;not null" json:"measurement_unit" validate:"required,max=10"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}

func NewIngredient(name, measurementUnit string) (*Ingredient, error) {
	i := &Ingredient{Name: name, MeasurementUnit: measurementUnit}
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Ingredient) Validate() error {
	return validateStruct("ingredient", i)
}

func (i Ingredient) String() string {
	return i.Name
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	assignID(&i.ID)
	return nil
}
